package jsonsubschema

// IsSubschema decides whether ⟦s1⟧ ⊆ ⟦s2⟧: every JSON value s1 accepts is
// also accepted by s2. s1 and s2 are decoded-JSON schema documents (bool
// or map[string]any, as produced by goccy/go-json unmarshaling into any).
func IsSubschema(s1, s2 any) (bool, error) {
	t1, err := Canonicalize(s1)
	if err != nil {
		return false, err
	}
	t2, err := Canonicalize(s2)
	if err != nil {
		return false, err
	}
	return isSubtypeTerms(t1, t2)
}

// Meet returns a decoded-JSON schema denoting ⟦s1⟧ ∩ ⟦s2⟧.
func Meet(s1, s2 any) (any, error) {
	t1, err := Canonicalize(s1)
	if err != nil {
		return nil, err
	}
	t2, err := Canonicalize(s2)
	if err != nil {
		return nil, err
	}
	m, err := meetTerms(t1, t2)
	if err != nil {
		return nil, err
	}
	return m.toJSON(), nil
}

// Join returns a decoded-JSON schema denoting ⟦s1⟧ ∪ ⟦s2⟧.
func Join(s1, s2 any) (any, error) {
	t1, err := Canonicalize(s1)
	if err != nil {
		return nil, err
	}
	t2, err := Canonicalize(s2)
	if err != nil {
		return nil, err
	}
	j, err := joinTerms(t1, t2)
	if err != nil {
		return nil, err
	}
	return j.toJSON(), nil
}

// IsUninhabited reports whether ⟦s⟧ = ∅.
func IsUninhabited(s any) (bool, error) {
	t, err := Canonicalize(s)
	if err != nil {
		return false, err
	}
	return isUninhabitedTerm(t), nil
}
