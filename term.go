package jsonsubschema

// Kind tags the variant of a schema Term. It plays the role the Python
// original gets from Python's dynamic dispatch (isinstance checks against
// JSONTypeString, JSONTypeInteger, ...): a small closed tag set that every
// algebra operation switches on.
type Kind int

const (
	KindTop Kind = iota
	KindBot
	KindString
	KindInteger
	KindNumber
	KindBoolean
	KindNull
	KindArray
	KindObject
	KindAnyOf
)

func (k Kind) String() string {
	switch k {
	case KindTop:
		return "top"
	case KindBot:
		return "bot"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindAnyOf:
		return "anyOf"
	default:
		return "unknown"
	}
}

// Term is a canonicalized JSON Schema term: the tagged-variant
// representation the algebra operates over. Every algebra operation
// (Meet, Join, IsSubtype, IsUninhabited) accepts and returns Term values;
// terms are immutable once constructed.
type Term interface {
	// Kind reports which variant this term is.
	Kind() Kind

	// toJSON renders the term back to a decoded-JSON-shaped value
	// (bool, map[string]any, ...) for the public any-in/any-out façade.
	toJSON() any
}

// enumCarrier is implemented by every primitive variant (not Top, Bot, or
// AnyOf): the enum overlay is a field on each primitive struct rather than
// a separate Enum variant.
type enumCarrier interface {
	Term
	enumValues() []any
	withEnum(enum []any) Term
}

// Top is the lattice top: denotes every JSON value.
type Top struct{}

func (Top) Kind() Kind    { return KindTop }
func (Top) toJSON() any   { return true }

// Bot is the lattice bottom: denotes no JSON value.
type Bot struct{}

func (Bot) Kind() Kind  { return KindBot }
func (Bot) toJSON() any { return map[string]any{"not": map[string]any{}} }

var (
	top Term = Top{}
	bot Term = Bot{}
)

// isTop/isBot are small helpers kept separate from type assertions at call
// sites so the common-law short-circuit cases in meet.go/subtype.go/join.go
// read as plain boolean checks.
func isTop(t Term) bool { _, ok := t.(Top); return ok }
func isBot(t Term) bool { _, ok := t.(Bot); return ok }
