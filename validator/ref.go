package metaschema

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// resolveRef resolves a $ref to another schema, either within the local
// document (JSON Pointer or anchor) or via the compiler's schema cache.
func (s *Schema) resolveRef(ref string) (*Schema, error) {
	if ref == "#" {
		return s.getRootSchema(), nil
	}

	if strings.HasPrefix(ref, "#") {
		return s.resolveAnchor(ref[1:])
	}

	if !isAbsoluteURI(ref) && s.baseURI != "" {
		ref = resolveRelativeURI(s.baseURI, ref)
	}

	return s.resolveRefWithFullURL(ref)
}

func (s *Schema) resolveAnchor(anchorName string) (*Schema, error) {
	var schema *Schema
	var err error

	if strings.HasPrefix(anchorName, "/") {
		schema, err = s.resolveJSONPointer(anchorName)
	} else if anchored, ok := s.anchors[anchorName]; ok {
		return anchored, nil
	}

	if schema == nil && s.parent != nil {
		return s.parent.resolveAnchor(anchorName)
	}

	return schema, err
}

// resolveRefWithFullURL resolves a full URI reference to another schema.
func (s *Schema) resolveRefWithFullURL(ref string) (*Schema, error) {
	root := s.getRootSchema()
	if resolved, err := root.getSchema(ref); err == nil {
		return resolved, nil
	}

	resolved, err := s.GetCompiler().GetSchema(ref)
	if err != nil {
		return nil, ErrGlobalReferenceResolution
	}
	return resolved, nil
}

// resolveJSONPointer resolves a JSON Pointer within the schema based on JSON Schema structure.
func (s *Schema) resolveJSONPointer(pointer string) (*Schema, error) {
	if pointer == "/" {
		return s, nil
	}

	segments := jsonpointer.Parse(pointer)
	currentSchema := s
	previousSegment := ""

	for i, segment := range segments {
		decodedSegment, err := url.PathUnescape(segment)
		if err != nil {
			return nil, ErrJSONPointerSegmentDecode
		}

		nextSchema, found := findSchemaInSegment(currentSchema, decodedSegment, previousSegment)
		if found {
			currentSchema = nextSchema
			previousSegment = decodedSegment
			continue
		}

		if i == len(segments)-1 {
			return nil, ErrJSONPointerSegmentNotFound
		}

		previousSegment = decodedSegment
	}

	return currentSchema, nil
}

// findSchemaInSegment finds a nested schema for one JSON Pointer segment,
// given the keyword name that preceded it.
func findSchemaInSegment(currentSchema *Schema, segment string, previousSegment string) (*Schema, bool) {
	switch previousSegment {
	case "properties":
		if currentSchema.Properties != nil {
			if schema, exists := (*currentSchema.Properties)[segment]; exists {
				return schema, true
			}
		}
	case "patternProperties":
		if currentSchema.PatternProperties != nil {
			if schema, exists := (*currentSchema.PatternProperties)[segment]; exists {
				return schema, true
			}
		}
	case "definitions":
		if schema, exists := currentSchema.Definitions[segment]; exists {
			return schema, true
		}
	case "dependencies":
		if dep, exists := currentSchema.Dependencies[segment]; exists && dep.Schema != nil {
			return dep.Schema, true
		}
	case "items":
		if currentSchema.Items != nil {
			return currentSchema.Items, true
		}
		if index, err := strconv.Atoi(segment); err == nil && index < len(currentSchema.ItemsTuple) {
			return currentSchema.ItemsTuple[index], true
		}
	case "additionalItems":
		if currentSchema.AdditionalItems != nil {
			return currentSchema.AdditionalItems, true
		}
	case "additionalProperties":
		if currentSchema.AdditionalProperties != nil {
			return currentSchema.AdditionalProperties, true
		}
	case "not":
		if currentSchema.Not != nil {
			return currentSchema.Not, true
		}
	}
	return nil, false
}

func (s *Schema) resolveReferences() {
	if s.Ref != "" {
		if resolved, err := s.resolveRef(s.Ref); err == nil {
			s.ResolvedRef = resolved
		}
		// If resolution fails, ResolvedRef stays nil; validation handles this gracefully.
	}

	for _, defSchema := range s.Definitions {
		defSchema.resolveReferences()
	}

	if s.Properties != nil {
		for _, schema := range *s.Properties {
			if schema != nil {
				schema.resolveReferences()
			}
		}
	}

	resolveSubschemaList(s.AllOf)
	resolveSubschemaList(s.AnyOf)
	resolveSubschemaList(s.OneOf)

	if s.Not != nil {
		s.Not.resolveReferences()
	}
	if s.Items != nil {
		s.Items.resolveReferences()
	}
	resolveSubschemaList(s.ItemsTuple)

	if s.AdditionalItems != nil {
		s.AdditionalItems.resolveReferences()
	}
	if s.AdditionalProperties != nil {
		s.AdditionalProperties.resolveReferences()
	}
	if s.PatternProperties != nil {
		for _, schema := range *s.PatternProperties {
			schema.resolveReferences()
		}
	}
	for _, dep := range s.Dependencies {
		if dep != nil && dep.Schema != nil {
			dep.Schema.resolveReferences()
		}
	}
}

// resolveSubschemaList resolves references in a list of schemas.
func resolveSubschemaList(schemas []*Schema) {
	for _, schema := range schemas {
		if schema != nil {
			schema.resolveReferences()
		}
	}
}
