package metaschema

import (
	"sync"

	"github.com/go-json-experiment/json"
)

// Compiler compiles draft-4 JSON Schema documents and caches the result by URI.
// It exists to give ValidateDocument one place to compile the embedded draft-4
// metaschema and, transitively, any schema documents it $refs via "definitions".
type Compiler struct {
	mu             sync.RWMutex       // Protects concurrent access to schemas map.
	schemas        map[string]*Schema // Cache of compiled schemas, keyed by resolved URI.
	DefaultBaseURI string             // Base URI used to resolve relative references.

	jsonEncoder func(v any) ([]byte, error)
	jsonDecoder func(data []byte, v any) error
}

// NewCompiler creates a new Compiler instance and initializes it with default settings.
func NewCompiler() *Compiler {
	return &Compiler{
		schemas:        make(map[string]*Schema),
		DefaultBaseURI: "",
		jsonEncoder:    func(v any) ([]byte, error) { return json.Marshal(v) },
		jsonDecoder:    func(data []byte, v any) error { return json.Unmarshal(data, v) },
	}
}

// WithEncoderJSON configures a custom JSON encoder implementation.
func (c *Compiler) WithEncoderJSON(encoder func(v any) ([]byte, error)) *Compiler {
	c.jsonEncoder = encoder
	return c
}

// WithDecoderJSON configures a custom JSON decoder implementation.
func (c *Compiler) WithDecoderJSON(decoder func(data []byte, v any) error) *Compiler {
	c.jsonDecoder = decoder
	return c
}

// Compile compiles a JSON schema document and caches it. If a URI is provided,
// it is used as the cache key and as the schema's "id" when the document
// itself doesn't declare one.
func (c *Compiler) Compile(jsonSchema []byte, uris ...string) (*Schema, error) {
	schema, err := newSchema(jsonSchema)
	if err != nil {
		return nil, err
	}

	if schema.ID == "" && len(uris) > 0 {
		schema.ID = uris[0]
	}

	uri := schema.ID
	if uri != "" && isValidURI(uri) {
		schema.uri = uri

		c.mu.RLock()
		existingSchema, exists := c.schemas[uri]
		c.mu.RUnlock()

		if exists {
			return existingSchema, nil
		}
	}

	schema.initializeSchema(c, nil)

	if err := schema.validateRegexSyntax(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if schema.uri != "" && isValidURI(schema.uri) {
		c.schemas[schema.uri] = schema
	}
	c.mu.Unlock()

	return schema, nil
}

// SetSchema associates a specific schema with a URI.
func (c *Compiler) SetSchema(uri string, schema *Schema) *Compiler {
	c.mu.Lock()
	c.schemas[uri] = schema
	c.mu.Unlock()
	return c
}

// GetSchema retrieves a compiled schema by reference from the local cache.
// Unlike the teacher's validator, it never attempts to fetch schemas over the
// network: a draft-4 metaschema gate only ever resolves internal $refs.
func (c *Compiler) GetSchema(ref string) (*Schema, error) {
	baseURI, anchor := splitRef(ref)

	c.mu.RLock()
	schema, exists := c.schemas[baseURI]
	c.mu.RUnlock()

	if !exists {
		return nil, ErrGlobalReferenceResolution
	}
	if baseURI == ref {
		return schema, nil
	}
	return schema.resolveAnchor(anchor)
}

// SetDefaultBaseURI sets the default base URI for resolving relative references.
func (c *Compiler) SetDefaultBaseURI(baseURI string) *Compiler {
	c.DefaultBaseURI = baseURI
	return c
}
