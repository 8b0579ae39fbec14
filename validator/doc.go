// Package metaschema implements a draft-4 JSON Schema validator used as the
// CLI's input gate: it checks that the documents handed to the subschema
// decision procedure are themselves well-formed draft-4 schemas before the
// core algebra ever sees them.
package metaschema
