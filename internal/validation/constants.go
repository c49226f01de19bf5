package validation

// Embedded schema locations
const (
	SchemaDir       = "schemas"
	WorldSchemaFile = "world.schema.json"
)

// ErrMsgSchemaValidationFailed prefixes every schema failure report
const ErrMsgSchemaValidationFailed = "schema validation failed"
