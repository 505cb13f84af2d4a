package validation

const (
	ErrMsgFailedToReadData       = "failed to read data file"
	ErrMsgFailedToLoadSchema     = "failed to load schema"
	ErrMsgFailedToParseData      = "failed to parse JSON data"
	ErrMsgSchemaValidationFailed = "schema validation failed"
)
