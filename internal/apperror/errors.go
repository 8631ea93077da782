package apperror

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrTemplateNotFound  = errors.New("prompt template not found")
	ErrExtractionFailed  = errors.New("text extraction failed")
	ErrMalformedResponse = errors.New("malformed model response")
	ErrAnalysisFailed    = errors.New("analysis failed")
)

// ValidationError carries per-field messages back to the client.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}
