package serializer

import "errors"

var (
	// ErrUnknownKind is returned when a live entity has no registered converter.
	ErrUnknownKind = errors.New("unknown entity kind")
	// ErrUnknownGenerator is returned when a fragment's generator has no registered converter.
	ErrUnknownGenerator = errors.New("unknown generator")
	// ErrMissingField is wrapped by every *FieldError.
	ErrMissingField = errors.New("required field is not defined")
	// ErrMalformedFragment is returned when a fragment is not a JSON object of the expected shape.
	ErrMalformedFragment = errors.New("malformed fragment")
	// ErrMissingCollaborator is returned when reconstruction needs a camera,
	// renderer or fetcher the ReconstructionContext does not provide.
	ErrMissingCollaborator = errors.New("missing collaborator")
	// ErrNotImplemented is returned by converters registered without an implementation.
	ErrNotImplemented = errors.New("not implemented")
	// ErrEntityMismatch is returned when an existing entity has the wrong type for a converter.
	ErrEntityMismatch = errors.New("existing entity has the wrong type")
	// ErrNilEntity is returned when asked to convert a nil entity.
	ErrNilEntity = errors.New("nil entity")
)

// FieldError reports a field a converter cannot do without.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return "json." + e.Field + " is not defined."
}

func (e *FieldError) Unwrap() error { return ErrMissingField }

// ErrMalformedDocument is returned when a top-level document cannot be decoded.
var ErrMalformedDocument = errors.New("malformed document")
