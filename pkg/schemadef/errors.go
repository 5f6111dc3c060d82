package schemadef

import "errors"

var (
	ErrFailedToReadFile  = errors.New("failed to read schema file")
	ErrFailedToParseYAML = errors.New("failed to parse schema document")
	ErrInvalidDocument   = errors.New("invalid schema document")
	ErrUnknownRule       = errors.New("unknown rule")
	ErrInvalidParams     = errors.New("invalid rule parameters")
)
