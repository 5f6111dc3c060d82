package validator

import "errors"

// Configuration faults. They describe caller misuse and are reported through
// the diagnostics logger; the engine never returns them.
var (
	// ErrFieldNotFound is reported when a schema field is absent from the validated object.
	ErrFieldNotFound = errors.New("field not found in object")

	// ErrEmptyPath is reported when ValidateField is called without a path.
	ErrEmptyPath = errors.New("field path is required")

	// ErrPathNotLeaf is reported when a path does not resolve to a rule list in the schema.
	ErrPathNotLeaf = errors.New("path does not resolve to a rule list")

	// ErrInvalidBound is reported by length rules built with a degenerate bound.
	ErrInvalidBound = errors.New("invalid rule bound")

	// ErrEmptyList is reported by ElementOf when built with an empty list.
	ErrEmptyList = errors.New("empty element list")

	// ErrInvalidPattern is reported by RegularExpression when built with a nil pattern.
	ErrInvalidPattern = errors.New("invalid regular expression")

	// ErrInvalidTag is reported by Tag when the tag is unknown to go-playground/validator.
	ErrInvalidTag = errors.New("invalid validation tag")

	// ErrNilCheck is reported for rules without a predicate.
	ErrNilCheck = errors.New("rule has no check function")

	// ErrMaxDepth is reported when schema nesting exceeds the configured depth.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")

	// ErrSchemaCycle is reported when a schema nested in itself would be
	// followed again for a missing or empty value.
	ErrSchemaCycle = errors.New("schema cycle on empty value")
)
