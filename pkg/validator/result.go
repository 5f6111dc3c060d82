package validator

// Result is the outcome of ValidateObject and ValidateField.
//
// IsValid is true iff ErrorMessages is nil iff Errors is nil; a successful
// validation never carries empty trees.
type Result struct {
	IsValid       bool         `json:"isValid"`
	ErrorMessages ErrorTree    `json:"errorMessages,omitempty"`
	Errors        JoinedErrors `json:"errors,omitempty"`

	violations ValidationErrors
}

func newResult(tree ErrorTree, violations ValidationErrors) Result {
	if len(tree) == 0 {
		return Result{IsValid: true}
	}
	return Result{
		IsValid:       false,
		ErrorMessages: tree,
		Errors:        Join(tree),
		violations:    violations,
	}
}

// Violations returns every failure with its dotted field path, in schema
// declaration order and rule order within a field.
func (r Result) Violations() ValidationErrors {
	return r.violations
}

// Err returns the failures as an error, or nil when the result is valid.
// The error unwraps to ValidationErrors via errors.As.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	return r.violations
}
