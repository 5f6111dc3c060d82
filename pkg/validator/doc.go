// Package validator validates plain data objects against declarative
// schemas of per-field rules and reports which fields violate which rules,
// both as itemized messages and as one joined message per field.
//
// A Schema maps field names either to an ordered list of Rule values (a
// leaf) or to another Schema (a nested object). ValidateObject walks the
// whole schema; ValidateField runs the rules of a single leaf addressed by a
// dotted path such as "address.person.age".
//
// # Architecture
//
// Each source file groups one concern:
//
//   - core.go     – Rule contract, ValidationError and ValidationErrors
//   - schema.go   – Schema builder and the Node sum type (Rules | *Schema)
//   - path.go     – dotted path accessors (GetValue, ErrorTree.Add)
//   - tree.go     – ErrorTree (Messages | ErrorTree) and Join
//   - result.go   – Result
//   - engine.go   – Validator, ValidateObject and ValidateField
//   - config.go   – Config loaded from VALIDATOR_* environment variables
//   - *_rules.go  – rule factories grouped by domain
//
// Objects are map[string]any values, maps with string keys, or structs
// (fields matched by json tag, then by name), nested arbitrarily. A rule's
// Check receives the field value and the object containing the field, which
// is how EqualTo compares against a sibling.
//
// The engine never mutates the object or the schema and keeps no state
// between calls: every Result is freshly allocated.
//
// # Usage
//
//	schema := validator.NewSchema().
//	    Field("name", validator.Required("Name is required")).
//	    Field("age", validator.Required("required"), validator.MinNumber(18)).
//	    Nested("address", validator.NewSchema().
//	        Field("streetName", validator.Required()).
//	        Field("country", validator.ElementOf([]string{"US", "FR"})))
//
//	res := validator.ValidateObject(obj, schema)
//	if !res.IsValid {
//	    // res.ErrorMessages: {"age": ["required.", "The minimum value for this field is 18."]}
//	    // res.Errors:        {"age": "required. The minimum value for this field is 18."}
//	}
//
//	res2 := validator.ValidateField(obj, "address.country", schema)
//
// # Messages
//
// Rule factories take an optional custom message. Default and custom
// messages get a trailing period unless they already end with '.', '!',
// '?' or ';'. The ":value" placeholder is replaced with the field value when
// the rule fails.
//
// # Error Handling
//
// Validation failures are data: they live in the Result and are never
// logged. Result.Err converts them to a ValidationErrors error for callers
// that prefer errors.As.
//
// Caller misuse (a schema field missing from the object, an empty path, a
// rule built with a degenerate bound) is reported as a warning on the
// diagnostics logger, set with WithLogger, and the offending field or rule
// is skipped. Nothing panics. The sentinel errors in errors.go identify
// each kind of fault in the log records.
//
// Whether a missing field should fail Required is a policy: see
// MissingFieldPolicy.
package validator
