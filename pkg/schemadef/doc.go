// Package schemadef decodes declarative schema documents into
// validator.Schema values, so validation rules can live in YAML or JSON
// files next to the code that uses them.
//
// A mapping value that is a sequence declares a leaf field with its rules in
// order. A mapping value that is a mapping declares a nested schema:
//
//	name:
//	  - required: Name is required
//	  - minLength: [3, The minimum length is 3]
//	age: [required, {minNumber: 18}]
//	address:
//	  country:
//	    - elementOf: [[US, FR, JP, ID]]
//	  person:
//	    age: [{minNumber: 17}]
//
// A rule item is either a bare rule name or a single-key mapping from the
// rule name to its parameters. Parameters are one scalar or a list of
// arguments. One argument more than the rule takes is the custom message.
//
// Field order in the document is the validation order, which JSON and YAML
// maps decoded into Go maps would lose; the parser walks yaml.Node values
// instead.
//
// # Usage
//
//	schema, err := schemadef.ParseFile("schemas/registrant.yaml")
//	if err != nil {
//		return err
//	}
//	res := validator.ValidateObject(obj, schema)
//
// Custom rules are added to a Registry:
//
//	reg := schemadef.NewRegistry()
//	reg.Register("mustBePi", schemadef.Factory{
//		New: func(_ schemadef.Args, msg ...string) (validator.Rule, error) {
//			return validator.Func("mustBePi", isPi, "The value must be 3.14"), nil
//		},
//	})
//	schema, err := reg.Parse(data)
//
// # Error Handling
//
// Unlike the validation engine, which logs configuration faults and keeps
// going, the parser rejects a document with an unknown rule, wrong arguments
// or a rule built with a degenerate bound. Errors wrap ErrInvalidDocument,
// ErrUnknownRule or ErrInvalidParams and name the field path and line.
package schemadef
