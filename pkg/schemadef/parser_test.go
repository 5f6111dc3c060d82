package schemadef_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validatekit/pkg/schemadef"
	"github.com/dmitrymomot/validatekit/pkg/validator"
)

const companyDoc = `
name:
  - required: Name is required
  - minLength: [3, The minimum length is 3]
email: [required, emailAddress]
address:
  streetName:
    - required: The street name is required
  country:
    - elementOf: [[US,FR,JP,ID]]
  person:
    age: [{minNumber: 17}]
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("keeps document order", func(t *testing.T) {
		t.Parallel()
		schema, err := schemadef.Parse([]byte(companyDoc))
		require.NoError(t, err)

		assert.Equal(t, []string{"name", "email", "address"}, schema.Fields())
		node, ok := schema.Lookup("address")
		require.True(t, ok)
		nested, ok := node.(*validator.Schema)
		require.True(t, ok)
		assert.Equal(t, []string{"streetName", "country", "person"}, nested.Fields())

		rules, ok := schema.Rules("name")
		require.True(t, ok)
		require.Len(t, rules, 2)
		assert.Equal(t, "required", rules[0].Name)
		assert.Equal(t, "Name is required.", rules[0].Message)
		assert.Equal(t, "minLength", rules[1].Name)
		assert.Equal(t, "The minimum length is 3.", rules[1].Message)
	})

	t.Run("validates like the equivalent builder schema", func(t *testing.T) {
		t.Parallel()
		fromDoc, err := schemadef.Parse([]byte(companyDoc))
		require.NoError(t, err)

		built := validator.NewSchema().
			Field("name",
				validator.Required("Name is required"),
				validator.MinLength(3, "The minimum length is 3"),
			).
			Field("email", validator.Required(), validator.EmailAddress()).
			Nested("address", validator.NewSchema().
				Field("streetName", validator.Required("The street name is required")).
				Field("country", validator.ElementOf([]string{"US", "FR", "JP", "ID"})).
				Nested("person", validator.NewSchema().
					Field("age", validator.MinNumber(17)),
				),
			)

		company := map[string]any{
			"name":  "",
			"email": "irpan2gmail.com",
			"address": map[string]any{
				"streetName": "",
				"country":    "UK",
				"person":     map[string]any{"age": 15},
			},
		}

		want := validator.ValidateObject(company, built)
		got := validator.ValidateObject(company, fromDoc)

		assert.Equal(t, want.ErrorMessages, got.ErrorMessages)
		assert.Equal(t, want.Errors, got.Errors)
		assert.Equal(t, want.Violations().Fields(), got.Violations().Fields())
	})

	t.Run("accepts JSON", func(t *testing.T) {
		t.Parallel()
		schema, err := schemadef.Parse([]byte(`{
			"password": [{"strongPassword": "Your password must be stronger"}],
			"confirmPassword": [{"equalTo": "password"}],
			"id": ["uuid"],
			"site": [{"tag": ["url", "Invalid site"]}]
		}`))
		require.NoError(t, err)

		res := validator.ValidateObject(map[string]any{
			"password":        "cumaMisCall1!",
			"confirmPassword": "cumaMisCall1",
			"id":              "nope",
			"site":            "nope",
		}, schema)

		assert.Equal(t, validator.ErrorTree{
			"confirmPassword": validator.Messages{"The value should be equal to password value."},
			"id":              validator.Messages{"The value 'nope' is not a valid UUID."},
			"site":            validator.Messages{"Invalid site."},
		}, res.ErrorMessages)
	})

	t.Run("supports every built-in rule", func(t *testing.T) {
		t.Parallel()
		schema, err := schemadef.Parse([]byte(`
a:
  - required
  - minLength: 1
  - maxLength: 10
  - minNumber: 1.5
  - maxNumber: 99
  - regularExpression: '^\d+$'
  - elementOf: [[1, 2, 42]]
  - emailAddress:
  - containUpperLowerCase
  - containNumber
  - containSpecialChar
  - strongPassword
  - uuid
  - nonNilUUID
  - equalTo: b
  - tag: numeric
`))
		require.NoError(t, err)

		rules, ok := schema.Rules("a")
		require.True(t, ok)
		names := make([]string, len(rules))
		for i, r := range rules {
			assert.NoError(t, r.Err)
			names[i] = r.Name
		}
		assert.Equal(t, []string{
			"required", "minLength", "maxLength", "minNumber", "maxNumber",
			"regularExpression", "elementOf", "emailAddress", "containUpperLowerCase",
			"containNumber", "containSpecialChar", "strongPassword", "uuid",
			"nonNilUUID", "equalTo", "numeric",
		}, names)

		assert.True(t, rules[6].Check(42, nil))
		assert.False(t, rules[6].Check(3, nil))
	})

	t.Run("resolves anchors", func(t *testing.T) {
		t.Parallel()
		schema, err := schemadef.Parse([]byte(`
billing: &addr
  country: [{elementOf: [[US, FR]]}]
shipping: *addr
`))
		require.NoError(t, err)

		_, ok := schema.Rules("shipping.country")
		assert.True(t, ok)
	})
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"malformed yaml", "name: [required", schemadef.ErrFailedToParseYAML},
		{"empty document", "", schemadef.ErrInvalidDocument},
		{"root is a list", "- required", schemadef.ErrInvalidDocument},
		{"field is a scalar", "name: required", schemadef.ErrInvalidDocument},
		{"rule item with two keys", "name: [{required: a, minLength: 3}]", schemadef.ErrInvalidDocument},
		{"unknown rule", "name: [shiny]", schemadef.ErrUnknownRule},
		{"unknown nested rule", "address:\n  street: [shiny]", schemadef.ErrUnknownRule},
		{"missing argument", "name: [minLength]", schemadef.ErrInvalidParams},
		{"too many arguments", "name: [{minLength: [1, 2, 3]}]", schemadef.ErrInvalidParams},
		{"wrong argument type", "name: [{minLength: three}]", schemadef.ErrInvalidParams},
		{"message is not a string", "name: [{required: 3}]", schemadef.ErrInvalidParams},
		{"elementOf needs a list", "name: [{elementOf: US}]", schemadef.ErrInvalidParams},
		{"degenerate bound", "name: [{minLength: 0}]", schemadef.ErrInvalidParams},
		{"invalid pattern", "name: [{regularExpression: '([a-z'}]", schemadef.ErrInvalidParams},
		{"unknown tag", "name: [{tag: definitely_not_a_tag}]", schemadef.ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			schema, err := schemadef.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, schema)
		})
	}

	t.Run("names the field path", func(t *testing.T) {
		t.Parallel()
		_, err := schemadef.Parse([]byte("address:\n  street: [shiny]"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"address.street"`)
	})
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	t.Run("reads the file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "company.yaml")
		require.NoError(t, os.WriteFile(path, []byte(companyDoc), 0o600))

		schema, err := schemadef.ParseFile(path)
		require.NoError(t, err)
		assert.Equal(t, 3, schema.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := schemadef.ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, schemadef.ErrFailedToReadFile)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
