package schemadef

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/validatekit/pkg/validator"
)

var defaultRegistry = NewRegistry()

// Parse decodes a schema document using the built-in rules.
func Parse(data []byte) (*validator.Schema, error) {
	return defaultRegistry.Parse(data)
}

// ParseFile reads and decodes a schema document using the built-in rules.
func ParseFile(path string) (*validator.Schema, error) {
	return defaultRegistry.ParseFile(path)
}

// ParseFile reads and decodes a schema document.
func (r *Registry) ParseFile(path string) (*validator.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return r.Parse(data)
}

// Parse decodes a YAML or JSON schema document. Field order in the document
// becomes validation order.
func (r *Registry) Parse(data []byte) (*validator.Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}
	return r.schema(resolveAlias(doc.Content[0]), "")
}

func (r *Registry) schema(node *yaml.Node, prefix string) (*validator.Schema, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of fields", ErrInvalidDocument, node.Line)
	}

	s := validator.NewSchema()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolveAlias(node.Content[i+1])
		path := key.Value
		if prefix != "" {
			path = prefix + "." + key.Value
		}

		switch value.Kind {
		case yaml.MappingNode:
			nested, err := r.schema(value, path)
			if err != nil {
				return nil, err
			}
			s.Nested(key.Value, nested)
		case yaml.SequenceNode:
			rules, err := r.rules(value, path)
			if err != nil {
				return nil, err
			}
			s.Field(key.Value, rules...)
		default:
			return nil, fmt.Errorf("%w: line %d: field %q must hold a rule list or a nested schema", ErrInvalidDocument, value.Line, path)
		}
	}
	return s, nil
}

func (r *Registry) rules(node *yaml.Node, path string) ([]validator.Rule, error) {
	rules := make([]validator.Rule, 0, len(node.Content))
	for _, item := range node.Content {
		rule, err := r.rule(resolveAlias(item), path)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// rule decodes "- name" or "- name: params".
func (r *Registry) rule(item *yaml.Node, path string) (validator.Rule, error) {
	var (
		name string
		args Args
	)
	switch item.Kind {
	case yaml.ScalarNode:
		name = item.Value
	case yaml.MappingNode:
		if len(item.Content) != 2 {
			return validator.Rule{}, fmt.Errorf("%w: line %d: rule item of %q must have exactly one key", ErrInvalidDocument, item.Line, path)
		}
		name = item.Content[0].Value
		params := resolveAlias(item.Content[1])
		switch params.Kind {
		case yaml.SequenceNode:
			args = params.Content
		case yaml.ScalarNode:
			if params.Tag != "!!null" {
				args = Args{params}
			}
		default:
			return validator.Rule{}, fmt.Errorf("%w: line %d: parameters of %q on %q", ErrInvalidParams, params.Line, name, path)
		}
	default:
		return validator.Rule{}, fmt.Errorf("%w: line %d: rule item of %q", ErrInvalidDocument, item.Line, path)
	}

	f, ok := r.lookup(name)
	if !ok {
		return validator.Rule{}, fmt.Errorf("%w: %q on %q (line %d)", ErrUnknownRule, name, path, item.Line)
	}

	var msg []string
	switch len(args) {
	case f.Arity:
	case f.Arity + 1:
		last := args[len(args)-1]
		if last.Kind != yaml.ScalarNode || last.Tag != "!!str" {
			return validator.Rule{}, fmt.Errorf("%w: line %d: message of %q on %q must be a string", ErrInvalidParams, last.Line, name, path)
		}
		msg = []string{last.Value}
		args = args[:f.Arity]
	default:
		return validator.Rule{}, fmt.Errorf("%w: %q on %q takes %d argument(s), got %d (line %d)", ErrInvalidParams, name, path, f.Arity, len(args), item.Line)
	}

	rule, err := f.New(args, msg...)
	if err != nil {
		return validator.Rule{}, fmt.Errorf("%s on %q: %w", name, path, err)
	}
	if rule.Err != nil {
		return validator.Rule{}, errors.Join(ErrInvalidParams, fmt.Errorf("%s on %q: %w", name, path, rule.Err))
	}
	return rule, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
