package schemadef

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/validatekit/pkg/validator"
)

// Factory builds a rule from the arguments written in a schema document.
// Arity is the number of arguments the rule takes; one extra trailing string
// argument is passed as the custom message.
type Factory struct {
	Arity int
	New   func(args Args, msg ...string) (validator.Rule, error)
}

// Args are the raw YAML arguments of a rule item.
type Args []*yaml.Node

// Int decodes argument i as an integer.
func (a Args) Int(i int) (int, error) {
	var n int
	return n, a.decode(i, &n)
}

// Float decodes argument i as a number.
func (a Args) Float(i int) (float64, error) {
	var f float64
	return f, a.decode(i, &f)
}

// String decodes argument i as a string.
func (a Args) String(i int) (string, error) {
	var s string
	return s, a.decode(i, &s)
}

// List decodes argument i as a sequence of scalars.
func (a Args) List(i int) ([]any, error) {
	if i >= len(a) {
		return nil, fmt.Errorf("%w: missing argument %d", ErrInvalidParams, i)
	}
	if a[i].Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: expected a list", ErrInvalidParams, a[i].Line)
	}
	var list []any
	return list, a.decode(i, &list)
}

func (a Args) decode(i int, out any) error {
	if i >= len(a) {
		return fmt.Errorf("%w: missing argument %d", ErrInvalidParams, i)
	}
	if err := a[i].Decode(out); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrInvalidParams, a[i].Line, err)
	}
	return nil
}

// Registry maps rule names used in documents to factories. It is safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a registry holding the built-in rules.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory, len(builtins))}
	maps.Copy(r.factories, builtins)
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}

func (r *Registry) lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

func noArgs(build func(msg ...string) validator.Rule) Factory {
	return Factory{New: func(_ Args, msg ...string) (validator.Rule, error) {
		return build(msg...), nil
	}}
}

func intArg(build func(n int, msg ...string) validator.Rule) Factory {
	return Factory{Arity: 1, New: func(args Args, msg ...string) (validator.Rule, error) {
		n, err := args.Int(0)
		if err != nil {
			return validator.Rule{}, err
		}
		return build(n, msg...), nil
	}}
}

func stringArg(build func(s string, msg ...string) validator.Rule) Factory {
	return Factory{Arity: 1, New: func(args Args, msg ...string) (validator.Rule, error) {
		s, err := args.String(0)
		if err != nil {
			return validator.Rule{}, err
		}
		return build(s, msg...), nil
	}}
}

func floatArg(build func(f float64, msg ...string) validator.Rule) Factory {
	return Factory{Arity: 1, New: func(args Args, msg ...string) (validator.Rule, error) {
		f, err := args.Float(0)
		if err != nil {
			return validator.Rule{}, err
		}
		return build(f, msg...), nil
	}}
}

var builtins = map[string]Factory{
	"required":              noArgs(validator.Required),
	"emailAddress":          noArgs(validator.EmailAddress),
	"containUpperLowerCase": noArgs(validator.ContainUpperLowerCase),
	"containNumber":         noArgs(validator.ContainNumber),
	"containSpecialChar":    noArgs(validator.ContainSpecialChar),
	"strongPassword":        noArgs(validator.StrongPassword),
	"uuid":                  noArgs(validator.UUID),
	"nonNilUUID":            noArgs(validator.NonNilUUID),
	"minLength":             intArg(validator.MinLength),
	"maxLength":             intArg(validator.MaxLength),
	"minNumber":             floatArg(validator.MinNumber[float64]),
	"maxNumber":             floatArg(validator.MaxNumber[float64]),
	"equalTo":               stringArg(validator.EqualTo),
	"regularExpression":     stringArg(validator.Pattern),
	"tag":                   stringArg(validator.Tag),
	"elementOf": {Arity: 1, New: func(args Args, msg ...string) (validator.Rule, error) {
		list, err := args.List(0)
		if err != nil {
			return validator.Rule{}, err
		}
		return validator.ElementOf(list, msg...), nil
	}},
}
