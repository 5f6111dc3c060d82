package validator

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/validatekit/pkg/logger"
)

// MissingFieldPolicy decides what happens to a schema field the validated
// object does not have.
type MissingFieldPolicy string

const (
	// MissingFieldSkip reports the field as a diagnostic and skips all of
	// its rules, Required included.
	MissingFieldSkip MissingFieldPolicy = "skip"
	// MissingFieldValidate reports the field as a diagnostic and then
	// validates it as if its value were nil.
	MissingFieldValidate MissingFieldPolicy = "validate"
)

// DefaultMaxDepth leaves schema nesting unbounded.
const DefaultMaxDepth = 0

// Validator runs schemas against objects. It holds configuration only and
// is safe for concurrent use.
type Validator struct {
	logger   *slog.Logger
	missing  MissingFieldPolicy
	maxDepth int
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the diagnostics sink. Nil keeps the default, which is
// slog.Default() at call time.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithMissingFieldPolicy sets the policy for schema fields absent from the object.
// Unknown policies are ignored.
func WithMissingFieldPolicy(p MissingFieldPolicy) Option {
	return func(v *Validator) {
		switch p {
		case MissingFieldSkip, MissingFieldValidate:
			v.missing = p
		}
	}
}

// WithMaxDepth bounds how deep nested schemas are followed. Zero means no
// bound; negative values are ignored.
func WithMaxDepth(depth int) Option {
	return func(v *Validator) {
		if depth >= 0 {
			v.maxDepth = depth
		}
	}
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		missing:  MissingFieldSkip,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateObject validates obj against schema with default settings.
func ValidateObject(obj any, schema *Schema) Result {
	return New().ValidateObject(obj, schema)
}

// ValidateField validates the single leaf at path with default settings.
func ValidateField(obj any, path string, schema *Schema) *Result {
	return New().ValidateField(obj, path, schema)
}

// ValidateObject validates every field declared in schema, recursing into
// nested schemas, and reports failures in a tree mirroring the schema.
func (v *Validator) ValidateObject(obj any, schema *Schema) Result {
	return v.ValidateObjectContext(context.Background(), obj, schema)
}

// ValidateObjectContext is ValidateObject with a context passed to the
// diagnostics logger.
func (v *Validator) ValidateObjectContext(ctx context.Context, obj any, schema *Schema) Result {
	r := newRun(ctx, v)
	r.active[schema]++
	tree := r.object(obj, schema, "", 0)
	return newResult(tree, r.violations)
}

// ValidateField validates only the rules declared at a dotted path such as
// "address.person.age". The error tree holds that one path and nothing
// else. It returns nil when path is empty.
func (v *Validator) ValidateField(obj any, path string, schema *Schema) *Result {
	return v.ValidateFieldContext(context.Background(), obj, path, schema)
}

// ValidateFieldContext is ValidateField with a context passed to the
// diagnostics logger.
func (v *Validator) ValidateFieldContext(ctx context.Context, obj any, path string, schema *Schema) *Result {
	r := newRun(ctx, v)
	if path == "" {
		r.warn("cannot validate field", ErrEmptyPath)
		return nil
	}

	rules, ok := schema.Rules(path)
	if !ok {
		r.warn("no rules to run", ErrPathNotLeaf, logger.Path(path))
		res := newResult(nil, nil)
		return &res
	}

	parent, value, found := resolve(obj, SplitPath(path))
	if !found {
		r.warn("field validated as nil", ErrFieldNotFound, logger.Path(path))
	}

	var tree ErrorTree
	for _, msg := range r.rules(value, parent, rules, path) {
		if tree == nil {
			tree = make(ErrorTree)
		}
		tree.Add(path, msg)
	}

	res := newResult(tree, r.violations)
	return &res
}

func (v *Validator) log() *slog.Logger {
	if v.logger != nil {
		return v.logger
	}
	return slog.Default().With(logger.Component("validator"))
}

// run carries the state of one validation call.
type run struct {
	ctx        context.Context
	v          *Validator
	violations ValidationErrors
	active     map[*Schema]int
}

func newRun(ctx context.Context, v *Validator) *run {
	if ctx == nil {
		ctx = context.Background()
	}
	return &run{ctx: ctx, v: v, active: make(map[*Schema]int)}
}

func (r *run) object(obj any, schema *Schema, prefix string, depth int) ErrorTree {
	if schema == nil {
		return nil
	}

	var tree ErrorTree
	for _, f := range schema.fields {
		path := joinPath(prefix, f.name)

		value, ok := lookupField(obj, f.name)
		if !ok {
			r.warn("field not found", ErrFieldNotFound, logger.Path(path), logger.Field(f.name))
			if r.v.missing != MissingFieldValidate {
				continue
			}
		}

		var node ErrorNode
		switch n := f.node.(type) {
		case *Schema:
			if r.v.maxDepth > 0 && depth+1 > r.v.maxDepth {
				r.warn("nested schema not validated", ErrMaxDepth, logger.Path(path), logger.Depth(depth+1))
				continue
			}
			// A schema nested in itself only terminates on a finite object.
			if isEmpty(value) && r.active[n] > 0 {
				r.warn("nested schema not validated", ErrSchemaCycle, logger.Path(path))
				continue
			}
			r.active[n]++
			sub := r.object(value, n, path, depth+1)
			r.active[n]--
			if sub != nil {
				node = sub
			}
		case Rules:
			if msgs := r.rules(value, obj, n, path); len(msgs) > 0 {
				node = msgs
			}
		}

		if node != nil {
			if tree == nil {
				tree = make(ErrorTree)
			}
			tree[f.name] = node
		}
	}
	return tree
}

func (r *run) rules(value, parent any, rules Rules, path string) Messages {
	var msgs Messages
	for _, rule := range rules {
		if rule.Err != nil {
			r.warn("rule skipped", rule.Err, logger.Path(path), logger.Rule(rule.Name))
			continue
		}
		if rule.Check == nil {
			r.warn("rule skipped", ErrNilCheck, logger.Path(path), logger.Rule(rule.Name))
			continue
		}
		if rule.Check(value, parent) {
			continue
		}

		msg := formatMessage(rule.Message, value)
		msgs = append(msgs, msg)
		r.violations.Add(ValidationError{Field: path, Rule: rule.Name, Message: msg})
	}
	return msgs
}

func (r *run) warn(msg string, err error, attrs ...slog.Attr) {
	attrs = append(attrs, logger.Error(err))
	r.v.log().LogAttrs(r.ctx, slog.LevelWarn, msg, attrs...)
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
