package validator

// Node is a schema entry: either Rules (a leaf) or a nested *Schema.
type Node interface {
	schemaNode()
}

// Rules is the ordered rule list of a leaf field.
type Rules []Rule

func (Rules) schemaNode()   {}
func (*Schema) schemaNode() {}

// Schema describes which rules, or which nested schemas, apply to which
// fields. Fields are validated in declaration order.
//
//	s := validator.NewSchema().
//	    Field("name", validator.Required("Name is required")).
//	    Nested("address", validator.NewSchema().
//	        Field("country", validator.ElementOf([]string{"US", "FR"})))
//
// A schema is not modified by validation and may be shared between
// goroutines once built.
type Schema struct {
	fields []schemaField
	index  map[string]int
}

type schemaField struct {
	name string
	node Node
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{index: make(map[string]int)}
}

// Field declares a leaf field validated by rules in the given order.
func (s *Schema) Field(name string, rules ...Rule) *Schema {
	return s.Set(name, Rules(rules))
}

// Nested declares a field holding an object validated by schema.
func (s *Schema) Nested(name string, schema *Schema) *Schema {
	return s.Set(name, schema)
}

// Set declares a field with an explicit node. Declaring an existing field
// again replaces its node and keeps its original position.
func (s *Schema) Set(name string, node Node) *Schema {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[name]; ok {
		s.fields[i].node = node
		return s
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, schemaField{name: name, node: node})
	return s
}

// Get returns the node declared for a field.
func (s *Schema) Get(name string) (Node, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i].node, true
}

// Fields returns field names in declaration order.
func (s *Schema) Fields() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}

// Lookup resolves a dotted path through nested schemas and returns the
// node found at its end.
func (s *Schema) Lookup(path string) (Node, bool) {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return nil, false
	}

	current := s
	for i, seg := range segments {
		node, ok := current.Get(seg)
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return node, true
		}
		next, ok := node.(*Schema)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// Rules returns the rule list declared at a dotted path.
func (s *Schema) Rules(path string) (Rules, bool) {
	node, ok := s.Lookup(path)
	if !ok {
		return nil, false
	}
	rules, ok := node.(Rules)
	return rules, ok
}
