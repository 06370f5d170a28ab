package draft3

import (
	"encoding/json"
)

// Type is a draft-03 simple type name.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeNull    Type = "null"
	// TypeAny matches every instance. Draft-03 also treats an absent
	// "type" keyword as "any".
	TypeAny Type = "any"
)

// TypeSet is the draft-03 "type" keyword: a single simple type name or a
// union of names. An empty set places no type constraint on the instance.
type TypeSet []Type

// Contains reports whether the set names t.
func (ts TypeSet) Contains(t Type) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}

func (ts *TypeSet) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*ts = TypeSet{Type(single)}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	out := make(TypeSet, 0, len(many))
	for _, s := range many {
		out = append(out, Type(s))
	}
	*ts = out
	return nil
}

func (ts TypeSet) MarshalJSON() ([]byte, error) {
	if len(ts) == 1 {
		return json.Marshal(string(ts[0]))
	}
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, string(t))
	}
	return json.Marshal(out)
}

// Pre-computed known keyword set for lossless unmarshaling.
var knownSchemaSet = knownSet(
	"$schema", "id", "type", "properties", "items", "required",
	"enum", "minLength", "maxLength", "minimum", "maximum",
	"exclusiveMinimum", "exclusiveMaximum",
	"minItems", "maxItems", "uniqueItems",
	"pattern", "format", "default", "description",
	"sortable", "filterable", "readonly", "restdocs",
)

// Schema is a draft-03 JSON Schema document node.
//
// Required carries the draft-03 per-property boolean "required" annotation:
// set on a property's schema, it obliges the enclosing object instance to
// contain that key. It has no meaning at the document root, where there is
// no enclosing object.
//
// Description, Sortable, Filterable, ReadOnly and Restdocs are informational
// accounting-API metadata. They are modeled and preserved but never enforced
// by Validate.
type Schema struct {
	SchemaURI string `json:"$schema,omitempty"`
	ID        string `json:"id,omitempty"`

	Type       TypeSet            `json:"type,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   *bool              `json:"required,omitempty"`

	Enum []any `json:"enum,omitempty"`

	MinLength *int `json:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty"`

	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum bool     `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum bool     `json:"exclusiveMaximum,omitempty"`

	MinItems    *int `json:"minItems,omitempty"`
	MaxItems    *int `json:"maxItems,omitempty"`
	UniqueItems bool `json:"uniqueItems,omitempty"`

	Pattern string `json:"pattern,omitempty"`
	Format  string `json:"format,omitempty"`
	Default any    `json:"default,omitempty"`

	Description string `json:"description,omitempty"`
	Sortable    bool   `json:"sortable,omitempty"`
	Filterable  bool   `json:"filterable,omitempty"`
	ReadOnly    bool   `json:"readonly,omitempty"`
	Restdocs    string `json:"restdocs,omitempty"`

	// PropertyOrder records the declaration order of Properties as seen in
	// the source JSON. It is populated by UnmarshalJSON and reused during
	// marshaling and validation so that round trips keep the published
	// property order and results are deterministic. Schemas constructed in
	// Go may leave it nil; iteration then falls back to sorted names.
	PropertyOrder []string `json:"-"`

	// Unknown preserves keywords this package does not model (the documents
	// predate the package, and vendors add their own annotations).
	// It is populated by UnmarshalJSON and included by MarshalJSON.
	Unknown map[string]json.RawMessage `json:"-"`
}

type schemaWire struct {
	SchemaURI string `json:"$schema,omitempty"`
	ID        string `json:"id,omitempty"`

	Type     TypeSet `json:"type,omitempty"`
	Items    *Schema `json:"items,omitempty"`
	Required *bool   `json:"required,omitempty"`

	Enum []any `json:"enum,omitempty"`

	MinLength *int `json:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty"`

	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum bool     `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum bool     `json:"exclusiveMaximum,omitempty"`

	MinItems    *int `json:"minItems,omitempty"`
	MaxItems    *int `json:"maxItems,omitempty"`
	UniqueItems bool `json:"uniqueItems,omitempty"`

	Pattern string `json:"pattern,omitempty"`
	Format  string `json:"format,omitempty"`
	Default any    `json:"default,omitempty"`

	Description string `json:"description,omitempty"`
	Sortable    bool   `json:"sortable,omitempty"`
	Filterable  bool   `json:"filterable,omitempty"`
	ReadOnly    bool   `json:"readonly,omitempty"`
	Restdocs    string `json:"restdocs,omitempty"`
}

type schemaWireIn struct {
	schemaWire
	Properties map[string]*Schema `json:"properties,omitempty"`
}

func (s *Schema) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w schemaWireIn
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*s = Schema{
		SchemaURI:        w.SchemaURI,
		ID:               w.ID,
		Type:             w.Type,
		Properties:       w.Properties,
		Items:            w.Items,
		Required:         w.Required,
		Enum:             w.Enum,
		MinLength:        w.MinLength,
		MaxLength:        w.MaxLength,
		Minimum:          w.Minimum,
		Maximum:          w.Maximum,
		ExclusiveMinimum: w.ExclusiveMinimum,
		ExclusiveMaximum: w.ExclusiveMaximum,
		MinItems:         w.MinItems,
		MaxItems:         w.MaxItems,
		UniqueItems:      w.UniqueItems,
		Pattern:          w.Pattern,
		Format:           w.Format,
		Default:          w.Default,
		Description:      w.Description,
		Sortable:         w.Sortable,
		Filterable:       w.Filterable,
		ReadOnly:         w.ReadOnly,
		Restdocs:         w.Restdocs,
	}

	if propsRaw, ok := raw["properties"]; ok && len(w.Properties) > 0 {
		order, err := objectKeys(propsRaw)
		if err != nil {
			return err
		}
		s.PropertyOrder = order
	}

	s.Unknown = splitUnknown(raw, knownSchemaSet)
	return nil
}

func (s Schema) MarshalJSON() ([]byte, error) {
	w := schemaWire{
		SchemaURI:        s.SchemaURI,
		ID:               s.ID,
		Type:             s.Type,
		Items:            s.Items,
		Required:         s.Required,
		Enum:             s.Enum,
		MinLength:        s.MinLength,
		MaxLength:        s.MaxLength,
		Minimum:          s.Minimum,
		Maximum:          s.Maximum,
		ExclusiveMinimum: s.ExclusiveMinimum,
		ExclusiveMaximum: s.ExclusiveMaximum,
		MinItems:         s.MinItems,
		MaxItems:         s.MaxItems,
		UniqueItems:      s.UniqueItems,
		Pattern:          s.Pattern,
		Format:           s.Format,
		Default:          s.Default,
		Description:      s.Description,
		Sortable:         s.Sortable,
		Filterable:       s.Filterable,
		ReadOnly:         s.ReadOnly,
		Restdocs:         s.Restdocs,
	}

	// Properties are rendered separately so the captured declaration order
	// survives the round trip.
	var props json.RawMessage
	if len(s.Properties) > 0 {
		var err error
		props, err = marshalOrderedProperties(s.Properties, s.propertyNames())
		if err != nil {
			return nil, err
		}
	}

	return marshalLossless(s.Unknown, props, w)
}

// propertyNames returns the property names in deterministic iteration order:
// declaration order where captured, then any remaining names sorted.
func (s *Schema) propertyNames() []string {
	return orderNames(s.Properties, s.PropertyOrder)
}
