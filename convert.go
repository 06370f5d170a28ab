package draft3

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Modernize renders the schema as a JSON Schema 2020-12 document.
//
// The essential rewrite is the "required" keyword: draft-03 marks required
// properties with a boolean annotation on the property's own schema, while
// later drafts collect the names into an array on the enclosing object. The
// boolean is lifted off each property and into a sorted "required" array on
// its parent; everything else, including keywords this package does not
// model, is carried over as-is. A $schema URI at the root is rewritten to
// the 2020-12 dialect. "exclusiveMinimum"/"exclusiveMaximum" booleans become
// the numeric form of the modern drafts, and draft-03 "readonly" becomes
// "readOnly".
//
// A boolean "required" at the document root has no enclosing object to
// attach to and is an error.
func (s *Schema) Modernize() (map[string]any, error) {
	if s == nil {
		return nil, errors.New("draft3: nil schema")
	}
	if s.Required != nil {
		return nil, errors.New(`draft3: "required" at the schema root has no enclosing object`)
	}
	out, err := s.modernizeNode("")
	if err != nil {
		return nil, err
	}
	if s.SchemaURI != "" {
		out["$schema"] = ModernDraftURI
	}
	return out, nil
}

func (s *Schema) modernizeNode(path string) (map[string]any, error) {
	out := map[string]any{}

	for k, v := range s.Unknown {
		var decoded any
		if err := json.Unmarshal(v, &decoded); err != nil {
			return nil, fmt.Errorf("%skeyword %q: %w", keyPrefix(path), k, err)
		}
		out[k] = decoded
	}

	if s.ID != "" {
		out["$id"] = s.ID
	}
	if len(s.Type) > 0 {
		types := modernTypes(s.Type)
		if len(types) == 1 {
			out["type"] = types[0]
		} else if len(types) > 0 {
			out["type"] = types
		}
	}
	if s.Enum != nil {
		out["enum"] = s.Enum
	}
	if s.MinLength != nil {
		out["minLength"] = *s.MinLength
	}
	if s.MaxLength != nil {
		out["maxLength"] = *s.MaxLength
	}
	if s.Minimum != nil {
		if s.ExclusiveMinimum {
			out["exclusiveMinimum"] = *s.Minimum
		} else {
			out["minimum"] = *s.Minimum
		}
	}
	if s.Maximum != nil {
		if s.ExclusiveMaximum {
			out["exclusiveMaximum"] = *s.Maximum
		} else {
			out["maximum"] = *s.Maximum
		}
	}
	if s.MinItems != nil {
		out["minItems"] = *s.MinItems
	}
	if s.MaxItems != nil {
		out["maxItems"] = *s.MaxItems
	}
	if s.UniqueItems {
		out["uniqueItems"] = true
	}
	if s.Pattern != "" {
		out["pattern"] = s.Pattern
	}
	if s.Format != "" {
		out["format"] = s.Format
	}
	if s.Default != nil {
		out["default"] = s.Default
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if s.Sortable {
		out["sortable"] = true
	}
	if s.Filterable {
		out["filterable"] = true
	}
	if s.ReadOnly {
		out["readOnly"] = true
	}
	if s.Restdocs != "" {
		out["restdocs"] = s.Restdocs
	}

	if s.Items != nil {
		items, err := s.Items.modernizeNode(ptrJoin(path, "items"))
		if err != nil {
			return nil, err
		}
		if s.Items.Required != nil {
			// required on array items has no enclosing object either
			return nil, fmt.Errorf(`%s: "required" on items has no enclosing object`, ptrJoin(path, "items"))
		}
		out["items"] = items
	}

	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		var required []string
		for _, name := range s.propertyNames() {
			prop := s.Properties[name]
			if prop == nil {
				continue
			}
			if prop.Required != nil && *prop.Required {
				required = append(required, name)
			}
			child, err := prop.modernizeNode(ptrJoin(path, fmt.Sprintf("properties[%q]", name)))
			if err != nil {
				return nil, err
			}
			props[name] = child
		}
		out["properties"] = props
		if len(required) > 0 {
			sort.Strings(required)
			out["required"] = required
		}
	}

	return out, nil
}

// modernTypes maps draft-03 type names onto the 2020-12 vocabulary: "any"
// disappears (absence means unconstrained in modern drafts).
func modernTypes(ts TypeSet) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		if t == TypeAny {
			continue
		}
		out = append(out, string(t))
	}
	return out
}
