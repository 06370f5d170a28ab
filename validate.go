package draft3

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/restdocs/draft3-go/canonicaljson"
	"github.com/restdocs/draft3-go/format"
)

// Validate checks an instance value against the schema and reports every
// constraint it fails. It is a pure function: the schema and instance are
// never mutated, there is no I/O, and the same (schema, instance) pair
// always yields the same Result, in the same order. Safe for concurrent use
// on the same Schema.
//
// The instance is the usual encoding/json value vocabulary: map[string]any,
// []any, string, bool, nil, and float64 or json.Number for numbers.
//
// A non-nil error means the schema itself was unusable (a configuration
// error); it is never returned for a merely non-conformant instance.
func (s *Schema) Validate(instance any) (Result, error) {
	if err := s.Check(); err != nil {
		return Result{}, err
	}
	var vv []Violation
	s.validateValue(&vv, instance, "")
	return Result{Violations: vv}, nil
}

// ValidateJSON decodes data and validates the result. Numbers are decoded
// with json.Number so integer bounds survive intact. Undecodable input is a
// configuration error, not a violation.
func (s *Schema) ValidateJSON(data []byte) (Result, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var instance any
	if err := dec.Decode(&instance); err != nil {
		return Result{}, fmt.Errorf("decode instance: %w", err)
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		if err == nil {
			return Result{}, fmt.Errorf("decode instance: trailing data")
		}
		return Result{}, fmt.Errorf("decode instance: %w", err)
	}
	return s.Validate(instance)
}

func (s *Schema) validateValue(vv *[]Violation, v any, path string) {
	if !typeAdmits(s.Type, v) {
		*vv = append(*vv, Violation{
			Path:       path,
			Constraint: ConstraintType,
			Message:    fmt.Sprintf("expected %s, got %s", typeSetString(s.Type), instanceTypeName(v)),
		})
		return
	}

	if len(s.Enum) > 0 && !enumContains(s.Enum, v) {
		*vv = append(*vv, Violation{
			Path:       path,
			Constraint: ConstraintEnum,
			Message:    fmt.Sprintf("value %s is not in the enumeration", canonicalOrPlaceholder(v)),
		})
	}

	switch x := v.(type) {
	case map[string]any:
		s.validateObject(vv, x, path)
	case []any:
		s.validateArray(vv, x, path)
	case string:
		s.validateString(vv, x, path)
	case json.Number:
		// ParseFloat saturates out-of-range numbers to ±Inf (overflow) or
		// ±0 (underflow), so bound checks still apply to values a float64
		// cannot represent.
		f, _ := x.Float64()
		s.validateNumber(vv, f, path)
	case float64:
		s.validateNumber(vv, x, path)
	}
}

func (s *Schema) validateObject(vv *[]Violation, obj map[string]any, path string) {
	for _, name := range s.propertyNames() {
		prop := s.Properties[name]
		if prop == nil {
			continue
		}
		child := childPath(path, name)
		val, present := obj[name]
		if !present {
			if prop.Required != nil && *prop.Required {
				*vv = append(*vv, Violation{
					Path:       child,
					Constraint: ConstraintRequired,
					Message:    fmt.Sprintf("missing required property %q", name),
				})
			}
			continue
		}
		prop.validateValue(vv, val, child)
	}
}

func (s *Schema) validateArray(vv *[]Violation, arr []any, path string) {
	if s.MinItems != nil && len(arr) < *s.MinItems {
		*vv = append(*vv, Violation{
			Path:       path,
			Constraint: ConstraintMinItems,
			Message:    fmt.Sprintf("%d items, minItems is %d", len(arr), *s.MinItems),
		})
	}
	if s.MaxItems != nil && len(arr) > *s.MaxItems {
		*vv = append(*vv, Violation{
			Path:       path,
			Constraint: ConstraintMaxItems,
			Message:    fmt.Sprintf("%d items, maxItems is %d", len(arr), *s.MaxItems),
		})
	}
	if s.UniqueItems {
		seen := make(map[string]struct{}, len(arr))
		for i, item := range arr {
			key, err := canonicaljson.String(item)
			if err != nil {
				continue
			}
			if _, dup := seen[key]; dup {
				*vv = append(*vv, Violation{
					Path:       indexPath(path, i),
					Constraint: ConstraintUniqueItems,
					Message:    fmt.Sprintf("duplicate item %s", key),
				})
				continue
			}
			seen[key] = struct{}{}
		}
	}
	if s.Items != nil {
		for i, item := range arr {
			s.Items.validateValue(vv, item, indexPath(path, i))
		}
	}
}

func (s *Schema) validateString(vv *[]Violation, str string, path string) {
	// Lengths count Unicode code points, not bytes.
	n := utf8.RuneCountInString(str)
	if s.MinLength != nil && n < *s.MinLength {
		*vv = append(*vv, Violation{
			Path:       path,
			Constraint: ConstraintMinLength,
			Message:    fmt.Sprintf("length %d is below minLength %d", n, *s.MinLength),
		})
	}
	if s.MaxLength != nil && n > *s.MaxLength {
		*vv = append(*vv, Violation{
			Path:       path,
			Constraint: ConstraintMaxLength,
			Message:    fmt.Sprintf("length %d exceeds maxLength %d", n, *s.MaxLength),
		})
	}
	if s.Pattern != "" {
		// Compilation is vetted by Check before the walk starts.
		if re, err := regexp.Compile(s.Pattern); err == nil && !re.MatchString(str) {
			*vv = append(*vv, Violation{
				Path:       path,
				Constraint: ConstraintPattern,
				Message:    fmt.Sprintf("value %q does not match pattern %q", str, s.Pattern),
			})
		}
	}
	if s.Format != "" && !format.Check(s.Format, str) {
		*vv = append(*vv, Violation{
			Path:       path,
			Constraint: ConstraintFormat,
			Message:    fmt.Sprintf("value %q is not a valid %s", str, s.Format),
		})
	}
}

func (s *Schema) validateNumber(vv *[]Violation, f float64, path string) {
	if s.Minimum != nil {
		if s.ExclusiveMinimum {
			if f <= *s.Minimum {
				*vv = append(*vv, Violation{
					Path:       path,
					Constraint: ConstraintExclusiveMinimum,
					Message:    fmt.Sprintf("value %v is not above exclusive minimum %v", f, *s.Minimum),
				})
			}
		} else if f < *s.Minimum {
			*vv = append(*vv, Violation{
				Path:       path,
				Constraint: ConstraintMinimum,
				Message:    fmt.Sprintf("value %v is below minimum %v", f, *s.Minimum),
			})
		}
	}
	if s.Maximum != nil {
		if s.ExclusiveMaximum {
			if f >= *s.Maximum {
				*vv = append(*vv, Violation{
					Path:       path,
					Constraint: ConstraintExclusiveMaximum,
					Message:    fmt.Sprintf("value %v is not below exclusive maximum %v", f, *s.Maximum),
				})
			}
		} else if f > *s.Maximum {
			*vv = append(*vv, Violation{
				Path:       path,
				Constraint: ConstraintMaximum,
				Message:    fmt.Sprintf("value %v exceeds maximum %v", f, *s.Maximum),
			})
		}
	}
}

// typeAdmits reports whether the instance value is admitted by the declared
// type set. An empty set and "any" admit everything; "number" admits
// integers; "integer" admits only whole numbers.
func typeAdmits(ts TypeSet, v any) bool {
	if len(ts) == 0 || ts.Contains(TypeAny) {
		return true
	}
	switch x := v.(type) {
	case nil:
		return ts.Contains(TypeNull)
	case bool:
		return ts.Contains(TypeBoolean)
	case string:
		return ts.Contains(TypeString)
	case map[string]any:
		return ts.Contains(TypeObject)
	case []any:
		return ts.Contains(TypeArray)
	case float64:
		return ts.Contains(TypeNumber) || (ts.Contains(TypeInteger) && isIntegral(x))
	case json.Number:
		if ts.Contains(TypeNumber) {
			return true
		}
		if !ts.Contains(TypeInteger) {
			return false
		}
		if _, err := x.Int64(); err == nil {
			return true
		}
		f, err := x.Float64()
		return err == nil && isIntegral(f)
	default:
		return false
	}
}

func isIntegral(f float64) bool {
	return f == math.Trunc(f) && !math.IsInf(f, 0)
}

func instanceTypeName(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case float64:
		if isIntegral(x) {
			return "integer"
		}
		return "number"
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return "integer"
		}
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// enumContains reports membership using canonical-JSON value equality, so
// 1, 1.0 and json.Number("1") are the same member.
func enumContains(enum []any, v any) bool {
	for _, member := range enum {
		if eq, err := canonicaljson.Equal(member, v); err == nil && eq {
			return true
		}
	}
	return false
}

func canonicalOrPlaceholder(v any) string {
	s, err := canonicaljson.String(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return s
}

func childPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
