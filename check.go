package draft3

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/restdocs/draft3-go/format"
)

type checkOptions struct {
	rejectUnknownKeywords bool
	rejectUnknownFormats  bool
	requireSupportedDraft bool
}

// CheckOption configures Schema.Check.
type CheckOption func(*checkOptions)

// WithRejectUnknownKeywords treats keywords this package does not model as
// errors. Default behavior is forward-compatible (unknowns preserved and
// ignored), so this is an opt-in "strict" mode.
func WithRejectUnknownKeywords() CheckOption {
	return func(o *checkOptions) { o.rejectUnknownKeywords = true }
}

// WithRejectUnknownFormats treats format names outside the draft-03 registry
// as errors. By default unknown formats are annotations, per the draft.
func WithRejectUnknownFormats() CheckOption {
	return func(o *checkOptions) { o.rejectUnknownFormats = true }
}

// WithRequireSupportedDraft requires the document's $schema URI, when
// present, to name a draft this package implements.
func WithRequireSupportedDraft() CheckOption {
	return func(o *checkOptions) { o.requireSupportedDraft = true }
}

var knownTypeNames = map[Type]struct{}{
	TypeString: {}, TypeNumber: {}, TypeInteger: {}, TypeBoolean: {},
	TypeObject: {}, TypeArray: {}, TypeNull: {}, TypeAny: {},
}

// Check verifies that the schema document itself is well formed. A malformed
// schema is a configuration error, reported fail-fast as a *SchemaError and
// kept distinct from instance violations (which Validate reports as a
// Result).
func (s *Schema) Check(opts ...CheckOption) error {
	o := checkOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var errs []string

	if s == nil {
		return &SchemaError{Problems: []string{"schema: must not be nil"}}
	}
	if s.Required != nil {
		errs = append(errs, `required: no enclosing object at the schema root`)
	}
	if o.requireSupportedDraft && s.SchemaURI != "" && !IsSupportedDraft(s.SchemaURI) {
		errs = append(errs, fmt.Sprintf("$schema: unsupported draft %q (supported %s)", s.SchemaURI, strings.Join(SupportedDrafts(), ", ")))
	}

	s.checkNode(&errs, "", o)

	if len(errs) == 0 {
		return nil
	}
	return &SchemaError{Problems: errs}
}

func (s *Schema) checkNode(errs *[]string, path string, o checkOptions) {
	for _, t := range s.Type {
		if _, ok := knownTypeNames[t]; !ok {
			*errs = append(*errs, fmt.Sprintf("%stype: unknown type %q", keyPrefix(path), t))
		}
	}

	if s.MinLength != nil && *s.MinLength < 0 {
		*errs = append(*errs, fmt.Sprintf("%sminLength: must not be negative", keyPrefix(path)))
	}
	if s.MaxLength != nil && *s.MaxLength < 0 {
		*errs = append(*errs, fmt.Sprintf("%smaxLength: must not be negative", keyPrefix(path)))
	}
	if s.MinLength != nil && s.MaxLength != nil && *s.MinLength > *s.MaxLength {
		*errs = append(*errs, fmt.Sprintf("%sminLength: %d exceeds maxLength %d", keyPrefix(path), *s.MinLength, *s.MaxLength))
	}

	if s.Minimum != nil && s.Maximum != nil && *s.Minimum > *s.Maximum {
		*errs = append(*errs, fmt.Sprintf("%sminimum: %v exceeds maximum %v", keyPrefix(path), *s.Minimum, *s.Maximum))
	}
	if s.ExclusiveMinimum && s.Minimum == nil {
		*errs = append(*errs, fmt.Sprintf("%sexclusiveMinimum: requires minimum", keyPrefix(path)))
	}
	if s.ExclusiveMaximum && s.Maximum == nil {
		*errs = append(*errs, fmt.Sprintf("%sexclusiveMaximum: requires maximum", keyPrefix(path)))
	}

	if s.MinItems != nil && *s.MinItems < 0 {
		*errs = append(*errs, fmt.Sprintf("%sminItems: must not be negative", keyPrefix(path)))
	}
	if s.MaxItems != nil && *s.MaxItems < 0 {
		*errs = append(*errs, fmt.Sprintf("%smaxItems: must not be negative", keyPrefix(path)))
	}
	if s.MinItems != nil && s.MaxItems != nil && *s.MinItems > *s.MaxItems {
		*errs = append(*errs, fmt.Sprintf("%sminItems: %d exceeds maxItems %d", keyPrefix(path), *s.MinItems, *s.MaxItems))
	}

	if s.Enum != nil && len(s.Enum) == 0 {
		*errs = append(*errs, fmt.Sprintf("%senum: must not be empty", keyPrefix(path)))
	}

	if s.Pattern != "" {
		if _, err := regexp.Compile(s.Pattern); err != nil {
			*errs = append(*errs, fmt.Sprintf("%spattern: invalid regular expression: %v", keyPrefix(path), err))
		}
	}

	if o.rejectUnknownFormats && s.Format != "" && !format.Known(s.Format) {
		*errs = append(*errs, fmt.Sprintf("%sformat: unknown format %q", keyPrefix(path), s.Format))
	}

	// properties/items only constrain instances of the matching type; having
	// them alongside a type that can never be an object/array is a schema
	// authoring mistake, not an annotation.
	if len(s.Properties) > 0 && len(s.Type) > 0 && !s.Type.Contains(TypeObject) && !s.Type.Contains(TypeAny) {
		*errs = append(*errs, fmt.Sprintf("%sproperties: type %s is never an object", keyPrefix(path), typeSetString(s.Type)))
	}
	if s.Items != nil && len(s.Type) > 0 && !s.Type.Contains(TypeArray) && !s.Type.Contains(TypeAny) {
		*errs = append(*errs, fmt.Sprintf("%sitems: type %s is never an array", keyPrefix(path), typeSetString(s.Type)))
	}

	if o.rejectUnknownKeywords {
		appendUnknownKeywordProblems(errs, path, s.Unknown)
	}

	for _, name := range s.propertyNames() {
		prop := s.Properties[name]
		if prop == nil {
			continue
		}
		prop.checkNode(errs, ptrJoin(path, fmt.Sprintf("properties[%q]", name)), o)
	}
	if s.Items != nil {
		// required on an items schema has no enclosing object to oblige,
		// same as at the document root.
		if s.Items.Required != nil {
			*errs = append(*errs, fmt.Sprintf("%sitems.required: no enclosing object", keyPrefix(path)))
		}
		s.Items.checkNode(errs, ptrJoin(path, "items"), o)
	}
}

func appendUnknownKeywordProblems(errs *[]string, path string, unknown map[string]json.RawMessage) {
	if len(unknown) == 0 {
		return
	}
	keys := make([]string, 0, len(unknown))
	for k := range unknown {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if path == "" {
		*errs = append(*errs, fmt.Sprintf("unknown keywords: %s", strings.Join(keys, ", ")))
		return
	}
	*errs = append(*errs, fmt.Sprintf("%s: unknown keywords: %s", path, strings.Join(keys, ", ")))
}

func keyPrefix(path string) string {
	if path == "" {
		return ""
	}
	return path + "."
}

func ptrJoin(path, seg string) string {
	if path == "" {
		return seg
	}
	return path + "." + seg
}

func typeSetString(ts TypeSet) string {
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, "|")
}

// SchemaError is a deterministic, multi-problem configuration error for a
// malformed schema document.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	if e == nil || len(e.Problems) == 0 {
		return "invalid schema"
	}
	return "invalid schema: " + strings.Join(e.Problems, "; ")
}
