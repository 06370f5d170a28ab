package draft3

import "fmt"

// Constraint names the schema constraint a violation reports against.
type Constraint string

const (
	ConstraintType             Constraint = "type"
	ConstraintRequired         Constraint = "required"
	ConstraintMinLength        Constraint = "minLength"
	ConstraintMaxLength        Constraint = "maxLength"
	ConstraintMinimum          Constraint = "minimum"
	ConstraintMaximum          Constraint = "maximum"
	ConstraintExclusiveMinimum Constraint = "exclusiveMinimum"
	ConstraintExclusiveMaximum Constraint = "exclusiveMaximum"
	ConstraintEnum             Constraint = "enum"
	ConstraintUniqueItems      Constraint = "uniqueItems"
	ConstraintMinItems         Constraint = "minItems"
	ConstraintMaxItems         Constraint = "maxItems"
	ConstraintPattern          Constraint = "pattern"
	ConstraintFormat           Constraint = "format"
)

// Violation is a single reported mismatch between an instance and a schema
// constraint.
type Violation struct {
	// Path locates the failing value within the instance, e.g.
	// `collection[0].currency`. Empty for the instance root.
	Path string `json:"path"`
	// Constraint is the violated keyword.
	Constraint Constraint `json:"constraint"`
	// Message is human-readable context for the mismatch.
	Message string `json:"message"`
}

func (v Violation) String() string {
	if v.Path == "" {
		return fmt.Sprintf("<root>: %s (%s)", v.Message, v.Constraint)
	}
	return fmt.Sprintf("%s: %s (%s)", v.Path, v.Message, v.Constraint)
}

// Result is the outcome of validating one instance against one schema.
// A Result with no violations signals conformance; a non-conformant instance
// is a negative result, not an error.
type Result struct {
	Violations []Violation `json:"violations"`
}

// Valid reports whether the instance conformed to the schema.
func (r Result) Valid() bool {
	return len(r.Violations) == 0
}
