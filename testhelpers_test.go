package draft3

import (
	"encoding/json"
	"testing"
)

func ptr[T any](v T) *T {
	return &v
}

func mustUnmarshalJSON[T any](t *testing.T, b []byte, v *T) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

func mustMarshalJSON(t *testing.T, v any) []byte {
	t.Helper()
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return out
}

func mustUnmarshalToMap(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	return m
}

func mustValidate(t *testing.T, s *Schema, instance any) Result {
	t.Helper()
	res, err := s.Validate(instance)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	return res
}

func hasViolation(res Result, path string, c Constraint) bool {
	for _, v := range res.Violations {
		if v.Path == path && v.Constraint == c {
			return true
		}
	}
	return false
}

func containsProblem(err error, want string) bool {
	se, ok := err.(*SchemaError)
	if !ok {
		return false
	}
	for _, p := range se.Problems {
		if p == want {
			return true
		}
	}
	return false
}
