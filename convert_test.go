package draft3

import (
	"reflect"
	"testing"
)

func TestModernize_LiftsRequiredIntoParentArray(t *testing.T) {
	s := mustSchema(t, `{
        "$schema": "http://json-schema.org/draft-03/schema#",
        "type": "object",
        "properties": {
            "name": {"type": "string", "required": true},
            "currency": {"type": "string", "required": true},
            "email": {"type": "string"}
        }
    }`)

	out, err := s.Modernize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	required, ok := out["required"].([]string)
	if !ok {
		t.Fatalf("expected required array, got %T", out["required"])
	}
	if !reflect.DeepEqual(required, []string{"currency", "name"}) {
		t.Fatalf("expected sorted required names, got %v", required)
	}

	props := out["properties"].(map[string]any)
	for _, name := range []string{"name", "currency", "email"} {
		child := props[name].(map[string]any)
		if _, present := child["required"]; present {
			t.Fatalf("boolean required left on property %q: %v", name, child)
		}
	}
}

func TestModernize_RewritesSchemaURI(t *testing.T) {
	s := mustSchema(t, `{"$schema": "http://json-schema.org/draft-03/schema#", "type": "object"}`)
	out, err := s.Modernize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["$schema"] != ModernDraftURI {
		t.Fatalf("expected %q, got %v", ModernDraftURI, out["$schema"])
	}
}

func TestModernize_NoSchemaURIStaysAbsent(t *testing.T) {
	s := mustSchema(t, `{"type": "object"}`)
	out, err := s.Modernize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, present := out["$schema"]; present {
		t.Fatalf("expected no $schema, got %v", out["$schema"])
	}
}

func TestModernize_RootRequiredIsError(t *testing.T) {
	s := Schema{Type: TypeSet{TypeObject}, Required: ptr(true)}
	if _, err := s.Modernize(); err == nil {
		t.Fatalf("expected error for root-level required")
	}
}

func TestModernize_ItemsRequiredIsError(t *testing.T) {
	s := mustSchema(t, `{
        "type": "array",
        "items": {"type": "string", "required": true}
    }`)
	if _, err := s.Modernize(); err == nil {
		t.Fatalf("expected error for required on items")
	}
}

func TestModernize_ExclusiveBoundsBecomeNumeric(t *testing.T) {
	s := mustSchema(t, `{
        "type": "number",
        "minimum": 0, "exclusiveMinimum": true,
        "maximum": 100
    }`)
	out, err := s.Modernize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["exclusiveMinimum"] != 0.0 {
		t.Fatalf("expected numeric exclusiveMinimum 0, got %v", out["exclusiveMinimum"])
	}
	if _, present := out["minimum"]; present {
		t.Fatalf("expected minimum dropped in favor of exclusiveMinimum")
	}
	if out["maximum"] != 100.0 {
		t.Fatalf("expected inclusive maximum kept, got %v", out["maximum"])
	}
}

func TestModernize_ReadonlyBecomesReadOnly(t *testing.T) {
	s := mustSchema(t, `{"type": "number", "readonly": true}`)
	out, err := s.Modernize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["readOnly"] != true {
		t.Fatalf("expected readOnly true, got %v", out)
	}
	if _, present := out["readonly"]; present {
		t.Fatalf("expected draft-03 spelling dropped, got %v", out)
	}
}

func TestModernize_AnyTypeDisappears(t *testing.T) {
	s := mustSchema(t, `{"type": "any"}`)
	out, err := s.Modernize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, present := out["type"]; present {
		t.Fatalf("expected type dropped for any, got %v", out["type"])
	}

	s = mustSchema(t, `{"type": ["string", "any"]}`)
	out, err = s.Modernize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["type"] != "string" {
		t.Fatalf("expected remaining single type as string, got %v", out["type"])
	}
}

func TestModernize_CarriesUnknownKeywords(t *testing.T) {
	s := mustSchema(t, `{
        "type": "object",
        "title": "Customer collection",
        "links": [{"rel": "self"}]
    }`)
	out, err := s.Modernize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["title"] != "Customer collection" {
		t.Fatalf("expected title carried, got %v", out["title"])
	}
	if _, present := out["links"]; !present {
		t.Fatalf("expected links carried, got %v", out)
	}
}

func TestModernize_NestedLifting(t *testing.T) {
	s := mustSchema(t, customersSchemaJSON)
	out, err := s.Modernize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root := out["required"].([]string)
	if !reflect.DeepEqual(root, []string{"self"}) {
		t.Fatalf("expected root required [self], got %v", root)
	}

	items := out["properties"].(map[string]any)["collection"].(map[string]any)["items"].(map[string]any)
	got := items["required"].([]string)
	want := []string{"currency", "customerGroup", "name", "paymentTerms", "self", "vatZone"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected item required %v, got %v", want, got)
	}
}
