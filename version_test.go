package draft3

import "testing"

func TestIsSupportedDraft(t *testing.T) {
	cases := []struct {
		uri  string
		want bool
	}{
		{"http://json-schema.org/draft-03/schema", true},
		{"http://json-schema.org/draft-03/schema#", true},
		{"http://json-schema.org/draft-03/hyper-schema#", true},
		{"http://json-schema.org/draft-04/schema#", false},
		{"https://json-schema.org/draft/2020-12/schema", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsSupportedDraft(c.uri); got != c.want {
			t.Errorf("IsSupportedDraft(%q) = %v, want %v", c.uri, got, c.want)
		}
	}
}

func TestSupportedDrafts_NonEmpty(t *testing.T) {
	drafts := SupportedDrafts()
	if len(drafts) == 0 {
		t.Fatal("expected at least one supported draft")
	}
	for _, uri := range drafts {
		if !IsSupportedDraft(uri) {
			t.Errorf("SupportedDrafts lists %q but IsSupportedDraft rejects it", uri)
		}
	}
}
