package draft3

import "strings"

// Draft URIs recognized by this package. The accounting API publishes its
// documents against the draft-03 core schema; the hyper-schema variant shows
// up in older exports of the same corpus.
const (
	DraftURI      = "http://json-schema.org/draft-03/schema"
	HyperDraftURI = "http://json-schema.org/draft-03/hyper-schema"

	// ModernDraftURI is the dialect Modernize emits.
	ModernDraftURI = "https://json-schema.org/draft/2020-12/schema"
)

// SupportedDrafts returns the $schema URIs this package accepts.
func SupportedDrafts() []string {
	return []string{DraftURI, HyperDraftURI}
}

// IsSupportedDraft reports whether the provided $schema URI names a draft
// this package implements. A trailing "#" fragment is ignored, matching how
// the published documents spell the URI.
func IsSupportedDraft(uri string) bool {
	uri = strings.TrimSuffix(strings.TrimSpace(uri), "#")
	for _, d := range SupportedDrafts() {
		if uri == d {
			return true
		}
	}
	return false
}
