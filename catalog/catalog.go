// Package catalog embeds the accounting API's draft-03 schema documents.
//
// Each document corresponds to one HTTP resource/verb combination of the
// remote API, named after its path, e.g. "customers.get" for GET /customers
// and "customers.customerNumber.contacts.contactNumber.get" for
// GET /customers/{id}/contacts/{id}. Embedding keeps the CLI and library
// working regardless of the working directory or installation location.
package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	draft3 "github.com/restdocs/draft3-go"
)

//go:embed schemas/*.schema.json
var schemasFS embed.FS

const (
	schemasDir = "schemas"
	suffix     = ".schema.json"
)

// ErrNotFound is returned when no embedded document has the requested name.
var ErrNotFound = errors.New("catalog: schema not found")

// Names returns the names of all embedded schema documents, sorted.
func Names() []string {
	entries, err := schemasFS.ReadDir(schemasDir)
	if err != nil {
		// The directory is embedded at compile time; it cannot be absent.
		panic(fmt.Sprintf("catalog: read embedded schemas: %v", err))
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		out = append(out, strings.TrimSuffix(name, suffix))
	}
	sort.Strings(out)
	return out
}

// Raw returns the embedded document bytes for name (e.g. "customers.get").
func Raw(name string) ([]byte, error) {
	b, err := schemasFS.ReadFile(schemasDir + "/" + name + suffix)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return b, nil
}

// Load parses and checks the embedded document for name.
func Load(name string) (*draft3.Schema, error) {
	b, err := Raw(name)
	if err != nil {
		return nil, err
	}
	var s draft3.Schema
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("catalog: parse %q: %w", name, err)
	}
	if err := s.Check(); err != nil {
		return nil, fmt.Errorf("catalog: %q: %w", name, err)
	}
	return &s, nil
}
