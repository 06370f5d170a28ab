// Package draft3 models and validates the JSON Schema draft-03 documents
// published by the accounting REST API (customers, customer contacts, ...).
//
// The package has three concerns, all pure functions over immutable inputs:
//
//   - Parsing: Schema is a lossless model of a draft-03 document. Unknown
//     keywords and the declaration order of properties survive an
//     unmarshal → marshal round trip.
//   - Checking: Schema.Check reports whether the document itself is well
//     formed. A malformed document is a configuration error (*SchemaError),
//     and is never conflated with instance violations.
//   - Validating: Schema.Validate and Schema.ValidateJSON check a candidate
//     instance and return every failed constraint as a Violation naming the
//     property path, the violated keyword, and context. An empty violation
//     list signals conformance.
//
// # Quick Start
//
//	var s draft3.Schema
//	if err := json.Unmarshal(doc, &s); err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := s.ValidateJSON(instance)
//	if err != nil {
//	    log.Fatal(err) // malformed schema or undecodable instance
//	}
//	for _, v := range res.Violations {
//	    fmt.Println(v)
//	}
//
// # Draft-03 required
//
// Draft-03 marks a required property with `"required": true` on the
// property's own schema; the obligation lands on the enclosing object
// instance. Modernize lifts those booleans into the `required` arrays used
// by JSON Schema 2020-12.
//
// # Informational keywords
//
// description, sortable, filterable, readonly and restdocs document the
// remote API (filtering, sorting, endpoint docs). They are modeled and
// preserved but never enforced.
//
// # Concurrency
//
// Validation is a synchronous, single-call computation with no shared
// mutable state. All methods are safe for concurrent use on the same Schema
// value; concurrent writes to a Schema require external synchronization.
//
// # Subpackages
//
//   - canonicaljson: RFC 8785 (JCS) deterministic JSON serialization and
//     value equality (used for enum and uniqueItems)
//   - format: draft-03 "format" keyword registry
//   - catalog: the embedded accounting-API schema documents
package draft3
