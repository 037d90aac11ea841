// Package schedule defines the normalized conference program data model.
//
// A Program wraps an ordered list of Days; each Day holds Sessions in
// document order, and each Session holds its talk Items in document order.
// Every entity carries a deterministic SHA256-derived fingerprint generated
// from its own content fields, so re-running the pipeline on unchanged HTML
// reproduces identical IDs. The package also provides snapshot diffing to
// detect sessions added since a previous run.
package schedule
