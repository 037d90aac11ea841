// Package storage persists the two artifacts of a pipeline run: the cached
// raw program HTML and the generated program JSON document.
//
// The raw HTML cache lets the pipeline be re-run without touching the
// network; the previously generated JSON doubles as the baseline for
// detecting newly added sessions. Paths support ~ expansion to the user's
// home directory.
package storage
