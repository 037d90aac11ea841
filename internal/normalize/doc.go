// Package normalize provides the text-level heuristics shared by all
// program extractors: whitespace collapsing, URL absolutization, and
// recognition of date and time strings as they appear on conference
// program pages.
//
// Every function here is total: unrecognized input produces an empty
// result, never an error, so a failed match on one fragment can never
// abort extraction of the rest of the document.
package normalize
