// Package extract turns a conference program HTML document into the
// normalized schedule model.
//
// Extraction is a cascade of strategies of decreasing specificity: the
// card-layout extractor understands the Bootstrap card convention used by
// the live program page; three generic fallbacks recognize class-name
// hints, day-level headings, and finally the whole document as a single
// day. The pipeline accepts the first strategy that yields any days, and
// emits a single placeholder day when every strategy comes up empty, so
// callers always receive structurally valid output.
package extract
