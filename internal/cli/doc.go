// Package cli implements the conf-schedule command line interface.
//
// The root command drives the whole pipeline: obtain the program HTML
// (from the local cache or the live site), run the extraction cascade,
// write the normalized program JSON, and report sessions added since the
// previous run. Exit code 2 signals that new sessions were found, which
// makes the command easy to wire into cron-style automation.
package cli
