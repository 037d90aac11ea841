// Package fetch retrieves the raw conference program HTML over HTTP.
//
// The fetcher is a thin collaborator around the extraction core: it
// downloads the document with a bounded timeout and decodes it to UTF-8
// honoring the declared character encoding, but does no parsing or
// caching itself.
package fetch
