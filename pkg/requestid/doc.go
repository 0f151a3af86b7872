// Package requestid tags every request with an identifier that is echoed in
// the X-Request-ID response header, stored in the request context and added
// to log records through LogExtractor.
//
// Incoming identifiers are kept when they are short and made of
// [A-Za-z0-9_-]; anything else is replaced with a fresh UUID.
package requestid
