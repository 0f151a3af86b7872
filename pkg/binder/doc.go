// Package binder decodes HTTP request bodies into typed request structs for
// handler.Wrap. Binders return sentinel errors so the error handler can pick
// the response status.
package binder
