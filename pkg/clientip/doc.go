// Package clientip extracts the caller's IP address from an HTTP request,
// honoring a configurable list of trusted proxy headers.
package clientip
