// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing and access logging are handled in this package before
// requests are delegated to the service layer; validation failures raised by
// the service layer are rendered as 422 responses listing every violation.
package http
