// Package gateway is the console's remote data gateway.
//
// # Overview
//
// The package provides typed access to the demo REST API: one Collection per
// resource (users, posts, albums, todos, comments, photos), each offering
// List, Get, Create, Update and Delete over HTTP+JSON. Every call returns a
// Response envelope whose Data field holds the decoded payload.
//
// # Transport
//
// Every request carries a fresh X-Request-ID header. A logging transport
// logs method and path of every request and response under that id, layered
// over an OpenTelemetry transport. The HTTP client enforces a fixed timeout; there
// are no retries.
//
// # Error Handling
//
// Non-2xx answers are returned as *APIError, carrying the server-supplied
// "message" field when the body has one. Transport failures are wrapped with
// the method and path of the request.
package gateway
