// Package http implements the REST transport of the config server.
//
// Reads (key declarations, resolved values and raw tier values) are public.
// Writes need a bearer token signed with the server's token key. Request
// tracing, access logging and response compression are handled here before
// requests reach the service layer.
package http
