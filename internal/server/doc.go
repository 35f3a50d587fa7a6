// Package server runs the HTTP API together with the background workers.
//
// It owns the process lifecycle: startup, signal handling and graceful
// shutdown within the configured timeout.
package server
