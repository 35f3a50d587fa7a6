package server

import "context"

// Server defines the lifecycle contract for servers managed by this
// package.
//
// Implementations block in [RunServer] until ctx is cancelled, a stop
// signal arrives or serving fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server within the deadline of ctx.
	Shutdown(ctx context.Context) error
}
