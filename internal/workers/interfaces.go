// Package workers runs the background jobs of the server next to the HTTP
// listener. Every worker stops when its context is cancelled.
package workers

import "context"

// Worker is a long-running background job. Run blocks until ctx is done or
// the job fails; a returned error stops the other workers.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
