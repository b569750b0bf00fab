// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their goroutines and return.
// Stop must block until those goroutines have exited and must be safe to
// call on a worker that was never started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go process(ctx)
//	}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
