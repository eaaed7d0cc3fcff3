package port

import (
	"context"
	"time"
)

// Scheduler runs work on behalf of the single UI loop. Callbacks passed to
// Post, AfterFunc and the done func of Go always run on the loop.
type Scheduler interface {
	Post(fn func())
	// AfterFunc runs fn on the loop after d. cancel is safe to call twice.
	AfterFunc(d time.Duration, fn func()) (cancel func())
	// Go runs work off the loop and then calls done on the loop.
	Go(ctx context.Context, work func(ctx context.Context) error, done func(err error))
}
