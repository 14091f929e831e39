// Package workers provides long-running background tasks of the
// tradie-config command.
package workers

import "context"

// Worker is a background task that runs until ctx is cancelled or it fails.
type Worker interface {
	Run(ctx context.Context) error
}
