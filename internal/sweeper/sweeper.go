package sweeper

import (
	"context"
)

// Sweeper is a long-running background job started next to the API server
type Sweeper interface {
	// Start blocks until ctx is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop signals the loop to exit and waits for the cycle in progress, bounded by ctx
	Stop(ctx context.Context) error

	Name() string
}
