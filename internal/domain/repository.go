package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CompletionClient defines the interface for the external text-completion
// service. A single prompt in, free text out; the caller is responsible for
// timeouts via the context.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
