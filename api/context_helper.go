package api

import (
	"context"
	"time"
)

// QueryTimeout bounds every database call made from a request handler
const QueryTimeout = 10 * time.Second

// WithQueryTimeout derives a context with the standard query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}
