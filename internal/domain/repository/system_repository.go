package repository

import "context"

// SystemRepository exposes storage diagnostics for the status endpoint
type SystemRepository interface {
	Ping(ctx context.Context) error
	// CollectionCounts returns row counts keyed by collection name
	CollectionCounts(ctx context.Context) (map[string]int64, error)
}
