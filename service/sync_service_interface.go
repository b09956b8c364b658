package service

import "context"

// SyncStats summarizes one image synchronization run.
// cached = images optimized and written to the cache, skipped = already
// cached or unmatched to a product, total = image files seen in Drive.
type SyncStats struct {
	Total   int      `json:"total"`
	Cached  int      `json:"cached"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// SyncServiceInterface defines the contract for product image sync
type SyncServiceInterface interface {
	SyncProductImages(ctx context.Context, folderID string) (*SyncStats, error)
}
