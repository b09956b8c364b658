package service

import "context"

// ImageFetcherInterface defines the contract for catalog image retrieval
type ImageFetcherInterface interface {
	// FetchAll retrieves every URL and returns the results aligned to the
	// input order. A slot is nil when that image could not be fetched;
	// per-image failures never fail the batch.
	FetchAll(ctx context.Context, urls []string) [][]byte
}
