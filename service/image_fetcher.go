package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// fetchConcurrency bounds parallel image downloads per export request.
const fetchConcurrency = 4

// ImageFetcher downloads catalog images over HTTP. Relative URLs ("/...")
// are resolved against the configured base URL, which is how the product
// image endpoint of this same server is addressed.
type ImageFetcher struct {
	client  *http.Client
	baseURL string
}

// NewImageFetcher creates a new ImageFetcher
func NewImageFetcher(baseURL string) *ImageFetcher {
	return &ImageFetcher{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
	}
}

// Ensure ImageFetcher implements ImageFetcherInterface
var _ ImageFetcherInterface = (*ImageFetcher)(nil)

// FetchAll downloads all URLs with bounded concurrency and joins the results
// back into input order. Draw order determines packer geometry, so callers
// must receive results positionally regardless of completion order.
func (f *ImageFetcher) FetchAll(ctx context.Context, urls []string) [][]byte {
	results := make([][]byte, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, url := range urls {
		if url == "" {
			continue
		}
		g.Go(func() error {
			data, err := f.fetch(gctx, url)
			if err != nil {
				// Absorbed: the item keeps its slot, caption-only.
				log.Printf("⚠️  Warning: failed to fetch image %s: %v", url, err)
				return nil
			}
			results[i] = data
			return nil
		})
	}

	// Workers absorb their own errors; Wait only reflects context cancellation.
	if err := g.Wait(); err != nil {
		log.Printf("⚠️  Image prefetch interrupted: %v", err)
	}
	return results
}

func (f *ImageFetcher) fetch(ctx context.Context, imageURL string) ([]byte, error) {
	fullURL := imageURL
	if strings.HasPrefix(imageURL, "/") {
		fullURL = f.baseURL + imageURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return data, nil
}
