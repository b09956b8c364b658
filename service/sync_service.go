package service

import (
	"context"
	"fmt"
	"log"

	"stonedepot-catalog/repository"
)

// SyncService warms the local image cache from the Google Drive product
// image folder. Drive files are matched to products by drive_file_id; the
// optimized medium variant each product's catalog slot embeds is written to
// the cache so export requests never hit Drive.
type SyncService struct {
	driveService DriveServiceInterface
	repository   repository.ProductRepositoryInterface
}

// NewSyncService creates a new SyncService
func NewSyncService(driveService DriveServiceInterface, repo repository.ProductRepositoryInterface) *SyncService {
	return &SyncService{
		driveService: driveService,
		repository:   repo,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncProductImages downloads, optimizes and caches every product image in
// the folder that is not cached yet. Per-file failures are collected, never
// fatal.
func (s *SyncService) SyncProductImages(ctx context.Context, folderID string) (*SyncStats, error) {
	log.Printf("🔄 Starting product image sync for folder: %s", folderID)

	images, err := s.driveService.ListProductImages(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list product images from Drive: %w", err)
	}

	stats := &SyncStats{Total: len(images)}
	log.Printf("📦 Found %d image files in Drive", stats.Total)

	for _, img := range images {
		product, err := s.repository.GetByDriveFileID(ctx, img.DriveFileID)
		if err != nil {
			msg := fmt.Sprintf("lookup failed for %s (%s): %v", img.FileName, img.DriveFileID, err)
			log.Printf("❌ %s", msg)
			stats.Errors = append(stats.Errors, msg)
			continue
		}
		if product == nil {
			log.Printf("⏭️  Skipping %s (no product references this file)", img.FileName)
			stats.Skipped++
			continue
		}

		cachePath := GetCachePath(product.ID, "medium")
		if CacheExists(cachePath) {
			log.Printf("⏭️  Skipping %s (already cached)", img.FileName)
			stats.Skipped++
			continue
		}

		data, err := s.driveService.DownloadImage(img.DriveFileID)
		if err != nil {
			msg := fmt.Sprintf("download failed for %s: %v", img.FileName, err)
			log.Printf("❌ %s", msg)
			stats.Errors = append(stats.Errors, msg)
			continue
		}

		optimized, err := OptimizeImage(data, "medium")
		if err != nil {
			msg := fmt.Sprintf("optimization failed for %s: %v", img.FileName, err)
			log.Printf("❌ %s", msg)
			stats.Errors = append(stats.Errors, msg)
			continue
		}

		if err := SaveToCache(cachePath, optimized); err != nil {
			msg := fmt.Sprintf("cache write failed for %s: %v", img.FileName, err)
			log.Printf("❌ %s", msg)
			stats.Errors = append(stats.Errors, msg)
			continue
		}

		stats.Cached++
	}

	log.Printf("🎉 Image sync completed: %d cached, %d skipped, %d failed out of %d",
		stats.Cached, stats.Skipped, len(stats.Errors), stats.Total)
	return stats, nil
}
