package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"stonedepot-catalog/models"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveService handles Google Drive API operations for the product image
// folder.
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService.
// credentialsPath is the path to the Service Account JSON file.
func NewDriveService(credentialsPath string) (*DriveService, error) {
	driveService, err := drive.NewService(context.Background(), option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &DriveService{client: driveService}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// ListProductImages lists all image files in a Google Drive folder.
func (ds *DriveService) ListProductImages(folderID string) ([]models.ProductImage, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken
		if pageToken == "" {
			break
		}
	}

	imageMimeTypes := map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/jpg":  true,
	}

	var images []models.ProductImage
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}
		images = append(images, models.ProductImage{
			DriveFileID: file.Id,
			FileName:    file.Name,
			ImageURL:    fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id),
		})
	}
	return images, nil
}

// DownloadImage downloads a file's content by Drive file ID.
func (ds *DriveService) DownloadImage(fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	return data, nil
}
