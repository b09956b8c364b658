package service

import "stonedepot-catalog/models"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListProductImages(folderID string) ([]models.ProductImage, error)
	DownloadImage(fileID string) ([]byte, error)
}
