package repository

import (
	"context"

	"stonedepot-catalog/models"
)

// ProductFilterParams are the optional filters for product listing.
// Nil or empty values are ignored.
type ProductFilterParams struct {
	Category    *string
	Subcategory *string
	Size        *string
}

// ProductRepositoryInterface defines the contract for product catalog reads
type ProductRepositoryInterface interface {
	FilterProducts(ctx context.Context, filters ProductFilterParams) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	GetByDriveFileID(ctx context.Context, driveFileID string) (*models.Product, error)
}
