package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"stonedepot-catalog/db"
	"stonedepot-catalog/models"
)

// ProductRepository handles database operations for the product catalog
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// splitSizes splits the stored '|'-separated sizes column into the ordered
// declared-size list. Order is preserved: the first entry is the primary size.
// Size descriptors themselves may contain commas, hence the pipe separator.
func splitSizes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	sizes := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sizes = append(sizes, trimmed)
		}
	}
	return sizes
}

const productColumns = `
	p.id,
	p.name,
	COALESCE(p.category, '') as category,
	COALESCE(p.subcategory, '') as subcategory,
	COALESCE(p.sizes, '') as sizes,
	COALESCE(p.image_url, '') as image_url,
	COALESCE(p.drive_file_id, '') as drive_file_id,
	p.is_active,
	p.created_at
`

func scanProduct(scan func(dest ...interface{}) error) (*models.Product, error) {
	var product models.Product
	var sizes string
	err := scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Subcategory,
		&sizes,
		&product.ImageURL,
		&product.DriveFileID,
		&product.IsActive,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	product.Sizes = splitSizes(sizes)
	return &product, nil
}

// FilterProducts retrieves active products matching the provided filters.
// Size filtering matches any declared size, not only the primary one.
func (r *ProductRepository) FilterProducts(ctx context.Context, filters ProductFilterParams) ([]models.Product, error) {
	log.Printf("🔍 Filtering products: category=%v, subcategory=%v, size=%v",
		filters.Category, filters.Subcategory, filters.Size)

	baseQuery := `
		SELECT ` + productColumns + `
		FROM products p
		WHERE p.is_active = true
	`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Category != nil && *filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("p.category = $%d", argIndex))
		args = append(args, *filters.Category)
		argIndex++
	}

	if filters.Subcategory != nil && *filters.Subcategory != "" {
		conditions = append(conditions, fmt.Sprintf("p.subcategory = $%d", argIndex))
		args = append(args, *filters.Subcategory)
		argIndex++
	}

	if filters.Size != nil && *filters.Size != "" {
		// sizes is stored as a '|'-separated list
		conditions = append(conditions, fmt.Sprintf("('|' || p.sizes || '|') LIKE $%d", argIndex))
		args = append(args, "%|"+*filters.Size+"|%")
		argIndex++
	}

	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}

	baseQuery += " ORDER BY p.subcategory ASC, p.name ASC"

	rows, err := db.DB.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		log.Printf("❌ Error filtering products: %v", err)
		return nil, fmt.Errorf("failed to filter products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows.Scan)
		if err != nil {
			log.Printf("❌ Error scanning product: %v", err)
			continue
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Error iterating products: %v", err)
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	log.Printf("✓ Successfully filtered %d products", len(products))
	return products, nil
}

// GetByID retrieves a single product by its identifier
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		WHERE p.id = $1
	`

	product, err := scanProduct(db.DB.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product %d not found", id)
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return product, nil
}

// GetByDriveFileID retrieves the product associated with a Drive image file,
// or nil when no product references the file.
func (r *ProductRepository) GetByDriveFileID(ctx context.Context, driveFileID string) (*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		WHERE p.drive_file_id = $1
	`

	product, err := scanProduct(db.DB.QueryRowContext(ctx, query, driveFileID).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up product by drive file id: %w", err)
	}
	return product, nil
}
