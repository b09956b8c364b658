package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"stonedepot-catalog/repository"
	"stonedepot-catalog/service"
)

// validImageSizes is a map of valid image size values
var validImageSizes = map[string]bool{
	"thumb":  true,
	"medium": true,
}

// ProductController handles HTTP requests for the product catalog
type ProductController struct {
	repository   repository.ProductRepositoryInterface
	syncService  service.SyncServiceInterface
	driveService service.DriveServiceInterface
}

// NewProductController creates a new ProductController
func NewProductController(
	repo repository.ProductRepositoryInterface,
	syncService service.SyncServiceInterface,
	driveService service.DriveServiceInterface,
) *ProductController {
	return &ProductController{
		repository:   repo,
		syncService:  syncService,
		driveService: driveService,
	}
}

// optionalParam returns a pointer to the query parameter value, or nil when
// it is absent or blank.
func optionalParam(r *http.Request, name string) *string {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return nil
	}
	return &value
}

// ListProducts handles GET /api/products?category=...&subcategory=...&size=...
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filters := repository.ProductFilterParams{
		Category:    optionalParam(r, "category"),
		Subcategory: optionalParam(r, "subcategory"),
		Size:        optionalParam(r, "size"),
	}

	products, err := c.repository.FilterProducts(r.Context(), filters)
	if err != nil {
		log.Printf("❌ ListProducts: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list products: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(products); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetProductImage handles GET /api/products/{id}/image?size=thumb|medium
// Serves the optimized cached variant, downloading from Drive on a cache
// miss.
func (c *ProductController) GetProductImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /api/products/{id}/image
	path := strings.TrimPrefix(r.URL.Path, "/api/products/")
	idPart := strings.TrimSuffix(path, "/image")
	productID, err := strconv.Atoi(idPart)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	size := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("size")))
	if size == "" {
		size = "medium"
	}
	if !validImageSizes[size] {
		http.Error(w, "Invalid size. Valid sizes: thumb, medium", http.StatusBadRequest)
		return
	}

	cachePath := service.GetCachePath(productID, size)
	if !service.CacheExists(cachePath) {
		if err := c.warmCache(r, productID, size, cachePath); err != nil {
			log.Printf("❌ GetProductImage: %v", err)
			http.Error(w, fmt.Sprintf("Failed to load image: %v", err), http.StatusNotFound)
			return
		}
	}

	data, err := service.ReadFromCache(cachePath)
	if err != nil {
		log.Printf("❌ GetProductImage: %v", err)
		http.Error(w, "Failed to read image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("❌ GetProductImage: error writing response: %v", err)
	}
}

// warmCache downloads and optimizes the product's Drive image into the
// requested cache variant.
func (c *ProductController) warmCache(r *http.Request, productID int, size, cachePath string) error {
	product, err := c.repository.GetByID(r.Context(), productID)
	if err != nil {
		return err
	}
	if product.DriveFileID == "" {
		return fmt.Errorf("product %d has no image file", productID)
	}

	data, err := c.driveService.DownloadImage(product.DriveFileID)
	if err != nil {
		return err
	}

	optimized, err := service.OptimizeImage(data, size)
	if err != nil {
		return err
	}
	return service.SaveToCache(cachePath, optimized)
}

// SyncImages handles POST /admin/products/images/sync?folderId=...
// Falls back to DRIVE_PRODUCTS_FOLDER_ID when no folderId is supplied.
func (c *ProductController) SyncImages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	folderID := strings.TrimSpace(r.URL.Query().Get("folderId"))
	if folderID == "" {
		folderID = os.Getenv("DRIVE_PRODUCTS_FOLDER_ID")
	}
	if folderID == "" {
		http.Error(w, "folderId parameter or DRIVE_PRODUCTS_FOLDER_ID must be set", http.StatusBadRequest)
		return
	}

	log.Printf("📥 Image sync request received for folder: %s", folderID)

	stats, err := c.syncService.SyncProductImages(r.Context(), folderID)
	if err != nil {
		log.Printf("❌ Image sync failed: %v", err)
		http.Error(w, fmt.Sprintf("Failed to sync images: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
