package router

import (
	"net/http"
	"strings"

	"stonedepot-catalog/app/controller"
)

type Controllers struct {
	Catalog *controller.CatalogController
	Product *controller.ProductController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Catalog export routes
	http.HandleFunc("/api/catalog/pdf", controllers.Catalog.GeneratePDF)
	http.HandleFunc("/api/catalog/email", controllers.Catalog.EmailCatalog)

	// Product listing
	http.HandleFunc("/api/products", controllers.Product.ListProducts)

	// Product images: GET /api/products/{id}/image
	http.HandleFunc("/api/products/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/image") {
			controllers.Product.GetProductImage(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Admin: warm the image cache from the Drive folder
	http.HandleFunc("/admin/products/images/sync", controllers.Product.SyncImages)
}
