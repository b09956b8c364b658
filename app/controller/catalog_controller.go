package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"stonedepot-catalog/models"
	"stonedepot-catalog/service"
)

// generationTimeout caps a single catalog export request end to end.
const generationTimeout = 60 * time.Second

// CatalogController handles HTTP requests for catalog PDF generation
type CatalogController struct {
	catalogService *service.CatalogService
	mailService    service.MailServiceInterface
}

// NewCatalogController creates a new CatalogController.
// mailService may be nil when no SMTP configuration is present; the email
// endpoint then rejects requests.
func NewCatalogController(catalogService *service.CatalogService, mailService service.MailServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		mailService:    mailService,
	}
}

// generate decodes the body, runs the export under the request-scoped
// timeout, and maps the error taxonomy onto HTTP statuses. A nil document
// means the error response was already written.
func (c *CatalogController) generate(w http.ResponseWriter, r *http.Request) (*models.GeneratedDocument, models.CatalogMetadata) {
	var req models.GenerateCatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ GenerateCatalog: invalid request body: %v", err)
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return nil, models.CatalogMetadata{}
	}

	ctx, cancel := context.WithTimeout(r.Context(), generationTimeout)
	defer cancel()

	doc, err := c.catalogService.GeneratePDF(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCatalog):
			http.Error(w, "catalog has no items", http.StatusBadRequest)
		case errors.Is(err, context.DeadlineExceeded):
			log.Printf("❌ GenerateCatalog: timed out after %s", generationTimeout)
			http.Error(w, "catalog generation timed out", http.StatusGatewayTimeout)
		default:
			log.Printf("❌ GenerateCatalog: %v", err)
			http.Error(w, fmt.Sprintf("Failed to generate catalog: %v", err), http.StatusInternalServerError)
		}
		return nil, models.CatalogMetadata{}
	}
	return doc, req.Metadata
}

// GeneratePDF handles POST /api/catalog/pdf
// Returns the generated document for direct download.
func (c *CatalogController) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	doc, _ := c.generate(w, r)
	if doc == nil {
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		log.Printf("❌ GeneratePDF: error writing response: %v", err)
	}
}

// EmailCatalog handles POST /api/catalog/email
// Generates the same document and relays it to the admin address.
func (c *CatalogController) EmailCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c.mailService == nil {
		http.Error(w, "email delivery is not configured", http.StatusServiceUnavailable)
		return
	}

	doc, meta := c.generate(w, r)
	if doc == nil {
		return
	}

	if err := c.mailService.SendCatalog(doc, meta); err != nil {
		log.Printf("❌ EmailCatalog: %v", err)
		http.Error(w, fmt.Sprintf("Failed to send catalog: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   "success",
		"message":  "Catalog sent",
		"filename": doc.Filename,
	})
}
