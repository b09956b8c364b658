package service

import "stonedepot-catalog/models"

// MailServiceInterface defines the contract for relaying generated catalogs
type MailServiceInterface interface {
	// SendCatalog emails the finished document to the configured admin
	// address, with the export metadata in the message body.
	SendCatalog(doc *models.GeneratedDocument, meta models.CatalogMetadata) error
}
