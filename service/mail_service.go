package service

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"stonedepot-catalog/models"

	"gopkg.in/gomail.v2"
)

// MailService relays generated catalog PDFs to the administrative address.
// Transport settings come from deployment configuration, not from requests.
type MailService struct {
	host       string
	port       int
	username   string
	password   string
	adminEmail string
}

// NewMailServiceFromEnv builds a MailService from SMTP_HOST, SMTP_PORT,
// SMTP_USER, SMTP_PASSWORD and CATALOG_ADMIN_EMAIL.
func NewMailServiceFromEnv() (*MailService, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil, fmt.Errorf("SMTP_HOST environment variable is not set")
	}

	port := 587
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		parsed, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", portStr, err)
		}
		port = parsed
	}

	adminEmail := os.Getenv("CATALOG_ADMIN_EMAIL")
	if adminEmail == "" {
		return nil, fmt.Errorf("CATALOG_ADMIN_EMAIL environment variable is not set")
	}

	return &MailService{
		host:       host,
		port:       port,
		username:   os.Getenv("SMTP_USER"),
		password:   os.Getenv("SMTP_PASSWORD"),
		adminEmail: adminEmail,
	}, nil
}

// Ensure MailService implements MailServiceInterface
var _ MailServiceInterface = (*MailService)(nil)

// SendCatalog emails the document as an attachment to the admin address.
func (m *MailService) SendCatalog(doc *models.GeneratedDocument, meta models.CatalogMetadata) error {
	subject := "Catalog enquiry"
	if title := strings.TrimSpace(meta.Title); title != "" {
		subject = "Catalog enquiry: " + title
	}

	var body strings.Builder
	body.WriteString("A catalog export was submitted.\n\n")
	if meta.Name != "" {
		fmt.Fprintf(&body, "Client: %s\n", meta.Name)
	}
	if meta.Title != "" {
		fmt.Fprintf(&body, "Title: %s\n", meta.Title)
	}
	if meta.Description != "" {
		fmt.Fprintf(&body, "Description: %s\n", meta.Description)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.username)
	msg.SetHeader("To", m.adminEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body.String())
	msg.Attach(doc.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(doc.Data)
		return err
	}))

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send catalog email: %w", err)
	}

	log.Printf("📧 Catalog %q sent to %s", doc.Filename, m.adminEmail)
	return nil
}
