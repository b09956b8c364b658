package models

// Product represents a product record in the database
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Sizes       []string `json:"sizes"`
	ImageURL    string   `json:"imageUrl"`
	DriveFileID string   `json:"driveFileId"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt"`
}

// ProductImage represents an image file discovered in the Drive products folder
type ProductImage struct {
	DriveFileID string `json:"driveFileId"`
	FileName    string `json:"fileName"`
	ImageURL    string `json:"imageUrl"`
}
