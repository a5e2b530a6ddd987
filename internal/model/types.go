// Package model defines raw record types consumed by the service.
package model

// ProductRecord is a raw product entry as it appears in a catalog
// document or an API request body. All four fields are required.
type ProductRecord struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// CategoryRecord is a raw category entry with its product records.
type CategoryRecord struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Products    []ProductRecord `json:"products"`
}
