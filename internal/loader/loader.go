// Package loader reads a catalog JSON document and materializes the
// domain category/product graph.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fairyhunter13/retail-catalog-service/internal/catalog"
	"github.com/fairyhunter13/retail-catalog-service/internal/model"
)

var (
	// ErrNotFound reports a missing catalog document.
	ErrNotFound = errors.New("catalog file not found")
	// ErrFormat reports a document that is not well-formed JSON.
	ErrFormat = errors.New("malformed catalog document")
)

// MissingFieldError reports an absent required field in the document.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// Pointer fields distinguish absent keys from zero values, so the error
// can name the missing field.
type rawProduct struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}

type rawCategory struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Products    []rawProduct `json:"products"`
}

// Load reads the document at path and constructs its categories and
// products in document order, registering them against reg. Errors are
// one of ErrNotFound, ErrFormat, *MissingFieldError, or a product
// validation failure.
func Load(path string, reg *catalog.Registry) ([]*catalog.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var raw []rawCategory
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	categories := make([]*catalog.Category, 0, len(raw))
	for _, rc := range raw {
		if rc.Name == nil {
			return nil, &MissingFieldError{Field: "name"}
		}
		if rc.Description == nil {
			return nil, &MissingFieldError{Field: "description"}
		}
		if rc.Products == nil {
			return nil, &MissingFieldError{Field: "products"}
		}
		products := make([]*catalog.Product, 0, len(rc.Products))
		for _, rp := range rc.Products {
			rec, err := productRecord(rp)
			if err != nil {
				return nil, err
			}
			p, err := catalog.NewProduct(rec.Name, rec.Description, rec.Price, rec.Quantity)
			if err != nil {
				return nil, fmt.Errorf("product %q: %w", rec.Name, err)
			}
			products = append(products, p)
		}
		categories = append(categories, catalog.NewCategory(*rc.Name, *rc.Description, products, reg))
	}
	return categories, nil
}

func productRecord(rp rawProduct) (model.ProductRecord, error) {
	if rp.Name == nil {
		return model.ProductRecord{}, &MissingFieldError{Field: "name"}
	}
	if rp.Description == nil {
		return model.ProductRecord{}, &MissingFieldError{Field: "description"}
	}
	if rp.Price == nil {
		return model.ProductRecord{}, &MissingFieldError{Field: "price"}
	}
	if rp.Quantity == nil {
		return model.ProductRecord{}, &MissingFieldError{Field: "quantity"}
	}
	return model.ProductRecord{
		Name:        *rp.Name,
		Description: *rp.Description,
		Price:       *rp.Price,
		Quantity:    *rp.Quantity,
	}, nil
}
