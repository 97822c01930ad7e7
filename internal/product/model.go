package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Money is kept as decimal end to end to avoid float rounding drift.
	Price          decimal.Decimal   `json:"price"`
	Category       string            `json:"category"`
	SupplierID     int               `json:"supplier_id"`
	SupplierName   string            `json:"supplier_name"`
	Stock          int               `json:"stock"`
	Images         []string          `json:"images,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

func (p Product) RecordID() int { return p.ID }

func (p Product) WithID(id int) Product {
	p.ID = id
	return p
}

func (p Product) Clone() Product {
	cp := p
	if p.Images != nil {
		cp.Images = append([]string(nil), p.Images...)
	}
	if p.Specifications != nil {
		cp.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			cp.Specifications[k] = v
		}
	}
	return cp
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: product 42 not found
	Error string `json:"error"`
}

// CreateProductRequest payload of creation. Any id in the payload is ignored.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name           string            `json:"name"          example:"Industrial Shelving Unit"`
	Description    string            `json:"description"   example:"Heavy-duty 5-tier steel shelving"`
	Price          string            `json:"price"         example:"249.90"`
	Category       string            `json:"category"      example:"Warehouse Equipment"`
	SupplierID     int               `json:"supplier_id"   example:"1"`
	SupplierName   string            `json:"supplier_name" example:"Acme Industrial"`
	Stock          int               `json:"stock"         example:"40"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
}

// UpdateProductRequest payload of partial update. Nil fields keep the
// current value.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Name           *string            `json:"name"`
	Description    *string            `json:"description"`
	Price          *string            `json:"price"`
	Category       *string            `json:"category"`
	Stock          *int               `json:"stock"`
	Images         *[]string          `json:"images"`
	Specifications *map[string]string `json:"specifications"`
}
