// Package product provides the catalog entity, its repository and the
// filter/sort query engine backing catalog views.
package product

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/supplyhub/marketplace/internal/store"
)

var ErrNotFound = store.ErrNotFound

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	GetBySupplier(ctx context.Context, supplierID int) ([]Product, error)
	GetByCategory(ctx context.Context, category string) ([]Product, error)
	Search(ctx context.Context, query string) ([]Product, error)
	Create(ctx context.Context, req CreateProductRequest) (*Product, error)
	Update(ctx context.Context, id int, req UpdateProductRequest) (*Product, error)
	Delete(ctx context.Context, id int) (*Product, error)
}

// MemRepo serves the catalog from an in-memory collection, pausing on each
// call the way the remote catalog API it emulates would.
type MemRepo struct {
	col *store.Collection[Product]
	lat store.Latency
}

func NewMemRepo(col *store.Collection[Product], lat store.Latency) *MemRepo {
	return &MemRepo{col: col, lat: lat}
}

func (r *MemRepo) GetAll(ctx context.Context) ([]Product, error) {
	r.lat.Wait(300 * time.Millisecond)
	return r.col.All(), nil
}

func (r *MemRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	r.lat.Wait(200 * time.Millisecond)
	p, err := r.col.Get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MemRepo) GetBySupplier(ctx context.Context, supplierID int) ([]Product, error) {
	r.lat.Wait(250 * time.Millisecond)
	return r.col.Where(func(p Product) bool { return p.SupplierID == supplierID }), nil
}

func (r *MemRepo) GetByCategory(ctx context.Context, category string) ([]Product, error) {
	r.lat.Wait(250 * time.Millisecond)
	return r.col.Where(func(p Product) bool { return p.Category == category }), nil
}

// Search matches name, description, category and supplier name,
// case-insensitively.
func (r *MemRepo) Search(ctx context.Context, query string) ([]Product, error) {
	r.lat.Wait(300 * time.Millisecond)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.col.All(), nil
	}
	return r.col.Where(func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.SupplierName), q)
	}), nil
}

func (r *MemRepo) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	r.lat.Wait(400 * time.Millisecond)
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, &store.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if req.Stock < 0 {
		return nil, &store.ValidationError{Field: "stock", Reason: "must be non-negative"}
	}
	p := r.col.Insert(Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          price,
		Category:       req.Category,
		SupplierID:     req.SupplierID,
		SupplierName:   req.SupplierName,
		Stock:          req.Stock,
		Images:         req.Images,
		Specifications: req.Specifications,
		CreatedAt:      time.Now().UTC(),
	})
	return &p, nil
}

func (r *MemRepo) Update(ctx context.Context, id int, req UpdateProductRequest) (*Product, error) {
	r.lat.Wait(350 * time.Millisecond)

	var price *decimal.Decimal
	if req.Price != nil {
		d, err := parsePrice(*req.Price)
		if err != nil {
			return nil, err
		}
		price = &d
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, &store.ValidationError{Field: "stock", Reason: "must be non-negative"}
	}

	p, err := r.col.Update(id, func(p *Product) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if price != nil {
			p.Price = *price
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		if req.Images != nil {
			p.Images = append([]string(nil), (*req.Images)...)
		}
		if req.Specifications != nil {
			specs := make(map[string]string, len(*req.Specifications))
			for k, v := range *req.Specifications {
				specs[k] = v
			}
			p.Specifications = specs
		}
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MemRepo) Delete(ctx context.Context, id int) (*Product, error) {
	r.lat.Wait(250 * time.Millisecond)
	p, err := r.col.Delete(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, &store.ValidationError{Field: "price", Reason: "must be a decimal number"}
	}
	if !d.IsPositive() {
		return decimal.Zero, &store.ValidationError{Field: "price", Reason: "must be greater than zero"}
	}
	return d, nil
}
