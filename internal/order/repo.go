// Package order manages placed orders and the checkout that creates them.
package order

import (
	"context"
	"time"

	"github.com/supplyhub/marketplace/internal/store"
)

var ErrNotFound = store.ErrNotFound

type Repository interface {
	GetAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id int) (*Order, error)
	GetByBuyer(ctx context.Context, buyerID int) ([]Order, error)
	GetBySupplier(ctx context.Context, supplierID int) ([]Order, error)
	Create(ctx context.Context, o Order) (*Order, error)
	UpdateStatus(ctx context.Context, id int, status Status) (*Order, error)
	Delete(ctx context.Context, id int) (*Order, error)
}

type MemRepo struct {
	col *store.Collection[Order]
	lat store.Latency
}

func NewMemRepo(col *store.Collection[Order], lat store.Latency) *MemRepo {
	return &MemRepo{col: col, lat: lat}
}

func (r *MemRepo) GetAll(ctx context.Context) ([]Order, error) {
	r.lat.Wait(300 * time.Millisecond)
	return r.col.All(), nil
}

func (r *MemRepo) GetByID(ctx context.Context, id int) (*Order, error) {
	r.lat.Wait(200 * time.Millisecond)
	o, err := r.col.Get(id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *MemRepo) GetByBuyer(ctx context.Context, buyerID int) ([]Order, error) {
	r.lat.Wait(250 * time.Millisecond)
	return r.col.Where(func(o Order) bool { return o.BuyerID == buyerID }), nil
}

func (r *MemRepo) GetBySupplier(ctx context.Context, supplierID int) ([]Order, error) {
	r.lat.Wait(250 * time.Millisecond)
	return r.col.Where(func(o Order) bool { return o.SupplierID == supplierID }), nil
}

func (r *MemRepo) Create(ctx context.Context, o Order) (*Order, error) {
	r.lat.Wait(500 * time.Millisecond)
	created := r.col.Insert(o)
	return &created, nil
}

func (r *MemRepo) UpdateStatus(ctx context.Context, id int, status Status) (*Order, error) {
	r.lat.Wait(300 * time.Millisecond)
	if !ValidStatus(status) {
		return nil, &store.ValidationError{Field: "status", Reason: "must be pending, processing, shipped or delivered"}
	}
	o, err := r.col.Update(id, func(o *Order) { o.Status = status })
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *MemRepo) Delete(ctx context.Context, id int) (*Order, error) {
	r.lat.Wait(250 * time.Millisecond)
	o, err := r.col.Delete(id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
