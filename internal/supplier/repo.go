// Package supplier manages the marketplace's supplier directory and
// subscription state.
package supplier

import (
	"context"
	"strings"
	"time"

	"github.com/supplyhub/marketplace/internal/store"
)

var ErrNotFound = store.ErrNotFound

type Repository interface {
	GetAll(ctx context.Context) ([]Supplier, error)
	GetByID(ctx context.Context, id int) (*Supplier, error)
	GetByUserID(ctx context.Context, userID int) (*Supplier, error)
	Create(ctx context.Context, req CreateSupplierRequest) (*Supplier, error)
	Update(ctx context.Context, id int, req UpdateSupplierRequest) (*Supplier, error)
	UpdateSubscriptionStatus(ctx context.Context, id int, status SubscriptionStatus) (*Supplier, error)
	Delete(ctx context.Context, id int) (*Supplier, error)
}

type MemRepo struct {
	col *store.Collection[Supplier]
	lat store.Latency
}

func NewMemRepo(col *store.Collection[Supplier], lat store.Latency) *MemRepo {
	return &MemRepo{col: col, lat: lat}
}

func (r *MemRepo) GetAll(ctx context.Context) ([]Supplier, error) {
	r.lat.Wait(300 * time.Millisecond)
	return r.col.All(), nil
}

func (r *MemRepo) GetByID(ctx context.Context, id int) (*Supplier, error) {
	r.lat.Wait(200 * time.Millisecond)
	s, err := r.col.Get(id)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByUserID resolves the supplier profile behind a user account. The
// NotFoundError carries the user id, since that is what the caller asked by.
func (r *MemRepo) GetByUserID(ctx context.Context, userID int) (*Supplier, error) {
	r.lat.Wait(250 * time.Millisecond)
	matches := r.col.Where(func(s Supplier) bool { return s.UserID == userID })
	if len(matches) == 0 {
		return nil, &store.NotFoundError{Kind: "supplier for user", ID: userID}
	}
	return &matches[0], nil
}

func (r *MemRepo) Create(ctx context.Context, req CreateSupplierRequest) (*Supplier, error) {
	r.lat.Wait(400 * time.Millisecond)
	if strings.TrimSpace(req.CompanyInfo.Name) == "" {
		return nil, &store.ValidationError{Field: "company_info.name", Reason: "must not be empty"}
	}
	s := r.col.Insert(Supplier{
		UserID:             req.UserID,
		CompanyInfo:        req.CompanyInfo,
		SubscriptionStatus: SubscriptionTrial,
		SubscriptionTier:   "Basic",
		JoinedAt:           time.Now().UTC(),
	})
	return &s, nil
}

func (r *MemRepo) Update(ctx context.Context, id int, req UpdateSupplierRequest) (*Supplier, error) {
	r.lat.Wait(350 * time.Millisecond)
	s, err := r.col.Update(id, func(s *Supplier) {
		if req.CompanyInfo != nil {
			s.CompanyInfo = *req.CompanyInfo
		}
		if req.SubscriptionTier != nil {
			s.SubscriptionTier = *req.SubscriptionTier
		}
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MemRepo) UpdateSubscriptionStatus(ctx context.Context, id int, status SubscriptionStatus) (*Supplier, error) {
	r.lat.Wait(300 * time.Millisecond)
	if !ValidSubscriptionStatus(status) {
		return nil, &store.ValidationError{Field: "subscription_status", Reason: "must be trial, active or inactive"}
	}
	s, err := r.col.Update(id, func(s *Supplier) { s.SubscriptionStatus = status })
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MemRepo) Delete(ctx context.Context, id int) (*Supplier, error) {
	r.lat.Wait(250 * time.Millisecond)
	s, err := r.col.Delete(id)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
