// Package user holds the account directory: buyers, suppliers and admins.
package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/supplyhub/marketplace/internal/store"
)

var (
	ErrNotFound     = store.ErrNotFound
	ErrAlreadyExist = errors.New("user already exists")
)

type Repository interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	Delete(ctx context.Context, id int) (*User, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type MemRepo struct {
	col *store.Collection[User]
	lat store.Latency
}

func NewMemRepo(col *store.Collection[User], lat store.Latency) *MemRepo {
	return &MemRepo{col: col, lat: lat}
}

func (r *MemRepo) GetAll(ctx context.Context) ([]User, error) {
	r.lat.Wait(300 * time.Millisecond)
	return r.col.All(), nil
}

func (r *MemRepo) GetByID(ctx context.Context, id int) (*User, error) {
	r.lat.Wait(200 * time.Millisecond)
	u, err := r.col.Get(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *MemRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.lat.Wait(250 * time.Millisecond)
	email = strings.ToLower(strings.TrimSpace(email))
	matches := r.col.Where(func(u User) bool { return strings.ToLower(u.Email) == email })
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return &matches[0], nil
}

func (r *MemRepo) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	r.lat.Wait(400 * time.Millisecond)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, &store.ValidationError{Field: "user", Reason: "name, email and password are required"}
	}
	if !ValidRole(req.Role) {
		return nil, &store.ValidationError{Field: "role", Reason: "must be buyer, supplier or admin"}
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if dup := r.col.Where(func(u User) bool { return strings.ToLower(u.Email) == email }); len(dup) > 0 {
		return nil, ErrAlreadyExist
	}
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u := r.col.Insert(User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         req.Role,
		CreatedAt:    time.Now().UTC(),
	})
	return &u, nil
}

func (r *MemRepo) Delete(ctx context.Context, id int) (*User, error) {
	r.lat.Wait(250 * time.Millisecond)
	u, err := r.col.Delete(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Exists reports whether the account is known, for order placement checks.
func (r *MemRepo) Exists(ctx context.Context, id int) (bool, error) {
	r.lat.Wait(200 * time.Millisecond)
	if _, err := r.col.Get(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
