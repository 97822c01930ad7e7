package user

import "time"

// Role is an explicit capability passed into calls that behave differently
// per dashboard. It is never inferred from a route and never verified
// against credentials; that stays the embedding application's problem.
type Role string

const (
	RoleBuyer    Role = "buyer"
	RoleSupplier Role = "supplier"
	RoleAdmin    Role = "admin"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleBuyer, RoleSupplier, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u User) RecordID() int { return u.ID }

func (u User) WithID(id int) User {
	u.ID = id
	return u
}

func (u User) Clone() User { return u }

// CreateUserRequest payload of account creation.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	Name     string `json:"name"     example:"Dana Velasco"`
	Email    string `json:"email"    example:"dana@example.com"`
	Password string `json:"password" example:"s3cret!"`
	Role     Role   `json:"role"     example:"buyer"`
}
