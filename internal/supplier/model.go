package supplier

import "time"

type SubscriptionStatus string

const (
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

func ValidSubscriptionStatus(s SubscriptionStatus) bool {
	switch s {
	case SubscriptionTrial, SubscriptionActive, SubscriptionInactive:
		return true
	}
	return false
}

type CompanyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Website     string `json:"website,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type Supplier struct {
	ID                 int                `json:"id"`
	UserID             int                `json:"user_id"`
	CompanyInfo        CompanyInfo        `json:"company_info"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	SubscriptionTier   string             `json:"subscription_tier"`
	JoinedAt           time.Time          `json:"joined_at"`
}

func (s Supplier) RecordID() int { return s.ID }

func (s Supplier) WithID(id int) Supplier {
	s.ID = id
	return s
}

func (s Supplier) Clone() Supplier { return s }

// CreateSupplierRequest payload of supplier onboarding. New suppliers start
// on the Basic tier with a trial subscription.
// swagger:model CreateSupplierRequest
type CreateSupplierRequest struct {
	UserID      int         `json:"user_id" example:"2"`
	CompanyInfo CompanyInfo `json:"company_info"`
}

// UpdateSupplierRequest payload of partial update. Nil fields keep the
// current value.
// swagger:model UpdateSupplierRequest
type UpdateSupplierRequest struct {
	CompanyInfo      *CompanyInfo `json:"company_info"`
	SubscriptionTier *string      `json:"subscription_tier"`
}
