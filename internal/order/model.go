package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// Item is one order line. Price is the snapshot taken from the cart at
// checkout, not the catalog's current price.
type Item struct {
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type ShippingInfo struct {
	CompanyName string `json:"company_name,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	ZipCode     string `json:"zip_code,omitempty"`
	Country     string `json:"country,omitempty"`
}

// PaymentInfo retains only what the order history needs; the card number
// itself is discarded at checkout.
type PaymentInfo struct {
	Last4          string `json:"last4,omitempty"`
	CardholderName string `json:"cardholder_name,omitempty"`
}

type Order struct {
	ID         int             `json:"id"`
	BuyerID    int             `json:"buyer_id"`
	BuyerName  string          `json:"buyer_name,omitempty"`
	SupplierID int             `json:"supplier_id"`
	Items      []Item          `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Commission decimal.Decimal `json:"commission"`
	Total      decimal.Decimal `json:"total"`
	Status     Status          `json:"status"`
	Shipping   ShippingInfo    `json:"shipping,omitempty"`
	Payment    PaymentInfo     `json:"payment,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (o Order) RecordID() int { return o.ID }

func (o Order) WithID(id int) Order {
	o.ID = id
	return o
}

func (o Order) Clone() Order {
	cp := o
	if o.Items != nil {
		cp.Items = append([]Item(nil), o.Items...)
	}
	return cp
}
