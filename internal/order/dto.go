package order

// PlaceOrderRequest payload of checkout. The priced items come from the
// server-held cart, not from the payload.
// swagger:model PlaceOrderRequest
type PlaceOrderRequest struct {
	BuyerID   int          `json:"buyer_id"   example:"4"`
	BuyerName string       `json:"buyer_name" example:"Dana Velasco"`
	Shipping  ShippingInfo `json:"shipping"`
	Payment   PaymentCard  `json:"payment"`
}

// PaymentCard is the raw card form. Only the last four digits and the
// holder name survive into the stored order.
// swagger:model PaymentCard
type PaymentCard struct {
	CardNumber     string `json:"card_number"     example:"4242424242424242"`
	ExpiryDate     string `json:"expiry_date"     example:"12/27"`
	CVV            string `json:"cvv"             example:"123"`
	CardholderName string `json:"cardholder_name" example:"Dana Velasco"`
}

// Redact keeps what the order history shows and drops the rest.
func (p PaymentCard) Redact() PaymentInfo {
	last4 := p.CardNumber
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	return PaymentInfo{Last4: last4, CardholderName: p.CardholderName}
}

// UpdateStatusRequest payload of an order status change.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status Status `json:"status" example:"shipped"`
}
