package order

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/supplyhub/marketplace/internal/cart"
	"github.com/supplyhub/marketplace/internal/store"
)

var ErrEmptyCart = errors.New("cart is empty")

// BuyerDirectory is the slice of the user directory checkout needs.
type BuyerDirectory interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// Service turns a cart into a placed order.
type Service struct {
	repo   Repository
	buyers BuyerDirectory
}

func NewService(repo Repository, buyers BuyerDirectory) *Service {
	return &Service{repo: repo, buyers: buyers}
}

// CheckoutRequest carries everything the checkout form collects. Buyer
// identity is an explicit parameter; nothing is inferred from the caller's
// route or session.
type CheckoutRequest struct {
	BuyerID   int
	BuyerName string
	Lines     []cart.Line
	Shipping  ShippingInfo
	Payment   PaymentInfo
}

// PlaceOrder prices the cart lines server-side and creates a pending order.
// Prices are the cart's add-time snapshots; current catalog price and stock
// are not re-checked, matching the storefront's behavior. The supplier is
// taken from the first line.
func (s *Service) PlaceOrder(ctx context.Context, req CheckoutRequest) (*Order, error) {
	if len(req.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	ok, err := s.buyers.Exists(ctx, req.BuyerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &store.NotFoundError{Kind: "buyer", ID: req.BuyerID}
	}

	items := make([]Item, len(req.Lines))
	for i, l := range req.Lines {
		if l.Quantity < 1 {
			return nil, &store.ValidationError{Field: "quantity", Reason: "must be at least 1"}
		}
		items[i] = Item{
			ProductID: l.Product.ID,
			Quantity:  l.Quantity,
			Price:     l.Product.Price,
		}
	}
	totals := cart.ComputeTotals(req.Lines)

	o := Order{
		BuyerID:    req.BuyerID,
		BuyerName:  req.BuyerName,
		SupplierID: req.Lines[0].Product.SupplierID,
		Items:      items,
		Subtotal:   totals.Subtotal,
		Commission: totals.Commission,
		Total:      totals.Total,
		Status:     StatusPending,
		Shipping:   req.Shipping,
		Payment:    req.Payment,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := s.repo.Create(ctx, o)
	if err != nil {
		return nil, err
	}
	log.Printf("[order] placed id=%d buyer=%d supplier=%d total=%s",
		created.ID, created.BuyerID, created.SupplierID, created.Total.StringFixed(2))
	return created, nil
}
