// Package cart owns the buyer's line items and their derived pricing. Lines
// embed a snapshot of the product taken at add time; later price or stock
// changes in the catalog are deliberately not reflected here until the
// product is re-added.
package cart

import (
	"errors"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/supplyhub/marketplace/internal/product"
	"github.com/supplyhub/marketplace/internal/store"
)

// CommissionRate is the fixed platform commission applied on every order.
var CommissionRate = decimal.New(3, -2) // 3%

type Line struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Commission decimal.Decimal `json:"commission"`
	Total      decimal.Decimal `json:"total"`
}

// Engine maintains the cart and writes it through to its storage slot on
// every mutation. Load happens once, at construction.
type Engine struct {
	mu      sync.Mutex
	lines   []Line
	storage Storage
}

// New loads the persisted cart. A corrupt slot is logged, reset and treated
// as an empty cart; it is never surfaced as an error.
func New(storage Storage) (*Engine, error) {
	lines, err := storage.Load()
	if err != nil {
		var corrupt *CorruptError
		if !errors.As(err, &corrupt) {
			return nil, err
		}
		log.Printf("[cart] corrupt persisted cart, resetting: %v", err)
		if err := storage.Reset(); err != nil {
			return nil, err
		}
		lines = nil
	}
	return &Engine{lines: lines, storage: storage}, nil
}

// Lines returns a copy of the current line items, insertion order kept.
func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneLines(e.lines)
}

// AddItem merges into an existing line for the same product id or appends a
// new line holding a snapshot of p. The quantity (existing plus added) must
// stay within the snapshot's stock.
func (e *Engine) AddItem(p product.Product, quantity int) error {
	if quantity < 1 {
		return &store.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, l := range e.lines {
		if l.Product.ID == p.ID {
			if l.Quantity+quantity > l.Product.Stock {
				return &store.ValidationError{Field: "quantity", Reason: "exceeds available stock"}
			}
			e.lines[i].Quantity += quantity
			return e.persist()
		}
	}
	if quantity > p.Stock {
		return &store.ValidationError{Field: "quantity", Reason: "exceeds available stock"}
	}
	e.lines = append(e.lines, Line{Product: p.Clone(), Quantity: quantity})
	return e.persist()
}

// UpdateQuantity overwrites a line's quantity. Zero or negative removes the
// line. Unknown product ids are a no-op, as in the storefront UI.
func (e *Engine) UpdateQuantity(productID, quantity int) error {
	if quantity <= 0 {
		return e.RemoveItem(productID)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, l := range e.lines {
		if l.Product.ID == productID {
			if quantity > l.Product.Stock {
				return &store.ValidationError{Field: "quantity", Reason: "exceeds available stock"}
			}
			e.lines[i].Quantity = quantity
			return e.persist()
		}
	}
	return nil
}

// RemoveItem deletes the line for productID if present.
func (e *Engine) RemoveItem(productID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, l := range e.lines {
		if l.Product.ID == productID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			return e.persist()
		}
	}
	return nil
}

// Clear empties the cart, as after a successful checkout.
func (e *Engine) Clear() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lines = nil
	return e.persist()
}

// Totals recomputes pricing from the current lines; nothing is cached.
func (e *Engine) Totals() Totals {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ComputeTotals(e.lines)
}

// ItemCount is the sum of all line quantities, shown on the cart badge.
func (e *Engine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Count(e.lines)
}

func (e *Engine) persist() error {
	return e.storage.Save(cloneLines(e.lines))
}

// ComputeTotals derives subtotal, platform commission and total from a set
// of lines. The commission is rounded to cents; an empty cart is all zeros.
func ComputeTotals(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	commission := subtotal.Mul(CommissionRate).Round(2)
	return Totals{
		Subtotal:   subtotal,
		Commission: commission,
		Total:      subtotal.Add(commission),
	}
}

// Count sums line quantities.
func Count(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

func cloneLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Line{Product: l.Product.Clone(), Quantity: l.Quantity}
	}
	return out
}
