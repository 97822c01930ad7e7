// Package seed loads the demo fixtures into the entity stores at startup,
// the way the storefront ships with mock JSON data.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/supplyhub/marketplace/internal/order"
	"github.com/supplyhub/marketplace/internal/product"
	"github.com/supplyhub/marketplace/internal/store"
	"github.com/supplyhub/marketplace/internal/supplier"
	"github.com/supplyhub/marketplace/internal/user"
)

//go:embed data/*.json
var fixtures embed.FS

type Stores struct {
	Products  *store.Collection[product.Product]
	Suppliers *store.Collection[supplier.Supplier]
	Users     *store.Collection[user.User]
	Orders    *store.Collection[order.Order]
}

// seedUser carries the fixture's plaintext demo password alongside the
// entity; it is hashed on load and never stored.
type seedUser struct {
	user.User
	Password string `json:"password"`
}

// Load inserts every fixture in file order. The store assigns ids
// sequentially, so the fixtures are ordered to keep the ids they
// cross-reference each other by.
func Load(s Stores) error {
	var products []product.Product
	if err := readFixture("data/products.json", &products); err != nil {
		return err
	}
	for _, p := range products {
		s.Products.Insert(p)
	}

	var suppliers []supplier.Supplier
	if err := readFixture("data/suppliers.json", &suppliers); err != nil {
		return err
	}
	for _, sp := range suppliers {
		s.Suppliers.Insert(sp)
	}

	var users []seedUser
	if err := readFixture("data/users.json", &users); err != nil {
		return err
	}
	for _, u := range users {
		hash, err := user.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.Email, err)
		}
		entity := u.User
		entity.PasswordHash = hash
		s.Users.Insert(entity)
	}

	var orders []order.Order
	if err := readFixture("data/orders.json", &orders); err != nil {
		return err
	}
	for _, o := range orders {
		s.Orders.Insert(o)
	}

	log.Printf("[seed] products=%d suppliers=%d users=%d orders=%d",
		s.Products.Len(), s.Suppliers.Len(), s.Users.Len(), s.Orders.Len())
	return nil
}

func readFixture(name string, out any) error {
	b, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}
