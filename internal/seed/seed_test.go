package seed

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyhub/marketplace/internal/cart"
	"github.com/supplyhub/marketplace/internal/order"
	"github.com/supplyhub/marketplace/internal/product"
	"github.com/supplyhub/marketplace/internal/store"
	"github.com/supplyhub/marketplace/internal/supplier"
	"github.com/supplyhub/marketplace/internal/user"
)

func TestLoadFixtures(t *testing.T) {
	s := Stores{
		Products:  store.NewCollection[product.Product]("product"),
		Suppliers: store.NewCollection[supplier.Supplier]("supplier"),
		Users:     store.NewCollection[user.User]("user"),
		Orders:    store.NewCollection[order.Order]("order"),
	}
	require.NoError(t, Load(s))

	assert.Equal(t, 6, s.Products.Len())
	assert.Equal(t, 3, s.Suppliers.Len())
	assert.Equal(t, 6, s.Users.Len())
	assert.Equal(t, 3, s.Orders.Len())
}

// The fixtures cross-reference each other by id, so the file order must
// produce the ids the other files point at.
func TestFixtureReferencesLineUp(t *testing.T) {
	s := Stores{
		Products:  store.NewCollection[product.Product]("product"),
		Suppliers: store.NewCollection[supplier.Supplier]("supplier"),
		Users:     store.NewCollection[user.User]("user"),
		Orders:    store.NewCollection[order.Order]("order"),
	}
	require.NoError(t, Load(s))

	for _, p := range s.Products.All() {
		_, err := s.Suppliers.Get(p.SupplierID)
		assert.NoError(t, err, "product %d references supplier %d", p.ID, p.SupplierID)
	}
	for _, o := range s.Orders.All() {
		_, err := s.Users.Get(o.BuyerID)
		assert.NoError(t, err, "order %d references buyer %d", o.ID, o.BuyerID)
		_, err = s.Suppliers.Get(o.SupplierID)
		assert.NoError(t, err, "order %d references supplier %d", o.ID, o.SupplierID)
		for _, it := range o.Items {
			_, err := s.Products.Get(it.ProductID)
			assert.NoError(t, err, "order %d references product %d", o.ID, it.ProductID)
		}
	}
	for _, sp := range s.Suppliers.All() {
		u, err := s.Users.Get(sp.UserID)
		require.NoError(t, err, "supplier %d references user %d", sp.ID, sp.UserID)
		assert.Equal(t, user.RoleSupplier, u.Role)
	}
}

func TestSeededUsersHaveUsableHashes(t *testing.T) {
	s := Stores{
		Products:  store.NewCollection[product.Product]("product"),
		Suppliers: store.NewCollection[supplier.Supplier]("supplier"),
		Users:     store.NewCollection[user.User]("user"),
		Orders:    store.NewCollection[order.Order]("order"),
	}
	require.NoError(t, Load(s))

	u, err := s.Users.Get(1)
	require.NoError(t, err)
	assert.True(t, user.CheckPassword(u.PasswordHash, "buyer-demo-1"))
}

func TestSeededOrderTotalsAreConsistent(t *testing.T) {
	s := Stores{
		Products:  store.NewCollection[product.Product]("product"),
		Suppliers: store.NewCollection[supplier.Supplier]("supplier"),
		Users:     store.NewCollection[user.User]("user"),
		Orders:    store.NewCollection[order.Order]("order"),
	}
	require.NoError(t, Load(s))

	for _, o := range s.Orders.All() {
		sum := decimal.Zero
		for _, it := range o.Items {
			sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		assert.True(t, o.Subtotal.Equal(sum), "order %d subtotal", o.ID)
		assert.True(t, o.Commission.Equal(o.Subtotal.Mul(cart.CommissionRate).Round(2)), "order %d commission", o.ID)
		assert.True(t, o.Total.Equal(o.Subtotal.Add(o.Commission)), "order %d total", o.ID)
	}
}
