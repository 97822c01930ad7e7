package admin

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyhub/marketplace/internal/order"
	"github.com/supplyhub/marketplace/internal/product"
	"github.com/supplyhub/marketplace/internal/store"
	"github.com/supplyhub/marketplace/internal/supplier"
	"github.com/supplyhub/marketplace/internal/user"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestService(t *testing.T) *Service {
	t.Helper()

	products := store.NewCollection[product.Product]("product")
	suppliers := store.NewCollection[supplier.Supplier]("supplier")
	users := store.NewCollection[user.User]("user")
	orders := store.NewCollection[order.Order]("order")

	suppliers.Insert(supplier.Supplier{CompanyInfo: supplier.CompanyInfo{Name: "TechSource"}, SubscriptionStatus: supplier.SubscriptionActive})
	suppliers.Insert(supplier.Supplier{CompanyInfo: supplier.CompanyInfo{Name: "PackRight"}, SubscriptionStatus: supplier.SubscriptionTrial})

	products.Insert(product.Product{Name: "Scanner", Price: dec("24.99"), SupplierID: 1, Stock: 10})
	products.Insert(product.Product{Name: "Printer", Price: dec("129.50"), SupplierID: 1, Stock: 5})
	products.Insert(product.Product{Name: "Boxes", Price: dec("3.75"), SupplierID: 2, Stock: 100})

	users.Insert(user.User{Name: "Dana", Role: user.RoleBuyer})
	users.Insert(user.User{Name: "Marcus", Role: user.RoleBuyer})
	users.Insert(user.User{Name: "Priya", Role: user.RoleSupplier})
	users.Insert(user.User{Name: "Alex", Role: user.RoleAdmin})

	orders.Insert(order.Order{BuyerID: 1, SupplierID: 1, Subtotal: dec("100.00"), Commission: dec("3.00"), Total: dec("103.00"), Status: order.StatusPending})
	orders.Insert(order.Order{BuyerID: 2, SupplierID: 2, Subtotal: dec("50.00"), Commission: dec("1.50"), Total: dec("51.50"), Status: order.StatusDelivered})
	orders.Insert(order.Order{BuyerID: 1, SupplierID: 1, Subtotal: dec("20.00"), Commission: dec("0.60"), Total: dec("20.60"), Status: order.StatusDelivered})

	return NewService(
		order.NewMemRepo(orders, store.NoLatency),
		supplier.NewMemRepo(suppliers, store.NoLatency),
		product.NewMemRepo(products, store.NoLatency),
		user.NewMemRepo(users, store.NoLatency),
	)
}

func TestDashboardMetrics(t *testing.T) {
	svc := newTestService(t)

	m, err := svc.DashboardMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, m.TotalOrders)
	assert.Equal(t, 2, m.TotalSuppliers)
	assert.Equal(t, 1, m.ActiveSuppliers)
	assert.Equal(t, 2, m.TotalBuyers)
	assert.True(t, m.TotalRevenue.Equal(dec("175.10")), "total=%s", m.TotalRevenue)
	assert.True(t, m.CommissionRevenue.Equal(dec("5.10")), "commission=%s", m.CommissionRevenue)
	assert.True(t, m.SubscriptionRevenue.Equal(dec("300")), "one active supplier at the flat fee")

	require.Len(t, m.TopSuppliers, 2)
	assert.Equal(t, "TechSource", m.TopSuppliers[0].CompanyName, "ranked by revenue")
	assert.True(t, m.TopSuppliers[0].TotalRevenue.Equal(dec("120.00")))
	assert.Equal(t, 2, m.TopSuppliers[0].TotalOrders)
	assert.Equal(t, 2, m.TopSuppliers[0].TotalProducts)
	assert.Equal(t, 1, m.TopSuppliers[1].TotalProducts)

	assert.Len(t, m.RecentOrders, 3)
}

func TestOrderAnalytics(t *testing.T) {
	svc := newTestService(t)

	a, err := svc.OrderAnalytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, a.TotalOrders)
	assert.Equal(t, 1, a.StatusBreakdown[order.StatusPending])
	assert.Equal(t, 2, a.StatusBreakdown[order.StatusDelivered])
	assert.Equal(t, 0, a.StatusBreakdown[order.StatusShipped])
	assert.True(t, a.TotalRevenue.Equal(dec("175.10")))
	assert.True(t, a.AverageOrderValue.Equal(dec("58.37")), "avg=%s", a.AverageOrderValue)
}

func TestSupplierAnalytics(t *testing.T) {
	svc := newTestService(t)

	a, err := svc.SupplierAnalytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, a.TotalSuppliers)
	assert.Equal(t, 1, a.StatusBreakdown[supplier.SubscriptionActive])
	assert.Equal(t, 1, a.StatusBreakdown[supplier.SubscriptionTrial])
	assert.Equal(t, 0, a.StatusBreakdown[supplier.SubscriptionInactive])
	assert.True(t, a.SubscriptionRevenue.Equal(dec("300")))
}

func TestUpdateSupplierStatus(t *testing.T) {
	svc := newTestService(t)

	s, err := svc.UpdateSupplierStatus(context.Background(), 2, supplier.SubscriptionActive)
	require.NoError(t, err)
	assert.Equal(t, supplier.SubscriptionActive, s.SubscriptionStatus)

	_, err = svc.UpdateSupplierStatus(context.Background(), 42, supplier.SubscriptionActive)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
