// Package admin aggregates the numbers behind the platform dashboard:
// revenue split by stream, order and supplier breakdowns, top suppliers.
package admin

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/supplyhub/marketplace/internal/order"
	"github.com/supplyhub/marketplace/internal/product"
	"github.com/supplyhub/marketplace/internal/supplier"
	"github.com/supplyhub/marketplace/internal/user"
)

// SubscriptionPrice is the flat monthly fee per active supplier.
var SubscriptionPrice = decimal.NewFromInt(300)

// advertisingRevenue has no backing data source yet.
// TODO: replace with the ad-campaign ledger once one exists.
var advertisingRevenue = decimal.NewFromInt(2500)

type Service struct {
	orders    order.Repository
	suppliers supplier.Repository
	products  product.Repository
	users     user.Repository
}

func NewService(orders order.Repository, suppliers supplier.Repository, products product.Repository, users user.Repository) *Service {
	return &Service{orders: orders, suppliers: suppliers, products: products, users: users}
}

type TopSupplier struct {
	ID                 int                         `json:"id"`
	CompanyName        string                      `json:"company_name"`
	TotalOrders        int                         `json:"total_orders"`
	TotalProducts      int                         `json:"total_products"`
	TotalRevenue       decimal.Decimal             `json:"total_revenue"`
	SubscriptionStatus supplier.SubscriptionStatus `json:"subscription_status"`
}

type DashboardMetrics struct {
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	SubscriptionRevenue decimal.Decimal `json:"subscription_revenue"`
	CommissionRevenue   decimal.Decimal `json:"commission_revenue"`
	AdvertisingRevenue  decimal.Decimal `json:"advertising_revenue"`
	TotalOrders         int             `json:"total_orders"`
	TotalSuppliers      int             `json:"total_suppliers"`
	ActiveSuppliers     int             `json:"active_suppliers"`
	TotalBuyers         int             `json:"total_buyers"`
	RecentOrders        []order.Order   `json:"recent_orders"`
	TopSuppliers        []TopSupplier   `json:"top_suppliers"`
}

// DashboardMetrics computes the admin landing page figures. Revenue numbers
// come straight from the order book; subscription revenue is the flat fee
// times the active supplier count.
func (s *Service) DashboardMetrics(ctx context.Context) (*DashboardMetrics, error) {
	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.suppliers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	m := &DashboardMetrics{
		AdvertisingRevenue: advertisingRevenue,
		TotalOrders:        len(orders),
		TotalSuppliers:     len(suppliers),
	}
	m.TotalRevenue = decimal.Zero
	m.CommissionRevenue = decimal.Zero
	for _, o := range orders {
		m.TotalRevenue = m.TotalRevenue.Add(o.Total)
		m.CommissionRevenue = m.CommissionRevenue.Add(o.Commission)
	}
	for _, sp := range suppliers {
		if sp.SubscriptionStatus == supplier.SubscriptionActive {
			m.ActiveSuppliers++
		}
	}
	m.SubscriptionRevenue = SubscriptionPrice.Mul(decimal.NewFromInt(int64(m.ActiveSuppliers)))
	for _, u := range users {
		if u.Role == user.RoleBuyer {
			m.TotalBuyers++
		}
	}

	m.RecentOrders = orders
	if len(m.RecentOrders) > 5 {
		m.RecentOrders = m.RecentOrders[:5]
	}

	top := make([]TopSupplier, 0, len(suppliers))
	for _, sp := range suppliers {
		entry := TopSupplier{
			ID:                 sp.ID,
			CompanyName:        sp.CompanyInfo.Name,
			TotalRevenue:       decimal.Zero,
			SubscriptionStatus: sp.SubscriptionStatus,
		}
		for _, o := range orders {
			if o.SupplierID == sp.ID {
				entry.TotalOrders++
				entry.TotalRevenue = entry.TotalRevenue.Add(o.Subtotal)
			}
		}
		catalog, err := s.products.GetBySupplier(ctx, sp.ID)
		if err != nil {
			return nil, err
		}
		entry.TotalProducts = len(catalog)
		top = append(top, entry)
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalRevenue.GreaterThan(top[j].TotalRevenue)
	})
	m.TopSuppliers = top

	return m, nil
}

type OrderAnalytics struct {
	TotalOrders       int              `json:"total_orders"`
	StatusBreakdown   map[order.Status]int `json:"status_breakdown"`
	AverageOrderValue decimal.Decimal  `json:"average_order_value"`
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
}

func (s *Service) OrderAnalytics(ctx context.Context) (*OrderAnalytics, error) {
	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	a := &OrderAnalytics{
		TotalOrders: len(orders),
		StatusBreakdown: map[order.Status]int{
			order.StatusPending:    0,
			order.StatusProcessing: 0,
			order.StatusShipped:    0,
			order.StatusDelivered:  0,
		},
		AverageOrderValue: decimal.Zero,
		TotalRevenue:      decimal.Zero,
	}
	for _, o := range orders {
		a.StatusBreakdown[o.Status]++
		a.TotalRevenue = a.TotalRevenue.Add(o.Total)
	}
	if len(orders) > 0 {
		a.AverageOrderValue = a.TotalRevenue.DivRound(decimal.NewFromInt(int64(len(orders))), 2)
	}
	return a, nil
}

type SupplierAnalytics struct {
	TotalSuppliers      int                                 `json:"total_suppliers"`
	StatusBreakdown     map[supplier.SubscriptionStatus]int `json:"status_breakdown"`
	SubscriptionRevenue decimal.Decimal                     `json:"subscription_revenue"`
}

func (s *Service) SupplierAnalytics(ctx context.Context) (*SupplierAnalytics, error) {
	suppliers, err := s.suppliers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	a := &SupplierAnalytics{
		TotalSuppliers: len(suppliers),
		StatusBreakdown: map[supplier.SubscriptionStatus]int{
			supplier.SubscriptionActive:   0,
			supplier.SubscriptionTrial:    0,
			supplier.SubscriptionInactive: 0,
		},
	}
	for _, sp := range suppliers {
		a.StatusBreakdown[sp.SubscriptionStatus]++
	}
	a.SubscriptionRevenue = SubscriptionPrice.Mul(decimal.NewFromInt(int64(a.StatusBreakdown[supplier.SubscriptionActive])))
	return a, nil
}

// UpdateSupplierStatus is the admin action behind supplier moderation.
func (s *Service) UpdateSupplierStatus(ctx context.Context, supplierID int, status supplier.SubscriptionStatus) (*supplier.Supplier, error) {
	return s.suppliers.UpdateSubscriptionStatus(ctx, supplierID, status)
}
