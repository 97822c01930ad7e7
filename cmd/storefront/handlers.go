package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/supplyhub/marketplace/internal/admin"
	"github.com/supplyhub/marketplace/internal/cart"
	"github.com/supplyhub/marketplace/internal/httpx"
	"github.com/supplyhub/marketplace/internal/order"
	"github.com/supplyhub/marketplace/internal/product"
	"github.com/supplyhub/marketplace/internal/supplier"
	"github.com/supplyhub/marketplace/internal/user"
)

type deps struct {
	products  product.Repository
	suppliers supplier.Repository
	users     user.Repository
	orders    order.Repository
	cart      *cart.Engine
	checkout  *order.Service
	admin     *admin.Service
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.GET("/catalog", catalogHandler(d.products))

	r.GET("/products", listProductsHandler(d.products))
	r.GET("/products/search", searchProductsHandler(d.products))
	r.GET("/products/:id", getProductHandler(d.products))
	r.POST("/products", createProductHandler(d.products))
	r.PUT("/products/:id", updateProductHandler(d.products))
	r.DELETE("/products/:id", deleteProductHandler(d.products))

	r.GET("/suppliers", listSuppliersHandler(d.suppliers))
	r.GET("/suppliers/:id", getSupplierHandler(d.suppliers))
	r.GET("/suppliers/:id/products", supplierProductsHandler(d.products))
	r.GET("/suppliers/:id/orders", supplierOrdersHandler(d.orders))
	r.POST("/suppliers", createSupplierHandler(d.suppliers))
	r.PUT("/suppliers/:id", updateSupplierHandler(d.suppliers))
	r.PATCH("/suppliers/:id/subscription", updateSubscriptionHandler(d.suppliers))
	r.DELETE("/suppliers/:id", deleteSupplierHandler(d.suppliers))

	r.GET("/cart", getCartHandler(d.cart))
	r.POST("/cart/items", addCartItemHandler(d.cart, d.products))
	r.PUT("/cart/items/:productId", updateCartItemHandler(d.cart))
	r.DELETE("/cart/items/:productId", removeCartItemHandler(d.cart))
	r.DELETE("/cart", clearCartHandler(d.cart))
	r.POST("/checkout", checkoutHandler(d.cart, d.checkout))

	r.GET("/orders", listOrdersHandler(d.orders))
	r.GET("/orders/:id", getOrderHandler(d.orders))
	r.PATCH("/orders/:id/status", updateOrderStatusHandler(d.orders))
	r.DELETE("/orders/:id", deleteOrderHandler(d.orders))

	r.POST("/users", createUserHandler(d.users))
	r.GET("/users/:id", getUserHandler(d.users))
	r.GET("/users/:id/orders", buyerOrdersHandler(d.orders))

	r.GET("/admin/dashboard", dashboardHandler(d.admin))
	r.GET("/admin/orders", orderAnalyticsHandler(d.admin))
	r.GET("/admin/suppliers", supplierAnalyticsHandler(d.admin))

	return r
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return id, true
}

// catalogHandler serves the filtered, sorted catalog view plus the distinct
// category list the filter sidebar needs. An empty result is `[]`, never
// null, so clients can tell "no matches" from "nothing loaded".
func catalogHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := repo.GetAll(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		f := product.Filter{
			Search:   c.Query("search"),
			Category: c.Query("category"),
			Sort:     product.SortKey(c.DefaultQuery("sort", string(product.SortName))),
		}
		if v := c.Query("min_price"); v != "" {
			d, err := decimal.NewFromString(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "min_price must be a decimal number"})
				return
			}
			f.PriceMin = &d
		}
		if v := c.Query("max_price"); v != "" {
			d, err := decimal.NewFromString(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "max_price must be a decimal number"})
				return
			}
			f.PriceMax = &d
		}
		c.JSON(http.StatusOK, gin.H{
			"items":      product.FilterAndSort(all, f),
			"categories": product.Categories(all),
		})
	}
}

func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var (
			items []product.Product
			err   error
		)
		if category := c.Query("category"); category != "" {
			items, err = repo.GetByCategory(ctx, category)
		} else {
			items, err = repo.GetAll(ctx)
		}
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func searchProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.Search(c.Request.Context(), c.Query("q"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"q": c.Query("q"), "items": items})
	}
}

func getProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		p, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func createProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		p, err := repo.Create(c.Request.Context(), req)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func updateProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req product.UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		p, err := repo.Update(c.Request.Context(), id, req)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deleteProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		p, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func listSuppliersHandler(repo supplier.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.GetAll(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func getSupplierHandler(repo supplier.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		s, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func supplierProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		items, err := repo.GetBySupplier(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func supplierOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		items, err := repo.GetBySupplier(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func createSupplierHandler(repo supplier.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req supplier.CreateSupplierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		s, err := repo.Create(c.Request.Context(), req)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, s)
	}
}

func updateSupplierHandler(repo supplier.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req supplier.UpdateSupplierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		s, err := repo.Update(c.Request.Context(), id, req)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func updateSubscriptionHandler(repo supplier.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req struct {
			Status supplier.SubscriptionStatus `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		s, err := repo.UpdateSubscriptionStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func deleteSupplierHandler(repo supplier.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		s, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func getCartHandler(e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"items":      e.Lines(),
			"totals":     e.Totals(),
			"item_count": e.ItemCount(),
		})
	}
}

func addCartItemHandler(e *cart.Engine, repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ProductID int `json:"product_id"`
			Quantity  int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		p, err := repo.GetByID(c.Request.Context(), req.ProductID)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		if err := e.AddItem(*p, req.Quantity); err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": e.Lines(), "totals": e.Totals()})
	}
}

func updateCartItemHandler(e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "productId")
		if !ok {
			return
		}
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if err := e.UpdateQuantity(id, req.Quantity); err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": e.Lines(), "totals": e.Totals()})
	}
}

func removeCartItemHandler(e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "productId")
		if !ok {
			return
		}
		if err := e.RemoveItem(id); err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": e.Lines(), "totals": e.Totals()})
	}
}

func clearCartHandler(e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.Clear(); err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": e.Lines(), "totals": e.Totals()})
	}
}

// checkoutHandler places an order from the current cart and clears it on
// success, mirroring the storefront's checkout flow.
func checkoutHandler(e *cart.Engine, svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		lines := e.Lines()
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		o, err := svc.PlaceOrder(c.Request.Context(), order.CheckoutRequest{
			BuyerID:   req.BuyerID,
			BuyerName: req.BuyerName,
			Lines:     lines,
			Shipping:  req.Shipping,
			Payment:   req.Payment.Redact(),
		})
		if err != nil {
			httpx.Error(c, err)
			return
		}
		if err := e.Clear(); err != nil {
			log.Printf("[storefront] clear cart after checkout: %v", err)
		}
		c.JSON(http.StatusCreated, o)
	}
}

func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if v := c.Query("buyer_id"); v != "" {
			id, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "buyer_id must be an integer"})
				return
			}
			items, err := repo.GetByBuyer(ctx, id)
			if err != nil {
				httpx.Error(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"items": items})
			return
		}
		if v := c.Query("supplier_id"); v != "" {
			id, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "supplier_id must be an integer"})
				return
			}
			items, err := repo.GetBySupplier(ctx, id)
			if err != nil {
				httpx.Error(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"items": items})
			return
		}
		items, err := repo.GetAll(ctx)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		o, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func updateOrderStatusHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		o, err := repo.UpdateStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func deleteOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		o, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func createUserHandler(repo user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		u, err := repo.Create(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, user.ErrAlreadyExist) {
				c.JSON(http.StatusConflict, gin.H{"error": "user exists (email)"})
				return
			}
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

func getUserHandler(repo user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		u, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

func buyerOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		items, err := repo.GetByBuyer(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func dashboardHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := svc.DashboardMetrics(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

func orderAnalyticsHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := svc.OrderAnalytics(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func supplierAnalyticsHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := svc.SupplierAnalytics(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}
