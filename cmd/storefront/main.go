package main

import (
	"log"

	"github.com/supplyhub/marketplace/internal/admin"
	"github.com/supplyhub/marketplace/internal/cart"
	"github.com/supplyhub/marketplace/internal/config"
	"github.com/supplyhub/marketplace/internal/order"
	"github.com/supplyhub/marketplace/internal/product"
	"github.com/supplyhub/marketplace/internal/seed"
	"github.com/supplyhub/marketplace/internal/store"
	"github.com/supplyhub/marketplace/internal/supplier"
	"github.com/supplyhub/marketplace/internal/user"
)

func main() {
	cfg := config.Load()

	products := store.NewCollection[product.Product]("product")
	suppliers := store.NewCollection[supplier.Supplier]("supplier")
	users := store.NewCollection[user.User]("user")
	orders := store.NewCollection[order.Order]("order")

	if cfg.SeedData {
		if err := seed.Load(seed.Stores{
			Products:  products,
			Suppliers: suppliers,
			Users:     users,
			Orders:    orders,
		}); err != nil {
			log.Fatalf("[storefront] seed: %v", err)
		}
	}

	lat := store.NewLatency(cfg.LatencyScale)
	d := deps{
		products:  product.NewMemRepo(products, lat),
		suppliers: supplier.NewMemRepo(suppliers, lat),
		users:     user.NewMemRepo(users, lat),
		orders:    order.NewMemRepo(orders, lat),
	}

	engine, err := cart.New(cart.NewFileStorage(cfg.CartStoragePath))
	if err != nil {
		log.Fatalf("[storefront] cart storage: %v", err)
	}
	d.cart = engine
	d.checkout = order.NewService(d.orders, d.users)
	d.admin = admin.NewService(d.orders, d.suppliers, d.products, d.users)

	r := newRouter(d)
	log.Printf("[storefront] listening on %s", cfg.StorefrontAddr)
	log.Fatal(r.Run(cfg.StorefrontAddr))
}
