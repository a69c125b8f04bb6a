package http

import (
	"net/http"

	"go-inventory-service/internal/delivery/http/handler"
	"go-inventory-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	productHandler   *handler.ProductHandler
	inventoryHandler *handler.InventoryHandler
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	productHandler *handler.ProductHandler,
	inventoryHandler *handler.InventoryHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		productHandler:   productHandler,
		inventoryHandler: inventoryHandler,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Product routes
	api.HandleFunc("/product", r.productHandler.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/product", r.productHandler.CreateProduct).Methods(http.MethodPost)
	api.HandleFunc("/product/{id}", r.productHandler.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/product/{id}", r.productHandler.UpdateProduct).Methods(http.MethodPut)

	// Inventory routes
	api.HandleFunc("/inventory", r.inventoryHandler.ListInventories).Methods(http.MethodGet)
	api.HandleFunc("/inventory", r.inventoryHandler.CreateInventory).Methods(http.MethodPost)
	api.HandleFunc("/inventory/{id}", r.inventoryHandler.GetInventory).Methods(http.MethodGet)
	api.HandleFunc("/inventory/{id}", r.inventoryHandler.UpdateInventory).Methods(http.MethodPut)
	api.HandleFunc("/inventory/{id}", r.inventoryHandler.DeleteInventory).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
