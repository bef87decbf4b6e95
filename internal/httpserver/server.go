package httpserver

import (
	"net/http"

	"mazaj-be/internal/catalog"
	"mazaj-be/internal/geo"
	"mazaj-be/internal/logger"
	"mazaj-be/internal/middleware"
	"mazaj-be/internal/order"
	"mazaj-be/internal/session"

	"github.com/gorilla/mux"
)

// Server wires the storefront services to the REST surface the mobile
// client talks to.
type Server struct {
	catalog  catalog.Service
	orders   order.Service
	sessions *session.Manager
	resolver *geo.Resolver
}

func New(catalogSvc catalog.Service, orderSvc order.Service, sessions *session.Manager, resolver *geo.Resolver) *Server {
	return &Server{
		catalog:  catalogSvc,
		orders:   orderSvc,
		sessions: sessions,
		resolver: resolver,
	}
}

// Router builds the route table wrapped in the middleware chain.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// Catalog
	r.HandleFunc("/products", s.listProducts).Methods(http.MethodGet)
	r.HandleFunc("/products", s.createProduct).Methods(http.MethodPost)
	r.HandleFunc("/products/{id}", s.getProduct).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", s.updateProduct).Methods(http.MethodPut)
	r.HandleFunc("/products/{id}", s.deleteProduct).Methods(http.MethodDelete)

	// Cart
	r.HandleFunc("/cart", s.getCart).Methods(http.MethodGet)
	r.HandleFunc("/cart", s.clearCart).Methods(http.MethodDelete)
	r.HandleFunc("/cart/items", s.addCartItem).Methods(http.MethodPost)
	r.HandleFunc("/cart/items/{id}", s.removeCartItem).Methods(http.MethodDelete)

	// Checkout & orders
	r.HandleFunc("/checkout", s.checkout).Methods(http.MethodPost)
	r.HandleFunc("/orders", s.listOrders).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}/status", s.updateOrderStatus).Methods(http.MethodPatch)

	var h http.Handler = r
	h = middleware.RateLimitMiddleware(h)
	h = logger.LoggingMiddleware(h)
	h = logger.RequestIDMiddleware(h)
	return h
}

// session resolves the shopper's session from the X-Session-ID header,
// issuing a fresh one when the client has none yet. The id is echoed back
// so the client can persist it.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	sess := s.sessions.Get(r.Header.Get("X-Session-ID"))
	w.Header().Set("X-Session-ID", sess.ID)
	return sess
}
