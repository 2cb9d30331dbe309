// Package devserver is an in-memory stand-in for the real ordering backend.
// It implements the documented HTTP API so the two apps and the client tests
// have something to talk to during development; it is not a specification of
// the production backend.
package devserver

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"dishorder/internal/domain"
)

type Server struct {
	mu         sync.Mutex
	dishes     map[int]domain.Dish
	orders     map[int]domain.Order
	nextDishID int
	nextOrder  int
	now        func() time.Time
}

func New() *Server {
	s := &Server{
		dishes:     make(map[int]domain.Dish),
		orders:     make(map[int]domain.Order),
		nextDishID: 1,
		nextOrder:  1,
		now:        time.Now,
	}
	s.seed()
	return s
}

func (s *Server) seed() {
	for _, d := range []domain.Dish{
		{Name: "Braised Pork Rice", Price: 15.00, Description: "House special over steamed rice", Category: "mains", IsAvailable: true, CookingInstructions: "simmer 40 min"},
		{Name: "Tomato Egg Noodles", Price: 12.50, Description: "Hand-pulled noodles in tomato broth", Category: "mains", IsAvailable: true, CookingInstructions: domain.NoInstructions},
		{Name: "Soy Milk", Price: 3.00, Description: "Fresh, served warm or cold", Category: "drinks", IsAvailable: true, CookingInstructions: domain.NoInstructions},
	} {
		d.ID = s.nextDishID
		d.CreatedAt = s.now()
		s.dishes[d.ID] = d
		s.nextDishID++
	}
}

// Router wires the documented endpoints with the default CORS handler.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	s.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", s.healthCheck).Methods("GET")

	r.HandleFunc("/api/user/dishes", s.listDishes).Methods("GET")
	r.HandleFunc("/api/user/dishes/{id}", s.getDish).Methods("GET")
	r.HandleFunc("/api/user/orders", s.createOrder).Methods("POST")
	r.HandleFunc("/api/user/orders/{userId}", s.listUserOrders).Methods("GET")

	r.HandleFunc("/api/merchant/orders", s.listMerchantOrders).Methods("GET")
	r.HandleFunc("/api/merchant/orders/{id}", s.getOrder).Methods("GET")
	r.HandleFunc("/api/merchant/orders/{id}", s.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/merchant/orders/{id}/accept", s.transition(domain.StatusAccepted)).Methods("POST")
	r.HandleFunc("/api/merchant/orders/{id}/start", s.transition(domain.StatusPreparing)).Methods("POST")
	r.HandleFunc("/api/merchant/orders/{id}/complete", s.transition(domain.StatusCompleted)).Methods("POST")
	r.HandleFunc("/api/merchant/orders/{id}/cancel", s.transition(domain.StatusCancelled)).Methods("POST")

	r.HandleFunc("/api/merchant/dishes", s.createDish).Methods("POST")
	r.HandleFunc("/api/merchant/dishes/{id}", s.updateDish).Methods("PUT")
	r.HandleFunc("/api/merchant/dishes/{id}", s.deleteDish).Methods("DELETE")
}

func Start(addr string, handler http.Handler) {
	log.Printf("Stub backend starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
