package devserver

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"dishorder/internal/domain"
	"dishorder/internal/workflow"
)

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":    "healthy",
		"service":   "stub-server",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) listDishes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	dishes := make([]domain.Dish, 0, len(s.dishes))
	for _, d := range s.dishes {
		dishes = append(dishes, d)
	}
	s.mu.Unlock()
	sort.Slice(dishes, func(i, j int) bool { return dishes[i].ID < dishes[j].ID })
	writeJSON(w, dishes)
}

func (s *Server) getDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	s.mu.Lock()
	dish, ok := s.dishes[id]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	writeJSON(w, dish)
}

type createOrderRequest struct {
	UserID   string            `json:"user_id"`
	UserName string            `json:"user_name"`
	Items    []domain.CartLine `json:"items"`
	Note     string            `json:"note"`
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "order has no items", http.StatusBadRequest)
		return
	}

	var total float64
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, domain.OrderItem{
			DishName: line.DishName,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
		total += line.Price * float64(line.Quantity)
	}

	s.mu.Lock()
	order := domain.Order{
		ID:          s.nextOrder,
		UserID:      req.UserID,
		UserName:    req.UserName,
		Items:       items,
		TotalAmount: total,
		Status:      domain.StatusPending,
		Note:        req.Note,
		CreatedAt:   s.now(),
	}
	s.orders[order.ID] = order
	s.nextOrder++
	s.mu.Unlock()

	writeJSON(w, order)
}

func (s *Server) listUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	s.mu.Lock()
	orders := make([]domain.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	s.mu.Unlock()
	sortOrders(orders)
	writeJSON(w, orders)
}

func (s *Server) listMerchantOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	s.mu.Lock()
	orders := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	s.mu.Unlock()
	sortOrders(orders)
	writeJSON(w, workflow.FilterByStatus(orders, status))
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	s.mu.Lock()
	order, ok := s.orders[id]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, order)
}

// transition returns a handler applying one discrete status change, guarded
// by the workflow rules.
func (s *Server) transition(target domain.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(mux.Vars(r)["id"])
		s.applyStatus(w, id, target)
	}
}

func (s *Server) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	status, err := domain.ParseStatus(body.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.applyStatus(w, id, status)
}

func (s *Server) applyStatus(w http.ResponseWriter, orderID int, target domain.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err := workflow.Transition(order.Status, target); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	order.Status = target
	s.orders[orderID] = order
	writeJSON(w, order)
}

func (s *Server) createDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dish.CookingInstructions == "" {
		dish.CookingInstructions = domain.NoInstructions
	}
	s.mu.Lock()
	dish.ID = s.nextDishID
	dish.CreatedAt = s.now()
	s.dishes[dish.ID] = dish
	s.nextDishID++
	s.mu.Unlock()
	writeJSON(w, dish)
}

func (s *Server) updateDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.dishes[id]
	if !ok {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	dish.ID = id
	dish.CreatedAt = existing.CreatedAt
	s.dishes[id] = dish
	writeJSON(w, dish)
}

func (s *Server) deleteDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.dishes[id]; !ok {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	delete(s.dishes, id)
	writeJSON(w, map[string]string{"result": "deleted"})
}

func sortOrders(orders []domain.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
