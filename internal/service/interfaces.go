package service

import (
	"context"

	"dishorder/internal/api"
	"dishorder/internal/domain"
	"dishorder/internal/workflow"
)

// Gateway is the slice of the backend client the services depend on.
type Gateway interface {
	ListDishes(ctx context.Context) ([]domain.Dish, error)
	GetDish(ctx context.Context, dishID int) (*domain.Dish, error)
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error)
	ListMerchantOrders(ctx context.Context, status string) ([]domain.Order, error)
	GetMerchantOrder(ctx context.Context, orderID int) (*domain.Order, error)
	AcceptOrder(ctx context.Context, orderID int) error
	StartPreparing(ctx context.Context, orderID int) error
	CompleteOrder(ctx context.Context, orderID int) error
	CancelOrder(ctx context.Context, orderID int) error
	UpdateOrderStatus(ctx context.Context, orderID int, status domain.Status) error
	CreateDish(ctx context.Context, dish domain.Dish) (*domain.Dish, error)
	UpdateDish(ctx context.Context, dish domain.Dish) error
	DeleteDish(ctx context.Context, dishID int) error
}

type CustomerServiceInterface interface {
	BrowseDishes(ctx context.Context) ([]domain.Dish, error)
	DishDetail(ctx context.Context, dishID int) (*domain.Dish, error)
	AddToCart(ctx context.Context, dish domain.Dish, qty int) (badge int, err error)
	DecreaseFromCart(ctx context.Context, dishID int) (badge int, err error)
	RemoveFromCart(ctx context.Context, dishID int) error
	ClearCart(ctx context.Context) error
	SubmitOrder(ctx context.Context, note string) (*domain.Order, error)
	OrderHistory(ctx context.Context) ([]domain.Order, error)
}

type MerchantServiceInterface interface {
	Dashboard(ctx context.Context, statusFilter string) (*DashboardView, error)
	OrderDetail(ctx context.Context, orderID int) (*domain.Order, error)
	Advance(ctx context.Context, order *domain.Order) (domain.Status, error)
	Cancel(ctx context.Context, order *domain.Order) error
	ListDishes(ctx context.Context) ([]domain.Dish, error)
	CreateDish(ctx context.Context, dish domain.Dish) (*domain.Dish, error)
	UpdateDish(ctx context.Context, dish domain.Dish) error
	DeleteDish(ctx context.Context, dishID int) error
	ToggleAvailability(ctx context.Context, dish domain.Dish) error
	PickupQR(orderID int) ([]byte, error)
}

// DashboardView bundles the order list with its freshly recomputed
// aggregates.
type DashboardView struct {
	Orders []domain.Order
	Stats  workflow.Stats
}
