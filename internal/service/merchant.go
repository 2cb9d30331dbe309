package service

import (
	"context"
	"log"

	"dishorder/internal/domain"
	"dishorder/internal/qr"
	"dishorder/internal/workflow"
)

// MerchantService drives the order dashboard and the dish catalog
// management.
type MerchantService struct {
	gw     Gateway
	qrBase string
}

func NewMerchantService(gw Gateway, qrBaseURL string) *MerchantService {
	return &MerchantService{gw: gw, qrBase: qrBaseURL}
}

// Dashboard fetches the order collection, sorts it newest first, applies
// the status filter, and recomputes the aggregates from the full
// collection. Stats always cover all orders, not just the filtered view.
func (s *MerchantService) Dashboard(ctx context.Context, statusFilter string) (*DashboardView, error) {
	orders, err := s.gw.ListMerchantOrders(ctx, "")
	if err != nil {
		return nil, err
	}
	workflow.SortByRecency(orders)
	return &DashboardView{
		Orders: workflow.FilterByStatus(orders, statusFilter),
		Stats:  workflow.Summarize(orders),
	}, nil
}

func (s *MerchantService) OrderDetail(ctx context.Context, orderID int) (*domain.Order, error) {
	return s.gw.GetMerchantOrder(ctx, orderID)
}

// Advance moves the order one step forward, rejecting terminal orders
// before any network call is made. The guard runs client-side as well as on
// the stub backend.
func (s *MerchantService) Advance(ctx context.Context, order *domain.Order) (domain.Status, error) {
	next, err := workflow.Advance(order.Status)
	if err != nil {
		return "", err
	}
	switch next {
	case domain.StatusAccepted:
		err = s.gw.AcceptOrder(ctx, order.ID)
	case domain.StatusPreparing:
		err = s.gw.StartPreparing(ctx, order.ID)
	case domain.StatusCompleted:
		err = s.gw.CompleteOrder(ctx, order.ID)
	default:
		err = s.gw.UpdateOrderStatus(ctx, order.ID, next)
	}
	if err != nil {
		return "", err
	}
	log.Printf("[MERCHANT] order %d: %s -> %s", order.ID, order.Status, next)
	order.Status = next
	return next, nil
}

func (s *MerchantService) Cancel(ctx context.Context, order *domain.Order) error {
	if err := workflow.Transition(order.Status, domain.StatusCancelled); err != nil {
		return err
	}
	if err := s.gw.CancelOrder(ctx, order.ID); err != nil {
		return err
	}
	log.Printf("[MERCHANT] order %d cancelled", order.ID)
	order.Status = domain.StatusCancelled
	return nil
}

func (s *MerchantService) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	return s.gw.ListDishes(ctx)
}

func (s *MerchantService) CreateDish(ctx context.Context, dish domain.Dish) (*domain.Dish, error) {
	if err := ValidateDish(dish); err != nil {
		return nil, err
	}
	return s.gw.CreateDish(ctx, dish)
}

func (s *MerchantService) UpdateDish(ctx context.Context, dish domain.Dish) error {
	if err := ValidateDish(dish); err != nil {
		return err
	}
	return s.gw.UpdateDish(ctx, dish)
}

func (s *MerchantService) DeleteDish(ctx context.Context, dishID int) error {
	return s.gw.DeleteDish(ctx, dishID)
}

// ToggleAvailability flips is_available and pushes the full dish record, the
// way the dish list screen did.
func (s *MerchantService) ToggleAvailability(ctx context.Context, dish domain.Dish) error {
	dish.IsAvailable = !dish.IsAvailable
	return s.gw.UpdateDish(ctx, dish)
}

// PickupQR renders the QR code customers scan at pickup.
func (s *MerchantService) PickupQR(orderID int) ([]byte, error) {
	return qr.PickupCode(s.qrBase, orderID)
}

// ValidateDish enforces the submission rules before any network call:
// name and description required, price strictly positive.
func ValidateDish(dish domain.Dish) error {
	if dish.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if dish.Price <= 0 {
		return &domain.ValidationError{Field: "price", Reason: "must be greater than zero"}
	}
	if dish.Description == "" {
		return &domain.ValidationError{Field: "description", Reason: "must not be empty"}
	}
	return nil
}

var _ MerchantServiceInterface = (*MerchantService)(nil)
