package service

import (
	"context"
	"errors"
	"log"

	"dishorder/internal/api"
	"dishorder/internal/domain"
	"dishorder/internal/session"
	"dishorder/internal/workflow"
)

var ErrEmptyCart = errors.New("cart is empty")

// CustomerService drives the ordering front-end: catalog browsing, cart
// mutation, order submission and history.
type CustomerService struct {
	gw      Gateway
	session *session.Session
}

func NewCustomerService(gw Gateway, sess *session.Session) *CustomerService {
	return &CustomerService{gw: gw, session: sess}
}

func (s *CustomerService) BrowseDishes(ctx context.Context) ([]domain.Dish, error) {
	return s.gw.ListDishes(ctx)
}

func (s *CustomerService) DishDetail(ctx context.Context, dishID int) (*domain.Dish, error) {
	return s.gw.GetDish(ctx, dishID)
}

func (s *CustomerService) AddToCart(ctx context.Context, dish domain.Dish, qty int) (int, error) {
	if err := s.session.AddToCart(ctx, dish, qty); err != nil {
		return 0, err
	}
	return s.session.Cart().ItemCount(), nil
}

func (s *CustomerService) DecreaseFromCart(ctx context.Context, dishID int) (int, error) {
	if err := s.session.DecrementCart(ctx, dishID); err != nil {
		return 0, err
	}
	return s.session.Cart().ItemCount(), nil
}

func (s *CustomerService) RemoveFromCart(ctx context.Context, dishID int) error {
	return s.session.RemoveFromCart(ctx, dishID)
}

func (s *CustomerService) ClearCart(ctx context.Context) error {
	return s.session.ClearCart(ctx)
}

// SubmitOrder sends the cart snapshot with the local identity and the
// optional note, then clears the cart on success. A failed submission keeps
// the cart intact so the user can retry.
func (s *CustomerService) SubmitOrder(ctx context.Context, note string) (*domain.Order, error) {
	crt := s.session.Cart()
	if crt.Empty() {
		return nil, ErrEmptyCart
	}
	userID, err := s.session.UserID(ctx)
	if err != nil {
		return nil, err
	}
	userName, err := s.session.UserName(ctx)
	if err != nil {
		return nil, err
	}
	order, err := s.gw.CreateOrder(ctx, api.CreateOrderRequest{
		UserID:   userID,
		UserName: userName,
		Items:    crt.Lines(),
		Note:     note,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[CUSTOMER] order %d submitted, total %.2f", order.ID, order.TotalAmount)
	if err := s.session.ClearCart(ctx); err != nil {
		log.Printf("[CUSTOMER] failed to clear cart after submit: %v", err)
	}
	return order, nil
}

// OrderHistory returns the user's orders newest first.
func (s *CustomerService) OrderHistory(ctx context.Context) ([]domain.Order, error) {
	userID, err := s.session.UserID(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.gw.ListUserOrders(ctx, userID)
	if err != nil {
		return nil, err
	}
	workflow.SortByRecency(orders)
	return orders, nil
}

var _ CustomerServiceInterface = (*CustomerService)(nil)
