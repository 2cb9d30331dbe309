// Code generated by mockery. Maintained by hand.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dishorder/internal/api"
	"dishorder/internal/domain"
)

// Gateway is a mock for service.Gateway.
type Gateway struct {
	mock.Mock
}

func NewGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *Gateway {
	m := &Gateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Gateway) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	ret := m.Called(ctx)
	var dishes []domain.Dish
	if ret.Get(0) != nil {
		dishes = ret.Get(0).([]domain.Dish)
	}
	return dishes, ret.Error(1)
}

func (m *Gateway) GetDish(ctx context.Context, dishID int) (*domain.Dish, error) {
	ret := m.Called(ctx, dishID)
	var dish *domain.Dish
	if ret.Get(0) != nil {
		dish = ret.Get(0).(*domain.Dish)
	}
	return dish, ret.Error(1)
}

func (m *Gateway) CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*domain.Order, error) {
	ret := m.Called(ctx, req)
	var order *domain.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*domain.Order)
	}
	return order, ret.Error(1)
}

func (m *Gateway) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	ret := m.Called(ctx, userID)
	var orders []domain.Order
	if ret.Get(0) != nil {
		orders = ret.Get(0).([]domain.Order)
	}
	return orders, ret.Error(1)
}

func (m *Gateway) ListMerchantOrders(ctx context.Context, status string) ([]domain.Order, error) {
	ret := m.Called(ctx, status)
	var orders []domain.Order
	if ret.Get(0) != nil {
		orders = ret.Get(0).([]domain.Order)
	}
	return orders, ret.Error(1)
}

func (m *Gateway) GetMerchantOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	ret := m.Called(ctx, orderID)
	var order *domain.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*domain.Order)
	}
	return order, ret.Error(1)
}

func (m *Gateway) AcceptOrder(ctx context.Context, orderID int) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *Gateway) StartPreparing(ctx context.Context, orderID int) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *Gateway) CompleteOrder(ctx context.Context, orderID int) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *Gateway) CancelOrder(ctx context.Context, orderID int) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *Gateway) UpdateOrderStatus(ctx context.Context, orderID int, status domain.Status) error {
	return m.Called(ctx, orderID, status).Error(0)
}

func (m *Gateway) CreateDish(ctx context.Context, dish domain.Dish) (*domain.Dish, error) {
	ret := m.Called(ctx, dish)
	var created *domain.Dish
	if ret.Get(0) != nil {
		created = ret.Get(0).(*domain.Dish)
	}
	return created, ret.Error(1)
}

func (m *Gateway) UpdateDish(ctx context.Context, dish domain.Dish) error {
	return m.Called(ctx, dish).Error(0)
}

func (m *Gateway) DeleteDish(ctx context.Context, dishID int) error {
	return m.Called(ctx, dishID).Error(0)
}
