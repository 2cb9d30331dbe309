package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dishorder/internal/domain"
)

// HTTPClient lets tests substitute the transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the thin wrapper over the ordering backend. Every call carries
// a JSON body, the fixed timeout, and uniform error mapping.
type Client struct {
	baseURL string
	client  HTTPClient
}

// DefaultTimeout matches the 30-second timeout both front-ends use.
const DefaultTimeout = 30 * time.Second

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// NewClientWith injects a custom transport; used by tests.
func NewClientWith(baseURL string, client HTTPClient) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// CreateOrderRequest is the submission payload: a snapshot of the cart plus
// the locally held identity.
type CreateOrderRequest struct {
	UserID   string            `json:"user_id"`
	UserName string            `json:"user_name"`
	Items    []domain.CartLine `json:"items"`
	Note     string            `json:"note,omitempty"`
}

type dishPayload struct {
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	Description         string  `json:"description"`
	CookingInstructions string  `json:"cooking_instructions"`
	IsAvailable         bool    `json:"is_available"`
	Category            string  `json:"category,omitempty"`
}

func (c *Client) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	var dishes []domain.Dish
	if err := c.do(ctx, http.MethodGet, "/api/user/dishes", nil, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (c *Client) GetDish(ctx context.Context, dishID int) (*domain.Dish, error) {
	var dish domain.Dish
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/user/dishes/%d", dishID), nil, &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/api/user/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	var orders []domain.Order
	path := "/api/user/orders/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListMerchantOrders fetches all orders, or only those matching status when
// it is non-empty and not "all".
func (c *Client) ListMerchantOrders(ctx context.Context, status string) ([]domain.Order, error) {
	path := "/api/merchant/orders"
	if status != "" && status != "all" {
		path += "?status=" + url.QueryEscape(status)
	}
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetMerchantOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/merchant/orders/%d", orderID), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) AcceptOrder(ctx context.Context, orderID int) error {
	return c.transition(ctx, orderID, "accept")
}

func (c *Client) StartPreparing(ctx context.Context, orderID int) error {
	return c.transition(ctx, orderID, "start")
}

func (c *Client) CompleteOrder(ctx context.Context, orderID int) error {
	return c.transition(ctx, orderID, "complete")
}

func (c *Client) CancelOrder(ctx context.Context, orderID int) error {
	return c.transition(ctx, orderID, "cancel")
}

func (c *Client) transition(ctx context.Context, orderID int, action string) error {
	path := fmt.Sprintf("/api/merchant/orders/%d/%s", orderID, action)
	return c.do(ctx, http.MethodPost, path, struct{}{}, nil)
}

// UpdateOrderStatus is the generic PUT alternative to the discrete
// transition endpoints.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, status domain.Status) error {
	body := map[string]string{"status": string(status)}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/merchant/orders/%d", orderID), body, nil)
}

func (c *Client) CreateDish(ctx context.Context, dish domain.Dish) (*domain.Dish, error) {
	var created domain.Dish
	if err := c.do(ctx, http.MethodPost, "/api/merchant/dishes", toDishPayload(dish), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateDish(ctx context.Context, dish domain.Dish) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/merchant/dishes/%d", dish.ID), toDishPayload(dish), nil)
}

func (c *Client) DeleteDish(ctx context.Context, dishID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/merchant/dishes/%d", dishID), nil, nil)
}

func toDishPayload(dish domain.Dish) dishPayload {
	if dish.CookingInstructions == "" {
		dish.CookingInstructions = domain.NoInstructions
	}
	return dishPayload{
		Name:                dish.Name,
		Price:               dish.Price,
		Description:         dish.Description,
		CookingInstructions: dish.CookingInstructions,
		IsAvailable:         dish.IsAvailable,
		Category:            dish.Category,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	fullURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// ngrok serves an interstitial warning page unless asked not to.
	req.Header.Set("ngrok-skip-browser-warning", "true")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[API] %s %s failed: %v", method, fullURL, err)
		return &NetworkError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: fullURL, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[API] %s %s returned status %d", method, fullURL, resp.StatusCode)
		return &ServerError{URL: fullURL, StatusCode: resp.StatusCode, Hint: hint(data)}
	}

	if looksLikeHTML(data) {
		log.Printf("[API] %s %s returned HTML instead of JSON", method, fullURL)
		return &ServerError{URL: fullURL, StatusCode: resp.StatusCode, Hint: "HTML body, expected JSON"}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &ServerError{URL: fullURL, StatusCode: resp.StatusCode, Hint: "malformed JSON body"}
		}
	}
	return nil
}

func looksLikeHTML(body []byte) bool {
	trimmed := strings.TrimSpace(string(body))
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype html") || strings.HasPrefix(lower, "<html")
}

func hint(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if len(trimmed) > 120 {
		trimmed = trimmed[:120]
	}
	return trimmed
}
