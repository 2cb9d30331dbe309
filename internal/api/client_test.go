package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishorder/internal/domain"
)

func TestListDishes(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/user/dishes", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.Equal(t, "true", req.Header.Get("ngrok-skip-browser-warning"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.Dish{{ID: 1, Name: "Soy Milk", Price: 3.00, IsAvailable: true}})
	}).Methods("GET")
	server := httptest.NewServer(r)
	defer server.Close()

	client := NewClient(server.URL, 0)
	dishes, err := client.ListDishes(context.Background())
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Soy Milk", dishes[0].Name)
}

func TestCreateOrder_SendsSnapshot(t *testing.T) {
	var received CreateOrderRequest
	r := mux.NewRouter()
	r.HandleFunc("/api/user/orders", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&received))
		json.NewEncoder(w).Encode(domain.Order{ID: 7, Status: domain.StatusPending, TotalAmount: 23.00})
	}).Methods("POST")
	server := httptest.NewServer(r)
	defer server.Close()

	client := NewClient(server.URL, 0)
	order, err := client.CreateOrder(context.Background(), CreateOrderRequest{
		UserID:   "USER_1",
		UserName: "Guest",
		Items:    []domain.CartLine{{DishID: 1, DishName: "Soy Milk", Price: 3.00, Quantity: 2}},
		Note:     "no sugar",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, order.ID)
	assert.Equal(t, "USER_1", received.UserID)
	assert.Equal(t, "no sugar", received.Note)
	require.Len(t, received.Items, 1)
	assert.Equal(t, 2, received.Items[0].Quantity)
}

func TestListMerchantOrders_StatusFilter(t *testing.T) {
	var gotQuery string
	r := mux.NewRouter()
	r.HandleFunc("/api/merchant/orders", func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.Query().Get("status")
		json.NewEncoder(w).Encode([]domain.Order{})
	}).Methods("GET")
	server := httptest.NewServer(r)
	defer server.Close()

	client := NewClient(server.URL, 0)

	_, err := client.ListMerchantOrders(context.Background(), "pending")
	require.NoError(t, err)
	assert.Equal(t, "pending", gotQuery)

	// "all" and empty both mean no filter
	_, err = client.ListMerchantOrders(context.Background(), "all")
	require.NoError(t, err)
	assert.Equal(t, "", gotQuery)
}

func TestTransitionEndpoints(t *testing.T) {
	var paths []string
	r := mux.NewRouter()
	r.PathPrefix("/api/merchant/orders/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		paths = append(paths, req.Method+" "+req.URL.Path)
		json.NewEncoder(w).Encode(domain.Order{})
	})
	server := httptest.NewServer(r)
	defer server.Close()

	client := NewClient(server.URL, 0)
	ctx := context.Background()
	require.NoError(t, client.AcceptOrder(ctx, 5))
	require.NoError(t, client.StartPreparing(ctx, 5))
	require.NoError(t, client.CompleteOrder(ctx, 5))
	require.NoError(t, client.CancelOrder(ctx, 5))
	require.NoError(t, client.UpdateOrderStatus(ctx, 5, domain.StatusAccepted))

	assert.Equal(t, []string{
		"POST /api/merchant/orders/5/accept",
		"POST /api/merchant/orders/5/start",
		"POST /api/merchant/orders/5/complete",
		"POST /api/merchant/orders/5/cancel",
		"PUT /api/merchant/orders/5",
	}, paths)
}

func TestCreateDish_DefaultsInstructionSentinel(t *testing.T) {
	var payload map[string]any
	r := mux.NewRouter()
	r.HandleFunc("/api/merchant/dishes", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
		json.NewEncoder(w).Encode(domain.Dish{ID: 9})
	}).Methods("POST")
	server := httptest.NewServer(r)
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.CreateDish(context.Background(), domain.Dish{Name: "Congee", Price: 5, Description: "plain"})
	require.NoError(t, err)
	assert.Equal(t, domain.NoInstructions, payload["cooking_instructions"])
}

func TestServerError_NonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.ListDishes(context.Background())

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
	assert.Contains(t, serverErr.Hint, "boom")
}

// A tunnel warning page answers 200 with HTML; it must map to ServerError.
func TestServerError_HTMLBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("<!DOCTYPE html><html><body>You are about to visit...</body></html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.ListDishes(context.Background())

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusOK, serverErr.StatusCode)
}

func TestServerError_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"id":`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.GetDish(context.Background(), 1)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
}

func TestNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL, 0)
	_, err := client.ListDishes(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotNil(t, errors.Unwrap(netErr))
}
