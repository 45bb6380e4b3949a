package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/quickbite/quickbite-api/internal/models"
	"github.com/quickbite/quickbite-api/internal/repository"
	"github.com/quickbite/quickbite-api/internal/service"
	"github.com/quickbite/quickbite-api/pkg/logger"
)

func newOrderRouter() *chi.Mux {
	foodRepo := repository.NewInMemoryFoodRepository()
	orderRepo := repository.NewInMemoryOrderRepository()
	svc := service.NewOrderService(foodRepo, orderRepo)
	log := logger.New("error")
	handler := NewOrderHandler(svc, log)

	r := chi.NewRouter()
	r.Post("/api/orders", handler.CreateOrder)
	r.Get("/api/orders", handler.ListOrders)
	r.Get("/api/orders/{id}", handler.GetOrder)
	r.Put("/api/orders/{id}/status", handler.UpdateStatus)
	return r
}

func orderBody() map[string]interface{} {
	return map[string]interface{}{
		"items": []map[string]interface{}{
			{"itemId": "1", "quantity": 2},
		},
		"customerInfo":    map[string]string{"name": "Ada", "phone": "555-0100"},
		"deliveryAddress": map[string]string{"street": "1 Main St", "city": "Springfield"},
		"totalAmount":     29.98,
		"paymentMethod":   "card",
	}
}

func postJSON(t *testing.T, r http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createOrder(t *testing.T, r http.Handler) models.Order {
	t.Helper()

	w := postJSON(t, r, "/api/orders", orderBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool         `json:"success"`
		Data    models.Order `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.Data
}

func TestCreateOrder_Success(t *testing.T) {
	r := newOrderRouter()

	order := createOrder(t, r)
	if order.ID == "" {
		t.Error("expected an order ID")
	}
	if order.Status != models.StatusConfirmed {
		t.Errorf("expected status confirmed, got %s", order.Status)
	}
	if order.TotalAmount != 29.98 {
		t.Errorf("expected total 29.98, got %.2f", order.TotalAmount)
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	r := newOrderRouter()

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{
			name: "empty items",
			mutate: func(b map[string]interface{}) {
				b["items"] = []map[string]interface{}{}
			},
		},
		{
			name: "missing customer info",
			mutate: func(b map[string]interface{}) {
				b["customerInfo"] = map[string]string{}
			},
		},
		{
			name: "missing delivery address",
			mutate: func(b map[string]interface{}) {
				b["deliveryAddress"] = map[string]string{}
			},
		},
		{
			name: "total mismatch",
			mutate: func(b map[string]interface{}) {
				b["totalAmount"] = 1.00
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := orderBody()
			tt.mutate(body)

			w := postJSON(t, r, "/api/orders", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			resp := decodeResponse(t, w)
			if resp.Success {
				t.Error("expected success to be false")
			}
		})
	}
}

func TestGetOrder(t *testing.T) {
	r := newOrderRouter()
	order := createOrder(t, r)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+order.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders/ORD-9999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestUpdateStatus(t *testing.T) {
	r := newOrderRouter()
	order := createOrder(t, r)

	// Bogus enum value is rejected
	data, _ := json.Marshal(map[string]string{"status": "bogus"})
	req := httptest.NewRequest(http.MethodPut, "/api/orders/"+order.ID+"/status", bytes.NewReader(data))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	// Valid value is applied
	data, _ = json.Marshal(map[string]string{"status": "delivered"})
	req = httptest.NewRequest(http.MethodPut, "/api/orders/"+order.ID+"/status", bytes.NewReader(data))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Data models.Order `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Status != models.StatusDelivered {
		t.Errorf("expected status delivered, got %s", resp.Data.Status)
	}
}

func TestListOrders_Pagination(t *testing.T) {
	r := newOrderRouter()

	for i := 0; i < 25; i++ {
		createOrder(t, r)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/orders?page=3&limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Success    bool              `json:"success"`
		Data       []models.Order    `json:"data"`
		Count      int               `json:"count"`
		Pagination models.Pagination `json:"pagination"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Data) != 5 {
		t.Errorf("expected 5 orders on page 3, got %d", len(resp.Data))
	}
	if resp.Pagination.HasNext {
		t.Error("expected hasNext to be false on the last page")
	}
	if !resp.Pagination.HasPrev {
		t.Error("expected hasPrev to be true on page 3")
	}
	if resp.Pagination.Total != 25 {
		t.Errorf("expected total 25, got %d", resp.Pagination.Total)
	}
}

func TestListOrders_DefaultPaging(t *testing.T) {
	r := newOrderRouter()

	for i := 0; i < 3; i++ {
		createOrder(t, r)
	}

	// Bad page/limit values fall back to defaults
	for _, query := range []string{"", "?page=0&limit=-5", "?page=abc"} {
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/orders%s", query), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("query %q: expected status 200, got %d", query, w.Code)
		}
	}
}
