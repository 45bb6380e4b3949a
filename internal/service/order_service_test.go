package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quickbite/quickbite-api/internal/models"
	"github.com/quickbite/quickbite-api/internal/repository"
)

func validOrderRequest() models.OrderRequest {
	// Items 1 (14.99) x2 and 10 (7.49) x1 from the seed catalog
	return models.OrderRequest{
		Items: []models.OrderRequestItem{
			{ItemID: "1", Quantity: 2},
			{ItemID: "10", Quantity: 1},
		},
		CustomerInfo:    models.CustomerInfo{Name: "Ada", Phone: "555-0100"},
		DeliveryAddress: models.DeliveryAddress{Street: "1 Main St", City: "Springfield"},
		TotalAmount:     37.47,
		PaymentMethod:   "card",
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	foodRepo := repository.NewInMemoryFoodRepository()

	tests := []struct {
		name    string
		mutate  func(*models.OrderRequest)
		wantErr error
	}{
		{
			name:    "valid order",
			mutate:  func(r *models.OrderRequest) {},
			wantErr: nil,
		},
		{
			name: "empty items",
			mutate: func(r *models.OrderRequest) {
				r.Items = nil
			},
			wantErr: ErrEmptyOrder,
		},
		{
			name: "zero quantity",
			mutate: func(r *models.OrderRequest) {
				r.Items[0].Quantity = 0
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "unknown item",
			mutate: func(r *models.OrderRequest) {
				r.Items[0].ItemID = "999"
			},
			wantErr: ErrUnknownItem,
		},
		{
			name: "missing customer name",
			mutate: func(r *models.OrderRequest) {
				r.CustomerInfo.Name = ""
			},
			wantErr: ErrMissingCustomer,
		},
		{
			name: "missing delivery city",
			mutate: func(r *models.OrderRequest) {
				r.DeliveryAddress.City = ""
			},
			wantErr: ErrMissingAddress,
		},
		{
			name: "client total disagrees with catalog prices",
			mutate: func(r *models.OrderRequest) {
				r.TotalAmount = 5.00
			},
			wantErr: ErrTotalMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOrderService(foodRepo, repository.NewInMemoryOrderRepository())

			req := validOrderRequest()
			tt.mutate(&req)

			order, err := svc.CreateOrder(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				return
			}

			if order.ID == "" {
				t.Error("expected an order ID to be assigned")
			}
			if order.Status != models.StatusConfirmed {
				t.Errorf("expected status confirmed, got %s", order.Status)
			}
			if len(order.Items) != 2 {
				t.Errorf("expected 2 order lines, got %d", len(order.Items))
			}
			if order.CreatedAt.IsZero() || order.UpdatedAt.IsZero() {
				t.Error("expected timestamps to be set")
			}
		})
	}
}

func TestOrderService_CreateOrder_SnapshotsPrices(t *testing.T) {
	foodRepo := repository.NewInMemoryFoodRepository()
	svc := NewOrderService(foodRepo, repository.NewInMemoryOrderRepository())

	order, err := svc.CreateOrder(context.Background(), validOrderRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Items[0].Price != 14.99 || order.Items[0].Name == "" {
		t.Errorf("expected line to snapshot catalog price and name, got %+v", order.Items[0])
	}
	if order.TotalAmount != 37.47 {
		t.Errorf("expected server-computed total 37.47, got %.2f", order.TotalAmount)
	}
}

type fixedPriceFoodRepo struct {
	items map[string]models.FoodItem
}

func (r *fixedPriceFoodRepo) GetAll(ctx context.Context) ([]models.FoodItem, error) {
	return nil, nil
}

func (r *fixedPriceFoodRepo) GetByID(ctx context.Context, id string) (*models.FoodItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrFoodNotFound
	}
	return &item, nil
}

func (r *fixedPriceFoodRepo) GetByCategory(ctx context.Context, category string) ([]models.FoodItem, error) {
	return nil, nil
}

func TestOrderService_CalculateTotal(t *testing.T) {
	// Checkout property: [{price:100, qty:2}, {price:50, qty:1}] totals 250.00
	foodRepo := &fixedPriceFoodRepo{items: map[string]models.FoodItem{
		"a": {ID: "a", Name: "Feast Platter", Price: 100},
		"b": {ID: "b", Name: "Side Dish", Price: 50},
	}}
	svc := NewOrderService(foodRepo, repository.NewInMemoryOrderRepository())

	total, err := svc.CalculateTotal(context.Background(), []models.OrderRequestItem{
		{ItemID: "a", Quantity: 2},
		{ItemID: "b", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 250.00 {
		t.Errorf("expected total 250.00, got %.2f", total)
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	foodRepo := repository.NewInMemoryFoodRepository()
	svc := NewOrderService(foodRepo, repository.NewInMemoryOrderRepository())

	order, err := svc.CreateOrder(context.Background(), validOrderRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.UpdateOrderStatus(context.Background(), order.ID, models.StatusDelivered)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.StatusDelivered {
		t.Errorf("expected status delivered, got %s", updated.Status)
	}

	if _, err := svc.UpdateOrderStatus(context.Background(), order.ID, "bogus"); !errors.Is(err, repository.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}
