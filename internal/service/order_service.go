package service

import (
	"context"
	"errors"
	"math"

	"github.com/quickbite/quickbite-api/internal/models"
	"github.com/quickbite/quickbite-api/internal/repository"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrUnknownItem     = errors.New("unknown food item")
	ErrMissingCustomer = errors.New("customer info is required")
	ErrMissingAddress  = errors.New("delivery address is required")
	ErrTotalMismatch   = errors.New("total amount does not match item prices")
)

// totalTolerance absorbs float formatting noise when comparing the
// client-submitted total against the server-computed one.
const totalTolerance = 0.005

// OrderService handles order submission and lifecycle.
type OrderService struct {
	foodRepo  repository.FoodRepository
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(foodRepo repository.FoodRepository, orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{
		foodRepo:  foodRepo,
		orderRepo: orderRepo,
	}
}

// CreateOrder validates the submission, snapshots the cart lines at
// current catalog prices, recomputes the total server-side and appends
// the order. The client-submitted total is checked against the computed
// one rather than trusted.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if req.CustomerInfo.Name == "" || req.CustomerInfo.Phone == "" {
		return nil, ErrMissingCustomer
	}
	if req.DeliveryAddress.Street == "" || req.DeliveryAddress.City == "" {
		return nil, ErrMissingAddress
	}

	lines := make([]models.OrderLine, 0, len(req.Items))
	total := 0.0
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		food, err := s.foodRepo.GetByID(ctx, item.ItemID)
		if err != nil {
			return nil, ErrUnknownItem
		}

		lines = append(lines, models.OrderLine{
			ItemID:   food.ID,
			Name:     food.Name,
			Price:    food.Price,
			Quantity: item.Quantity,
		})
		total += food.Price * float64(item.Quantity)
	}
	total = roundCents(total)

	if math.Abs(total-req.TotalAmount) > totalTolerance {
		return nil, ErrTotalMismatch
	}

	order := &models.Order{
		Items:           lines,
		CustomerInfo:    req.CustomerInfo,
		DeliveryAddress: req.DeliveryAddress,
		TotalAmount:     total,
		PaymentMethod:   req.PaymentMethod,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder returns an order by ID.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// UpdateOrderStatus moves an order to a new status.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	return s.orderRepo.UpdateStatus(ctx, id, status)
}

// ListOrders returns one page of orders with pagination metadata.
func (s *OrderService) ListOrders(ctx context.Context, page, limit int) ([]models.Order, models.Pagination, error) {
	return s.orderRepo.List(ctx, page, limit)
}

// CalculateTotal computes the checkout total for a set of cart lines at
// current catalog prices, rounded to cents.
func (s *OrderService) CalculateTotal(ctx context.Context, items []models.OrderRequestItem) (float64, error) {
	total := 0.0
	for _, item := range items {
		if item.Quantity <= 0 {
			return 0, ErrInvalidQuantity
		}
		food, err := s.foodRepo.GetByID(ctx, item.ItemID)
		if err != nil {
			return 0, ErrUnknownItem
		}
		total += food.Price * float64(item.Quantity)
	}
	return roundCents(total), nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
