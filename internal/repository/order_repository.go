package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/quickbite/quickbite-api/internal/models"
)

var ErrInvalidStatus = errors.New("invalid order status")

const defaultPageLimit = 10

// OrderRepository defines access to the order store. Implementations must
// be safe for concurrent use; the HTTP layer calls them from independent
// request goroutines.
type OrderRepository interface {
	// Create assigns the order its ID, confirmed status and timestamps,
	// then appends it to the store.
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	// UpdateStatus sets a new status. Only enum membership is checked:
	// any status may follow any other, including leaving delivered or
	// cancelled. That permissiveness is intentional and matches the
	// source system.
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
	// List returns one page of orders in creation order.
	List(ctx context.Context, page, limit int) ([]models.Order, models.Pagination, error)
}

const orderIDBase = 1000

// InMemoryOrderRepository implements OrderRepository with a mutex-guarded
// map and a monotonic counter. Orders are never deleted.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
	ids    []string // creation order, for pagination
	nextID int64
}

// NewInMemoryOrderRepository creates an empty in-memory order store.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[string]*models.Order),
		nextID: orderIDBase,
	}
}

// Create assigns the next counter-derived ID and appends the order.
func (r *InMemoryOrderRepository) Create(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	order.ID = fmt.Sprintf("ORD-%d", r.nextID)
	order.Status = models.StatusConfirmed
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	stored := *order
	r.orders[order.ID] = &stored
	r.ids = append(r.ids, order.ID)
	return nil
}

// GetByID returns a copy of the order or ErrOrderNotFound.
func (r *InMemoryOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[id]
	if !exists {
		return nil, ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

// UpdateStatus sets the order status and bumps UpdatedAt.
func (r *InMemoryOrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order, exists := r.orders[id]
	if !exists {
		return nil, ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now().UTC()

	copied := *order
	return &copied, nil
}

// List returns the requested page in creation order.
func (r *InMemoryOrderRepository) List(ctx context.Context, page, limit int) ([]models.Order, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.ids)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	orders := make([]models.Order, 0, end-start)
	for _, id := range r.ids[start:end] {
		orders = append(orders, *r.orders[id])
	}

	return orders, models.NewPagination(page, limit, total), nil
}
