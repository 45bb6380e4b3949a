package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/quickbite/quickbite-api/internal/models"
)

const (
	redisOrderKeyPrefix = "quickbite:order:"
	redisOrderSeqKey    = "quickbite:orders:seq"
	redisOrderIndexKey  = "quickbite:orders:index"
)

// RedisOrderRepository implements OrderRepository on Redis. Orders are
// stored as JSON values with an RPUSH-maintained index list for
// creation-order pagination, and the ID counter uses INCR. No TTL is
// applied; retention matches the in-memory store.
type RedisOrderRepository struct {
	client *redis.Client
}

// NewRedisOrderRepository connects to Redis and verifies the connection.
func NewRedisOrderRepository(ctx context.Context, addr string) (*RedisOrderRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &RedisOrderRepository{client: client}, nil
}

// Close releases the underlying connection pool.
func (r *RedisOrderRepository) Close() error {
	return r.client.Close()
}

// Create assigns the next counter-derived ID and stores the order.
func (r *RedisOrderRepository) Create(ctx context.Context, order *models.Order) error {
	seq, err := r.client.Incr(ctx, redisOrderSeqKey).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate order id: %w", err)
	}

	order.ID = fmt.Sprintf("ORD-%d", orderIDBase+seq)
	order.Status = models.StatusConfirmed
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	if err := r.set(ctx, order); err != nil {
		return err
	}
	if err := r.client.RPush(ctx, redisOrderIndexKey, order.ID).Err(); err != nil {
		return fmt.Errorf("failed to index order %s: %w", order.ID, err)
	}
	return nil
}

// GetByID returns the order or ErrOrderNotFound.
func (r *RedisOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	data, err := r.client.Get(ctx, redisOrderKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", id, err)
	}

	var order models.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order %s: %w", id, err)
	}
	return &order, nil
}

// UpdateStatus loads, mutates and rewrites the order. Enum membership is
// the only validation, matching the in-memory store.
func (r *RedisOrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	order, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	if err := r.set(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// List pages through the index list in creation order.
func (r *RedisOrderRepository) List(ctx context.Context, page, limit int) ([]models.Order, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}

	total64, err := r.client.LLen(ctx, redisOrderIndexKey).Result()
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to count orders: %w", err)
	}
	total := int(total64)

	start := (page - 1) * limit
	end := start + limit - 1

	orders := make([]models.Order, 0, limit)
	if start < total {
		ids, err := r.client.LRange(ctx, redisOrderIndexKey, int64(start), int64(end)).Result()
		if err != nil {
			return nil, models.Pagination{}, fmt.Errorf("failed to page orders: %w", err)
		}
		for _, id := range ids {
			order, err := r.GetByID(ctx, id)
			if err != nil {
				return nil, models.Pagination{}, err
			}
			orders = append(orders, *order)
		}
	}

	return orders, models.NewPagination(page, limit, total), nil
}

func (r *RedisOrderRepository) set(ctx context.Context, order *models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode order %s: %w", order.ID, err)
	}
	if err := r.client.Set(ctx, redisOrderKeyPrefix+order.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store order %s: %w", order.ID, err)
	}
	return nil
}
