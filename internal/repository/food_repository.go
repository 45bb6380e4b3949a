package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/quickbite/quickbite-api/internal/models"
)

var (
	ErrFoodNotFound  = errors.New("food item not found")
	ErrOrderNotFound = errors.New("order not found")
)

// FoodRepository defines read access to the menu catalog.
type FoodRepository interface {
	GetAll(ctx context.Context) ([]models.FoodItem, error)
	GetByID(ctx context.Context, id string) (*models.FoodItem, error)
	GetByCategory(ctx context.Context, category string) ([]models.FoodItem, error)
}

// InMemoryFoodRepository implements FoodRepository with a fixed seed catalog.
type InMemoryFoodRepository struct {
	items map[string]models.FoodItem
}

// NewInMemoryFoodRepository creates the catalog with its seed data.
func NewInMemoryFoodRepository() *InMemoryFoodRepository {
	items := map[string]models.FoodItem{
		"1":  {ID: "1", Name: "Margherita Pizza", Description: "Tomato, mozzarella and fresh basil", Price: 14.99, Image: "https://images.quickbite.example/margherita.jpg", Rating: 4.6, Category: "Pizza", PreparationTime: 18},
		"2":  {ID: "2", Name: "Pepperoni Pizza", Description: "Loaded with pepperoni and extra cheese", Price: 16.99, Image: "https://images.quickbite.example/pepperoni.jpg", Rating: 4.7, Category: "Pizza", PreparationTime: 18},
		"3":  {ID: "3", Name: "Veggie Pizza", Description: "Peppers, onions, olives and mushrooms", Price: 15.49, Image: "https://images.quickbite.example/veggie-pizza.jpg", Rating: 4.3, Category: "Pizza", PreparationTime: 17},
		"4":  {ID: "4", Name: "Classic Burger", Description: "Beef patty, cheddar, lettuce and house sauce", Price: 13.99, Image: "https://images.quickbite.example/classic-burger.jpg", Rating: 4.5, Category: "Burger", PreparationTime: 12},
		"5":  {ID: "5", Name: "Double Bacon Burger", Description: "Two patties, crispy bacon, smoked cheese", Price: 17.49, Image: "https://images.quickbite.example/bacon-burger.jpg", Rating: 4.8, Category: "Burger", PreparationTime: 14},
		"6":  {ID: "6", Name: "Caesar Salad", Description: "Romaine, parmesan, croutons, caesar dressing", Price: 8.99, Image: "https://images.quickbite.example/caesar.jpg", Rating: 4.2, Category: "Salad", PreparationTime: 8},
		"7":  {ID: "7", Name: "Greek Salad", Description: "Feta, olives, cucumber and tomatoes", Price: 9.49, Image: "https://images.quickbite.example/greek.jpg", Rating: 4.4, Category: "Salad", PreparationTime: 8},
		"8":  {ID: "8", Name: "Chicken Waffle", Description: "Fried chicken on a Belgian waffle with maple syrup", Price: 12.99, Image: "https://images.quickbite.example/chicken-waffle.jpg", Rating: 4.6, Category: "Waffle", PreparationTime: 15},
		"9":  {ID: "9", Name: "Chocolate Waffle", Description: "Belgian waffle with dark chocolate and cream", Price: 10.99, Image: "https://images.quickbite.example/choc-waffle.jpg", Rating: 4.5, Category: "Waffle", PreparationTime: 10},
		"10": {ID: "10", Name: "Tiramisu", Description: "Espresso-soaked ladyfingers and mascarpone", Price: 7.49, Image: "https://images.quickbite.example/tiramisu.jpg", Rating: 4.9, Category: "Dessert", PreparationTime: 5},
	}

	return &InMemoryFoodRepository{items: items}
}

// GetAll returns the full catalog, ordered by item ID for stable output.
func (r *InMemoryFoodRepository) GetAll(ctx context.Context) ([]models.FoodItem, error) {
	items := make([]models.FoodItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sortFoodItems(items)
	return items, nil
}

// GetByID returns a single item by its ID.
func (r *InMemoryFoodRepository) GetByID(ctx context.Context, id string) (*models.FoodItem, error) {
	item, exists := r.items[id]
	if !exists {
		return nil, ErrFoodNotFound
	}
	return &item, nil
}

// GetByCategory returns items whose category matches case-insensitively.
// An unknown category yields an empty slice, not an error.
func (r *InMemoryFoodRepository) GetByCategory(ctx context.Context, category string) ([]models.FoodItem, error) {
	items := make([]models.FoodItem, 0)
	for _, item := range r.items {
		if strings.EqualFold(item.Category, category) {
			items = append(items, item)
		}
	}
	sortFoodItems(items)
	return items, nil
}

func sortFoodItems(items []models.FoodItem) {
	sort.Slice(items, func(i, j int) bool {
		if len(items[i].ID) != len(items[j].ID) {
			return len(items[i].ID) < len(items[j].ID)
		}
		return items[i].ID < items[j].ID
	})
}
