package models

// FoodItem represents a menu item available for order.
// The catalog is seeded at startup and never mutated.
type FoodItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Image           string  `json:"image"`
	Rating          float64 `json:"rating"` // 0 to 5
	Category        string  `json:"category"`
	PreparationTime int     `json:"preparationTime"` // minutes
}
