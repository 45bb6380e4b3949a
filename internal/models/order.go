package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusPickedUp  OrderStatus = "picked_up"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

var orderStatuses = map[OrderStatus]bool{
	StatusConfirmed: true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusPickedUp:  true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s OrderStatus) bool {
	return orderStatuses[s]
}

// OrderRequest represents an incoming order submission.
type OrderRequest struct {
	Items           []OrderRequestItem `json:"items"`
	CustomerInfo    CustomerInfo       `json:"customerInfo"`
	DeliveryAddress DeliveryAddress    `json:"deliveryAddress"`
	TotalAmount     float64            `json:"totalAmount"`
	PaymentMethod   string             `json:"paymentMethod"`
}

// OrderRequestItem is a single cart line in an order submission.
type OrderRequestItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// CustomerInfo identifies who placed the order.
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// DeliveryAddress is where the order goes.
type DeliveryAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode,omitempty"`
}

// OrderLine is a priced snapshot of a cart line, captured at checkout so
// later catalog changes cannot alter a placed order.
type OrderLine struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order represents a confirmed order.
type Order struct {
	ID              string          `json:"id"`
	Items           []OrderLine     `json:"items"`
	CustomerInfo    CustomerInfo    `json:"customerInfo"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`
	TotalAmount     float64         `json:"totalAmount"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// UpdateStatusRequest is the body of PUT /api/orders/{id}/status.
type UpdateStatusRequest struct {
	Status OrderStatus `json:"status"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPagination computes page metadata for a list of total items.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}
