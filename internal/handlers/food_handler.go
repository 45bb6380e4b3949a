package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quickbite/quickbite-api/internal/repository"
	"github.com/quickbite/quickbite-api/internal/service"
)

// FoodHandler handles catalog HTTP requests.
type FoodHandler struct {
	service *service.FoodService
	logger  *slog.Logger
}

// NewFoodHandler creates a new food handler.
func NewFoodHandler(service *service.FoodService, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		logger:  logger,
	}
}

// ListFood handles GET /api/food.
func (h *FoodHandler) ListFood(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListFood(r.Context())
	if err != nil {
		h.logger.Error("failed to list food items", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteList(w, items, len(items), h.logger)
}

// GetFood handles GET /api/food/{id}.
func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	item, err := h.service.GetFood(r.Context(), id)
	if err != nil {
		if err == repository.ErrFoodNotFound {
			h.logger.Info("food item not found", "id", id)
			WriteError(w, http.StatusNotFound, "Food item not found", h.logger)
			return
		}

		h.logger.Error("failed to get food item", "id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteSuccess(w, http.StatusOK, item, h.logger)
}

// ListByCategory handles GET /api/food/category/{category}.
func (h *FoodHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	items, err := h.service.ListFoodByCategory(r.Context(), category)
	if err != nil {
		h.logger.Error("failed to list food by category", "category", category, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteList(w, items, len(items), h.logger)
}
