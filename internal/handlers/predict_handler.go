package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quickbite/quickbite-api/internal/estimator"
	"github.com/quickbite/quickbite-api/internal/models"
)

// PredictHandler exposes the delivery-time estimator as a model-serving
// surface.
type PredictHandler struct {
	estimator *estimator.Estimator
	log       *slog.Logger
}

// NewPredictHandler creates a new prediction handler.
func NewPredictHandler(est *estimator.Estimator, log *slog.Logger) *PredictHandler {
	return &PredictHandler{
		estimator: est,
		log:       log,
	}
}

// PredictDeliveryTime handles POST /api/predict/delivery-time.
func (h *PredictHandler) PredictDeliveryTime(w http.ResponseWriter, r *http.Request) {
	var req models.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	estimate, err := h.estimator.Estimate(r.Context(), req)
	if err != nil {
		var validationErr *estimator.ValidationError
		if errors.As(err, &validationErr) {
			WriteError(w, http.StatusBadRequest, validationErr.Error(), h.log)
			return
		}

		h.log.Error("failed to compute estimate", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteSuccess(w, http.StatusOK, estimate, h.log)
}

// PredictBatch handles POST /api/predict/batch. Individual failures are
// reported per item; the batch itself always succeeds.
func (h *PredictHandler) PredictBatch(w http.ResponseWriter, r *http.Request) {
	var req models.BatchEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if len(req.Orders) == 0 {
		WriteError(w, http.StatusBadRequest, "orders: must contain at least one entry", h.log)
		return
	}

	results := h.estimator.EstimateBatch(r.Context(), req.Orders)
	WriteList(w, results, len(results), h.log)
}

// ModelInfo handles GET /api/predict/model-info.
func (h *PredictHandler) ModelInfo(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, estimator.ModelInfo(), h.log)
}
