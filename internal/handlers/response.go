package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/quickbite/quickbite-api/internal/models"
)

// Response is the JSON envelope every API endpoint uses.
type Response struct {
	Success    bool               `json:"success"`
	Data       interface{}        `json:"data,omitempty"`
	Count      *int               `json:"count,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// WriteSuccess writes a {success:true, data} response.
func WriteSuccess(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	writeResponse(w, status, Response{Success: true, Data: data}, logger)
}

// WriteList writes a successful list response with its item count.
func WriteList(w http.ResponseWriter, data interface{}, count int, logger *slog.Logger) {
	writeResponse(w, http.StatusOK, Response{Success: true, Data: data, Count: &count}, logger)
}

// WritePage writes a successful list response with pagination metadata.
func WritePage(w http.ResponseWriter, data interface{}, count int, page models.Pagination, logger *slog.Logger) {
	writeResponse(w, http.StatusOK, Response{Success: true, Data: data, Count: &count, Pagination: &page}, logger)
}

// WriteError writes a {success:false, error} response.
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	writeResponse(w, status, Response{Success: false, Error: message}, logger)
}

func writeResponse(w http.ResponseWriter, status int, resp Response, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}
