package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/damon-houk/listing-currency-service/internal/apperrors"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/logger"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error       string           `json:"error"`
	Status      int              `json:"status"`
	Description string           `json:"description,omitempty"`
	Missing     []apperrors.Pair `json:"missing,omitempty"`
	RequestID   string           `json:"request_id,omitempty"`
}

// sendErrorResponse sends a standardized error response
func sendErrorResponse(w http.ResponseWriter, log logger.Logger, message, description string, statusCode int, requestID string) {
	sendError(w, log, ErrorResponse{
		Error:       message,
		Status:      statusCode,
		Description: description,
		RequestID:   requestID,
	})
}

func sendError(w http.ResponseWriter, log logger.Logger, resp ErrorResponse) {
	log.Debug("Sending error response", map[string]interface{}{
		"request_id":  resp.RequestID,
		"status_code": resp.Status,
		"message":     resp.Error,
	})
	sendJSON(w, resp.Status, resp)
}

func sendJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// sendServiceError maps a domain error to its HTTP status
func sendServiceError(w http.ResponseWriter, log logger.Logger, err error, requestID string) {
	resp := ErrorResponse{Description: err.Error(), RequestID: requestID}

	var missing *apperrors.MissingRatesError
	switch {
	case errors.As(err, &missing):
		resp.Error, resp.Status = "Exchange rate not found", http.StatusNotFound
		resp.Missing = missing.Missing
	case errors.Is(err, apperrors.ErrRateNotFound):
		resp.Error, resp.Status = "Exchange rate not found", http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnknownCurrency):
		resp.Error, resp.Status = "Unknown currency", http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidRate):
		resp.Error, resp.Status = "Invalid rate", http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidInput):
		resp.Error, resp.Status = "Invalid input", http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnresolvedCurrency):
		resp.Error, resp.Status = "Currency could not be resolved", http.StatusUnprocessableEntity
	default:
		log.Error("Unexpected service error", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		resp.Error, resp.Status = "Internal server error", http.StatusInternalServerError
		resp.Description = "An unexpected error occurred. Please try again later."
	}

	sendError(w, log, resp)
}

const maxBodyBytes = 1 << 20

// decodeBody parses a JSON request body, answering 400 itself on failure
func decodeBody(w http.ResponseWriter, r *http.Request, log logger.Logger, requestID string, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, log, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return false
	}
	return true
}
