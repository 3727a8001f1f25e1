// Package handler internal/infrastructure/handler/conversion_handler.go
package handler

import (
	"net/http"

	"github.com/damon-houk/listing-currency-service/internal/application/service"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/logger"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// ConversionHandler handles HTTP requests for currency conversion
type ConversionHandler struct {
	converter *service.Converter
	registry  *registry.Registry
	logger    logger.Logger
}

// NewConversionHandler creates a new conversion handler
func NewConversionHandler(converter *service.Converter, reg *registry.Registry, log logger.Logger) *ConversionHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ConversionHandler{
		converter: converter,
		registry:  reg,
		logger:    log,
	}
}

// Convert handles a single conversion
func (h *ConversionHandler) Convert(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req ConvertRequest
	if !decodeBody(w, r, h.logger, requestID, &req) {
		return
	}

	from, err := h.registry.Parse(req.From)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}
	to, err := h.registry.Parse(req.To)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	result, err := h.converter.Convert(r.Context(), req.Amount, from, to)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	sendJSON(w, http.StatusOK, result)
}

// ConvertBulk converts many amounts over one rate path
func (h *ConversionHandler) ConvertBulk(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req ConvertBulkRequest
	if !decodeBody(w, r, h.logger, requestID, &req) {
		return
	}

	from, err := h.registry.Parse(req.From)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}
	to, err := h.registry.Parse(req.To)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	results, err := h.converter.ConvertBulk(r.Context(), req.Amounts, from, to)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	sendJSON(w, http.StatusOK, ConvertBulkResponse{Results: results})
}

// RegisterRoutes registers the conversion handler routes
func (h *ConversionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/convert", h.Convert).Methods("POST")
	router.HandleFunc("/convert/bulk", h.ConvertBulk).Methods("POST")

	h.logger.Info("Conversion routes registered", map[string]interface{}{
		"routes": []string{
			"POST /convert",
			"POST /convert/bulk",
		},
	})
}
