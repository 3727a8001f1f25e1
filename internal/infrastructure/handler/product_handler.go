package handler

import (
	"net/http"

	"github.com/damon-houk/listing-currency-service/internal/application/service"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/logger"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// ProductHandler resolves catalog records into display-currency prices
type ProductHandler struct {
	resolver *service.ProductResolver
	registry *registry.Registry
	logger   logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(resolver *service.ProductResolver, reg *registry.Registry, log logger.Logger) *ProductHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ProductHandler{resolver: resolver, registry: reg, logger: log}
}

// Resolve detects a record's price and converts it into each target
func (h *ProductHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req ResolveProductRequest
	if !decodeBody(w, r, h.logger, requestID, &req) {
		return
	}

	targets := make([]entity.CurrencyCode, 0, len(req.Targets))
	for _, raw := range req.Targets {
		code, err := h.registry.Parse(raw)
		if err != nil {
			sendServiceError(w, h.logger, err, requestID)
			return
		}
		targets = append(targets, code)
	}

	prices, err := h.resolver.ResolveAll(r.Context(), req.Record, targets)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	sendJSON(w, http.StatusOK, ResolveProductResponse{Prices: prices})
}

// RegisterRoutes registers the product handler routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/products/resolve", h.Resolve).Methods("POST")

	h.logger.Info("Product routes registered", map[string]interface{}{
		"routes": []string{"POST /products/resolve"},
	})
}
