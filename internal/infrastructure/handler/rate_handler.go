// internal/infrastructure/handler/rate_handler.go
package handler

import (
	"net/http"

	"github.com/damon-houk/listing-currency-service/internal/application/service"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
	"github.com/damon-houk/listing-currency-service/internal/domain/repository"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/logger"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// RateHandler handles HTTP requests for rate maintenance and inspection
type RateHandler struct {
	store     repository.RateStore
	converter *service.Converter
	registry  *registry.Registry
	logger    logger.Logger
}

// NewRateHandler creates a new rate handler
func NewRateHandler(store repository.RateStore, converter *service.Converter, reg *registry.Registry, log logger.Logger) *RateHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &RateHandler{
		store:     store,
		converter: converter,
		registry:  reg,
		logger:    log,
	}
}

// pathPair parses {from} and {to}, answering 400 itself on an unknown code
func (h *RateHandler) pathPair(w http.ResponseWriter, r *http.Request) (entity.CurrencyCode, entity.CurrencyCode, bool) {
	vars := mux.Vars(r)
	requestID := middleware.GetRequestID(r.Context())

	from, err := h.registry.Parse(vars["from"])
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return "", "", false
	}
	to, err := h.registry.Parse(vars["to"])
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return "", "", false
	}
	return from, to, true
}

// ListRates returns every stored rate with converter stats
func (h *RateHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	rates, err := h.store.ListAll(r.Context())
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}
	stats, err := h.converter.Stats(r.Context())
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	sendJSON(w, http.StatusOK, RatesResponse{Rates: rates, Stats: stats})
}

// GetRate returns the exact stored rate for a pair
func (h *RateHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.pathPair(w, r)
	if !ok {
		return
	}

	rate, err := h.store.GetRate(r.Context(), from, to)
	if err != nil {
		sendServiceError(w, h.logger, err, middleware.GetRequestID(r.Context()))
		return
	}

	sendJSON(w, http.StatusOK, rate)
}

// GetEffectiveRate returns the composed rate, direct or through the base currency
func (h *RateHandler) GetEffectiveRate(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.pathPair(w, r)
	if !ok {
		return
	}

	eff, err := h.converter.GetEffectiveRate(r.Context(), from, to)
	if err != nil {
		sendServiceError(w, h.logger, err, middleware.GetRequestID(r.Context()))
		return
	}

	sendJSON(w, http.StatusOK, eff)
}

// UpsertRate stores or overwrites the rate for a pair
func (h *RateHandler) UpsertRate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	from, to, ok := h.pathPair(w, r)
	if !ok {
		return
	}

	var req UpsertRateRequest
	if !decodeBody(w, r, h.logger, requestID, &req) {
		return
	}

	rate, err := h.store.UpsertRate(r.Context(), from, to, req.Rate)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	h.logger.Info("Rate upserted", map[string]interface{}{
		"request_id": requestID,
		"from":       from,
		"to":         to,
		"rate":       rate.Rate.String(),
	})

	sendJSON(w, http.StatusOK, rate)
}

// UpsertBulk applies every item independently and reports rejected ones
func (h *RateHandler) UpsertBulk(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req BulkUpsertRequest
	if !decodeBody(w, r, h.logger, requestID, &req) {
		return
	}
	if len(req.Rates) == 0 {
		sendErrorResponse(w, h.logger, "Invalid input", "rates must not be empty", http.StatusBadRequest, requestID)
		return
	}

	result, err := h.store.UpsertBulk(r.Context(), req.Rates)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	h.logger.Info("Bulk rate upsert", map[string]interface{}{
		"request_id": requestID,
		"updated":    len(result.Updated),
		"failed":     len(result.Failed),
	})

	sendJSON(w, http.StatusOK, result)
}

// DeleteRate removes a pair; deleting an absent pair succeeds
func (h *RateHandler) DeleteRate(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.pathPair(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteRate(r.Context(), from, to); err != nil {
		sendServiceError(w, h.logger, err, middleware.GetRequestID(r.Context()))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SeedRates loads the default rate table when the store is empty
func (h *RateHandler) SeedRates(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	seeded, err := service.SeedDefaultRates(r.Context(), h.store, h.registry, h.logger)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	sendJSON(w, http.StatusOK, SeedResponse{Seeded: seeded})
}

// RegisterRoutes registers the rate handler routes
func (h *RateHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/rates", h.ListRates).Methods("GET")
	router.HandleFunc("/rates/bulk", h.UpsertBulk).Methods("POST")
	router.HandleFunc("/rates/seed", h.SeedRates).Methods("POST")
	router.HandleFunc("/rates/{from}/{to}", h.GetRate).Methods("GET")
	router.HandleFunc("/rates/{from}/{to}", h.UpsertRate).Methods("PUT")
	router.HandleFunc("/rates/{from}/{to}", h.DeleteRate).Methods("DELETE")
	router.HandleFunc("/rates/{from}/{to}/effective", h.GetEffectiveRate).Methods("GET")

	h.logger.Info("Rate routes registered", map[string]interface{}{
		"routes": []string{
			"GET /rates",
			"POST /rates/bulk",
			"POST /rates/seed",
			"GET /rates/{from}/{to}",
			"PUT /rates/{from}/{to}",
			"DELETE /rates/{from}/{to}",
			"GET /rates/{from}/{to}/effective",
		},
	})
}
