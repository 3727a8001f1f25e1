package handler

import (
	"net/http"

	"github.com/damon-houk/listing-currency-service/internal/application/service"
	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/logger"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// DetectionHandler exposes currency detection over HTTP
type DetectionHandler struct {
	detector *service.Detector
	logger   logger.Logger
}

// NewDetectionHandler creates a new detection handler
func NewDetectionHandler(detector *service.Detector, log logger.Logger) *DetectionHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &DetectionHandler{detector: detector, logger: log}
}

func (h *DetectionHandler) detectText(detect func(string) (entity.DetectionResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetRequestID(r.Context())

		var req DetectTextRequest
		if !decodeBody(w, r, h.logger, requestID, &req) {
			return
		}

		result, err := detect(req.Text)
		if err != nil {
			sendServiceError(w, h.logger, err, requestID)
			return
		}
		sendJSON(w, http.StatusOK, result)
	}
}

// DetectProduct runs record detection
func (h *DetectionHandler) DetectProduct(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req DetectProductRequest
	if !decodeBody(w, r, h.logger, requestID, &req) {
		return
	}

	result, err := h.detector.DetectFromProductRecord(req.Record)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}
	sendJSON(w, http.StatusOK, result)
}

// RegisterRoutes registers the detection handler routes
func (h *DetectionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/detect/price", h.detectText(h.detector.DetectFromPriceText)).Methods("POST")
	router.HandleFunc("/detect/country", h.detectText(h.detector.DetectFromCountryText)).Methods("POST")
	router.HandleFunc("/detect/text", h.detectText(h.detector.DetectFromText)).Methods("POST")
	router.HandleFunc("/detect/product", h.DetectProduct).Methods("POST")

	h.logger.Info("Detection routes registered", map[string]interface{}{
		"routes": []string{
			"POST /detect/price",
			"POST /detect/country",
			"POST /detect/text",
			"POST /detect/product",
		},
	})
}
