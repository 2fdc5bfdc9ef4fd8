// Package analytics exposes the metric engine over HTTP.
package analytics

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/grovemarket/marketplace-manager/internal/analytics"
	"github.com/grovemarket/marketplace-manager/internal/auth"
	"github.com/grovemarket/marketplace-manager/internal/dto"
	"github.com/grovemarket/marketplace-manager/internal/entity"
)

// Server handles analytics requests.
type Server struct {
	engine *analytics.Service
}

// New creates a new analytics server.
func New(engine *analytics.Service) *Server {
	return &Server{
		engine: engine,
	}
}

// GetAdminAnalytics serves storewide metrics for admin dashboards.
func (s *Server) GetAdminAnalytics(w http.ResponseWriter, r *http.Request) {
	s.serveMetric(w, r, nil)
}

// GetSellerAnalytics serves metrics scoped to the authenticated seller.
// An explicit sellerId query param is accepted but must match the token's
// seller claim.
func (s *Server) GetSellerAnalytics(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := auth.SellerIDFromContext(r.Context())
	if !ok {
		respondError(w, "missing seller identity", http.StatusUnauthorized)
		return
	}

	if raw := r.URL.Query().Get("sellerId"); raw != "" {
		requested, err := strconv.Atoi(raw)
		if err != nil || requested <= 0 {
			respondError(w, "sellerId must be a positive integer", http.StatusBadRequest)
			return
		}
		if requested != sellerID {
			respondError(w, "sellerId does not match token", http.StatusUnauthorized)
			return
		}
	}

	s.serveMetric(w, r, &sellerID)
}

func (s *Server) serveMetric(w http.ResponseWriter, r *http.Request, sellerID *int) {
	ctx := r.Context()

	q := entity.AnalyticsQuery{
		MetricType:     entity.MetricType(r.URL.Query().Get("type")),
		StartMonthYear: r.URL.Query().Get("startMonthYear"),
		EndMonthYear:   r.URL.Query().Get("endMonthYear"),
		SellerID:       sellerID,
	}

	if _, err := govalidator.ValidateStruct(q); err != nil {
		slog.Default().ErrorContext(ctx, "validation analytics request failed",
			slog.String("err", err.Error()),
		)
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	payload, err := s.engine.Compute(ctx, q)
	if err != nil {
		if analytics.IsClientError(err) {
			respondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Default().ErrorContext(ctx, "can't compute metric",
			slog.String("metricType", string(q.MetricType)),
			slog.String("err", err.Error()),
		)
		respondError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := dto.ConvertMetricPayload(q.MetricType, payload)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Default().ErrorContext(ctx, "can't encode metric response",
			slog.String("err", err.Error()),
		)
	}
}

func respondError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
