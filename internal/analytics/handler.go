package analytics

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type Handler struct {
	service AnalyticsService
	logger  *zap.SugaredLogger
}

func NewHandler(service AnalyticsService, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetStats - GET /stats?top=N
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	topN := 5 // По умолчанию
	if topParam := r.URL.Query().Get("top"); topParam != "" {
		n, err := strconv.Atoi(topParam)
		if err != nil || n < 0 {
			http.Error(w, "top must be a non-negative integer", http.StatusBadRequest)
			return
		}
		topN = n
	}

	stats, err := h.service.GetStats(r.Context(), topN)
	if err != nil {
		h.logger.Errorf("Failed to get cart stats: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if stats.TopItems == nil {
		stats.TopItems = []ItemCount{} // Пустой массив вместо null
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Errorf("Failed to encode response: %v", err)
	}
}
