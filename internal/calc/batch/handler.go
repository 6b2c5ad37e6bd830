package batch

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"Spectra/internal/observability"
)

type Handler struct {
	MaxItems int
	Logger   *slog.Logger
	Metrics  *observability.Metrics
}

func (h *Handler) Wind(w http.ResponseWriter, r *http.Request) {
	var input WindBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	start := time.Now()
	res, err := CalculateWind(input, h.MaxItems)
	h.Metrics.Observe("wind_batch", start, err)
	if err != nil {
		h.logger().Warn("wind batch rejected", "items", len(input.Items), "error", err)
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
