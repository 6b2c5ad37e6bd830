package compare

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"Spectra/internal/observability"
)

type Handler struct {
	Logger  *slog.Logger
	Metrics *observability.Metrics
}

// Calc compares both spectra. Fields missing from the body keep their
// DefaultInput values.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	input := DefaultInput()
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	start := time.Now()
	res, err := Calculate(input)
	h.Metrics.Observe("compare", start, err)
	if err != nil {
		h.logger().Warn("comparison rejected", "error", err)
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	if res.China.AlphaMaxFallback {
		h.Metrics.Fallback("alpha_max")
	}
	if res.China.TgFallback {
		h.Metrics.Fallback("tg")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Defaults serves the initial comparison input.
func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DefaultInput())
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
