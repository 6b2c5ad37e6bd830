package gb50011

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"Spectra/internal/calc/codes"
	"Spectra/internal/observability"
)

type Handler struct {
	Logger  *slog.Logger
	Metrics *observability.Metrics
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	start := time.Now()
	res, err := Calculate(input)
	h.Metrics.Observe("gb50011", start, err)
	if err != nil {
		h.logger().Warn("gb50011 calculation rejected", "error", err)
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	if res.AlphaMaxFallback {
		h.Metrics.Fallback("alpha_max")
	}
	if res.TgFallback {
		h.Metrics.Fallback("tg")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

type lookupResult struct {
	AlphaMax float64 `json:"alpha_max"`
	Tg       float64 `json:"tg"`
}

// Lookup resolves α_max and Tg from query parameters without generating a curve.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res := lookupResult{
		AlphaMax: codes.AlphaMax(codes.Intensity(q.Get("intensity"))),
		Tg:       codes.Tg(codes.SiteCategory(q.Get("site_category")), codes.EarthquakeGroup(q.Get("earthquake_group"))),
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
