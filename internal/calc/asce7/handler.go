package asce7

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
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
	h.Metrics.Observe("asce7", start, err)
	if err != nil {
		h.logger().Warn("asce7 calculation rejected", "site_class", input.SiteClass, "error", err)
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

type siteCoefficients struct {
	Fa float64 `json:"fa"`
	Fv float64 `json:"fv"`
}

// SiteCoefficients serves Fa and Fv for ?ss=&s1=&site_class=.
func (h *Handler) SiteCoefficients(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ss, err1 := strconv.ParseFloat(q.Get("ss"), 64)
	s1, err2 := strconv.ParseFloat(q.Get("s1"), 64)
	if err1 != nil || err2 != nil {
		http.Error(w, "ss and s1 must be numbers", http.StatusBadRequest)
		return
	}

	fa, fv, err := FaFv(ss, s1, codes.SiteClass(q.Get("site_class")))
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(siteCoefficients{Fa: fa, Fv: fv})
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
