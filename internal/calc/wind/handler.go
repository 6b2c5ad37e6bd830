package wind

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

type response struct {
	Result
	Process []string `json:"process"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	start := time.Now()
	res, err := Calculate(input)
	h.Metrics.Observe("wind", start, err)
	if err != nil {
		h.logger().Warn("wind conversion rejected", "error", err)
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	h.countFallbacks(input)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response{Result: res, Process: res.Lines()})
}

func (h *Handler) countFallbacks(in Input) {
	if in.Time != "" {
		if _, ok := codes.LookupTimeFactor(in.Time); !ok {
			h.Metrics.Fallback("time_factor")
		}
	}
	if in.ReturnPeriod != "" {
		if _, ok := codes.LookupReturnPeriodFactor(in.ReturnPeriod); !ok {
			h.Metrics.Fallback("return_period_factor")
		}
	}
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
