package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"Spectra/internal/observability"
)

type Handler struct {
	Generator *Generator
	Logger    *slog.Logger
	Metrics   *observability.Metrics
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	gen := h.Generator
	if gen == nil {
		gen = NewGenerator(nil)
	}

	// Buffer so a failed calculation can still produce a plain error response.
	var buf bytes.Buffer
	start := time.Now()
	err := gen.Write(&buf, input)
	h.Metrics.Observe("report", start, err)
	if err != nil {
		h.logger().Warn("report generation failed", "kind", input.Kind, "error", err)
		http.Error(w, "Report generation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s-report.pdf\"", input.Kind))
	w.Write(buf.Bytes())
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
