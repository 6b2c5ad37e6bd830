package sheet

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"Spectra/internal/calc/compare"
	"Spectra/internal/observability"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct {
	Logger  *slog.Logger
	Metrics *observability.Metrics
}

// ExportCompare runs a comparison and returns it as an XLSX download.
func (h *Handler) ExportCompare(w http.ResponseWriter, r *http.Request) {
	input := compare.DefaultInput()
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	start := time.Now()
	res, err := compare.Calculate(input)
	if err != nil {
		h.Metrics.Observe("xlsx_export", start, err)
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	err = ExportComparison(&buf, res)
	h.Metrics.Observe("xlsx_export", start, err)
	if err != nil {
		h.logger().Error("xlsx export failed", "error", err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"spectrum.xlsx\"")
	w.Write(buf.Bytes())
}

// ImportWind converts every row of an uploaded workbook (multipart field "file").
func (h *Handler) ImportWind(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	start := time.Now()
	res, err := ImportWind(file)
	h.Metrics.Observe("xlsx_import", start, err)
	if err != nil {
		h.logger().Warn("xlsx import rejected", "error", err)
		http.Error(w, "Invalid file", http.StatusBadRequest)
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
