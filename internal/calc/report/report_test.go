package report

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Spectra/internal/calc/codes"
	"Spectra/internal/calc/wind"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportDate = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestBuildCompare(t *testing.T) {
	doc, err := build(Input{Kind: KindCompare, Project: "Tower A", Author: "QA"}, reportDate)
	require.NoError(t, err)

	assert.Equal(t, "Response Spectrum Comparison", doc.title)
	assert.Equal(t, []string{"Project: Tower A", "Author: QA", "Date: 2026-03-14"}, doc.header)
	assert.Contains(t, doc.summary, "Alpha Max: 0.08   Tg: 0.35s")
	assert.Contains(t, doc.summary[1], "intensity 7 (0.10g), site II, group 1")
	assert.Len(t, doc.columns, 3)
	assert.Len(t, doc.rows, 13)
	assert.Equal(t, "0.01", doc.rows[0].cells[0])
	assert.Equal(t, "6.00", doc.rows[12].cells[0])
}

func TestBuildWind(t *testing.T) {
	in := Input{Kind: KindWind, Title: "Site wind", Wind: &wind.Input{
		Speed: 115, Unit: codes.UnitMph, Height: 10, Time: codes.Time3s, ReturnPeriod: codes.Return700y,
	}}
	doc, err := build(in, reportDate)
	require.NoError(t, err)

	assert.Equal(t, "Site wind", doc.title)
	require.Len(t, doc.summary, 7)
	assert.Equal(t, "Unit conversion: 115.00 mph = 51.41 m/s", doc.summary[0])
	assert.Equal(t, "Basic wind pressure: 0.503 kN/m", doc.summary[6])
	assert.Empty(t, doc.rows)
}

func TestBuildErrors(t *testing.T) {
	_, err := build(Input{Kind: "beam"}, reportDate)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = build(Input{Kind: KindWind}, reportDate)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = build(Input{Kind: KindWind, Wind: &wind.Input{Speed: -1}}, reportDate)
	assert.True(t, errors.Is(err, wind.ErrInvalidInput))
}

func TestGeneratorWrite(t *testing.T) {
	g := NewGenerator(clockwork.NewFakeClockAt(reportDate))

	var buf bytes.Buffer
	require.NoError(t, g.Write(&buf, Input{Kind: KindCompare, Notes: "Preliminary."}))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestHandlerGenerate(t *testing.T) {
	h := &Handler{Generator: NewGenerator(clockwork.NewFakeClockAt(reportDate))}

	rec := httptest.NewRecorder()
	body := `{"kind":"wind","wind":{"speed":40,"unit":"m/s","height":20,"time":"10min","return_period":"300y"}}`
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "wind-report.pdf")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))

	rec = httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"kind":"nope"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
