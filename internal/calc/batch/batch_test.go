package batch

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Spectra/internal/calc/codes"
	"Spectra/internal/calc/wind"
	"Spectra/internal/observability"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateWind(t *testing.T) {
	in := WindBatchInput{Items: []wind.Input{
		{Speed: 115, Unit: codes.UnitMph, Height: 10, Time: codes.Time3s, ReturnPeriod: codes.Return700y},
		{Speed: 30},
	}}
	res, err := CalculateWind(in, 0)
	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.InDelta(t, 28.36, res.Results[0].Speed10m, 1e-2)
	assert.InDelta(t, 30/1.264/1.52*1.06, res.Results[1].Speed10m, 1e-9)
}

func TestCalculateWindErrors(t *testing.T) {
	tests := []struct {
		name string
		in   WindBatchInput
		max  int
		want error
	}{
		{"empty", WindBatchInput{}, 0, ErrNoItems},
		{"over limit", WindBatchInput{Items: make([]wind.Input, 3)}, 2, ErrTooMany},
		{"invalid item", WindBatchInput{Items: []wind.Input{{Speed: 10}, {Speed: -1}}}, 0, wind.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateWind(tt.in, tt.max)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
		})
	}

	_, err := CalculateWind(WindBatchInput{Items: []wind.Input{{Speed: 10}, {Speed: -1}}}, 0)
	assert.Contains(t, err.Error(), "item 1")
}

func TestHandlerWind(t *testing.T) {
	m := observability.NewMetricsForTesting()
	h := &Handler{MaxItems: 2, Metrics: m}

	rec := httptest.NewRecorder()
	h.Wind(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"items":[{"speed":20},{"speed":25,"height":30}]}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	var res WindBatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res.Results, 2)

	rec = httptest.NewRecorder()
	h.Wind(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"items":[{},{},{}]}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Wind(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Calculations.WithLabelValues("wind_batch")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalculationErrors.WithLabelValues("wind_batch")))
}
