package gb50011

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"Spectra/internal/observability"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerCalc(t *testing.T) {
	m := observability.NewMetricsForTesting()
	h := &Handler{Metrics: m}

	body := `{"intensity":"7度(0.15g)","site_category":"IV","earthquake_group":"第三组"}`
	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 0.12, res.AlphaMax)
	assert.Equal(t, 0.90, res.Tg)
	assert.Len(t, res.Curve.Ordinates, 600)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Calculations.WithLabelValues("gb50011")))
}

func TestHandlerCalcCountsFallbacks(t *testing.T) {
	m := observability.NewMetricsForTesting()
	h := &Handler{Metrics: m}

	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"intensity":"5度"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TableFallbacks.WithLabelValues("alpha_max")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TableFallbacks.WithLabelValues("tg")))
}

func TestHandlerCalcErrors(t *testing.T) {
	h := &Handler{}

	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request payload")

	rec = httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"damping":1.5}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Calculation error")
}

func TestHandlerLookup(t *testing.T) {
	h := &Handler{}
	q := url.Values{}
	q.Set("intensity", "9度(0.40g)")
	q.Set("site_category", "I0")
	q.Set("earthquake_group", "第二组")

	rec := httptest.NewRecorder()
	h.Lookup(rec, httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 0.32, res["alpha_max"])
	assert.Equal(t, 0.25, res["tg"])
}
