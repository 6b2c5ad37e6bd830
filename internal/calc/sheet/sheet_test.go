package sheet

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"Spectra/internal/calc/compare"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestExportComparison(t *testing.T) {
	res, err := compare.Calculate(compare.DefaultInput())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportComparison(&buf, res))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SpectrumSheet)
	require.NoError(t, err)
	require.Len(t, rows, 601)
	assert.Equal(t, "Period T (s)", rows[0][0])
	assert.Equal(t, "US ASCE7-16 (R=5)", rows[0][2])

	first, err := strconv.ParseFloat(rows[1][0], 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, first, 1e-9)

	params, err := f.GetRows(ParametersSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Parameter", "Value"}, params[0])
	assert.Equal(t, "Alpha Max", params[2][0])
	assert.Equal(t, "0.08", params[2][1])
}

func TestImportWind(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"speed", "unit", "height", "time", "return_period"},
		{115, "mph", 10, "3s", "700y"},
		{40, "m/s", 33.5, "10s", "300y"},
		{"n/a", "mph"},
		{-5, "m/s"},
		{25},
	})

	res, err := ImportWind(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Results, 3)
	assert.InDelta(t, 28.36, res.Results[0].Speed10m, 1e-2)
	assert.Len(t, res.Results[1].Trace, 5)
}

func TestImportWindErrors(t *testing.T) {
	_, err := ImportWind(strings.NewReader("not a workbook"))
	require.Error(t, err)

	_, err = ImportWind(workbook(t, [][]interface{}{{"speed"}}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty sheet")
}

func TestHandlerImportWind(t *testing.T) {
	data := workbook(t, [][]interface{}{
		{"speed", "unit"},
		{30, "m/s"},
	})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "wind.xlsx")
	require.NoError(t, err)
	_, err = part.Write(data.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).ImportWind(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Count)
}

func TestHandlerImportWindMissingFile(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).ImportWind(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerExportCompare(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).ExportCompare(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"damping":0.05}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "spectrum.xlsx")

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SpectrumSheet, ParametersSheet}, f.GetSheetList())
}
