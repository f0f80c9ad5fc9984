package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	footing "Bearing/internal/calc/footing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseFootingRow(t *testing.T) {
	in, err := parseFootingRow([]string{"3", "10", "1.2", "1.5", "0.1"})
	require.NoError(t, err)
	assert.Equal(t, footing.Input{PKN: 3, MKN: 10, BM: 1.2, DM: 1.5, EM: 0.1}, in)
}

func TestParseFootingRow_Bad(t *testing.T) {
	_, err := parseFootingRow([]string{"3", "10", "1.2"})
	assert.Error(t, err)

	_, err = parseFootingRow([]string{"3", "ten", "1.2", "1.5", "0.1"})
	assert.Error(t, err)
}

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, name, cell))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestHandlerFooting(t *testing.T) {
	workbook := buildWorkbook(t, [][]interface{}{
		{"P (kN)", "M (kN·m)", "B (m)", "D (m)", "e (m)"},
		{3, 10, 1.2, 1.5, 0.1},
		{100, 20, 2, 1.8, 0.5},
		{"bad", "row", "is", "skipped", "!"},
		{-1, 10, 1.2, 1.5, 0.1}, // fails validation, skipped
	})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "footings.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/tools/footing/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Footing(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res FootingImportResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 2, res.Count)
	require.Len(t, res.Results, 2)
	assert.Equal(t, footing.CaseFullContact, res.Results[0].Case)
	assert.Equal(t, footing.CasePartial, res.Results[1].Case)
}

func TestHandlerFooting_NoFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tools/footing/import", nil)
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Footing(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
