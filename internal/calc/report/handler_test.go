package report

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	auth "Bearing/internal/auth"
	footing "Bearing/internal/calc/footing"
	resultlog "Bearing/internal/resultlog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	logs := resultlog.NewRegistry()
	logs.Get(7).Append(resultlog.Entry{
		Timestamp: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Input:     footing.Input{PKN: 3, MKN: 10, BM: 1.2, DM: 1.5, EM: 0.1},
		QmaxKNM2:  23.888888888888889,
		Case:      footing.CaseFullContact,
	})
	h := &Handler{Logs: logs}

	body := `{"project":"Warehouse","author":"J. Doe","notes":"Pad F-3"}`
	req := httptest.NewRequest(http.MethodPost, "/tools/footing/report", strings.NewReader(body))
	req = req.WithContext(auth.WithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestGenerate_EmptyLog(t *testing.T) {
	h := &Handler{Logs: resultlog.NewRegistry()}

	req := httptest.NewRequest(http.MethodPost, "/tools/footing/report", strings.NewReader(`{}`))
	req = req.WithContext(auth.WithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
