package footing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}

	body := `{"p_kn":3,"m_knm":10,"b_m":1.2,"d_m":1.5,"e_m":0.1}`
	req := httptest.NewRequest(http.MethodPost, "/tools/footing/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, CaseFullContact, res.Case)
	assert.InDelta(t, 23.888888888888889, res.QmaxKNM2, 1e-9)
}

func TestHandlerCalc_InvalidInput(t *testing.T) {
	h := &Handler{}

	body := `{"p_kn":-3,"m_knm":10,"b_m":1.2,"d_m":1.5,"e_m":0.1}`
	req := httptest.NewRequest(http.MethodPost, "/tools/footing/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Calc(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), InvalidInputMsg)
}

func TestHandlerCalc_BadPayload(t *testing.T) {
	h := &Handler{}

	req := httptest.NewRequest(http.MethodPost, "/tools/footing/calc", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Calc(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
