package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondWithJSON(rec, http.StatusOK, map[string]int{"total": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"total":3}`, rec.Body.String())
}

func TestRespondWithJSON_NilPayload(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondWithJSON(rec, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondWithError(rec, http.StatusNotFound, "Loan not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Loan not found", resp.Message)
}
