package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrMalformedData, "coluna ausente", map[string]string{"field": "VDE"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrMalformedData, body.Code)
	assert.Equal(t, "coluna ausente", body.Message)
}

func TestStatusFor_CodigoDesconhecido(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ"))
}
