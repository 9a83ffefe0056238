// internal/utils/response_test.go
package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvogue/anvogue-admin/internal/backend"
	"github.com/anvogue/anvogue-admin/internal/validation"
)

func TestBackendErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"client error kept", &backend.APIError{StatusCode: 409}, 409, "BACKEND_REJECTED"},
		{"server error", &backend.APIError{StatusCode: 500}, http.StatusBadGateway, "BACKEND_ERROR"},
		{"malformed", backend.ErrMalformedResponse, http.StatusBadGateway, "BACKEND_MALFORMED"},
		{"transport", errors.New("dial tcp: refused"), http.StatusBadGateway, "BACKEND_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := BackendErrorStatus(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestValidationErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ValidationErrorResponse(c, validation.FieldErrors{"infos.0.prix": "bad"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "bad", resp.Error.Details["infos.0.prix"])
}
