package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, KindValidation.Status())
	require.Equal(t, http.StatusBadRequest, KindConflict.Status())
	require.Equal(t, http.StatusNotFound, KindNotFound.Status())
}

func TestIsBusinessWrapped(t *testing.T) {
	err := fmt.Errorf("update: %w", ErrNotFound("ponto_not_found", "Registro não encontrado."))

	require.True(t, IsBusiness(err, "ponto_not_found"))
	require.True(t, IsKind(err, KindNotFound))
	require.False(t, IsKind(err, KindConflict))
	require.False(t, IsBusiness(errors.New("boom"), "ponto_not_found"))
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", ErrValidation("missing_fields", "UserId e Type são obrigatórios"), 400, "missing_fields", "UserId e Type são obrigatórios"},
		{"conflict", ErrConflict("email_already_exists", "Email já existe"), 400, "email_already_exists", "Email já existe"},
		{"not found", ErrNotFound("ponto_not_found", "Registro não encontrado."), 404, "ponto_not_found", "Registro não encontrado."},
		{"code only", ErrValidation("invalid_state", ""), 400, "invalid_state", "fallback"},
		{"internal", errors.New("connection refused"), 500, "failed", "fallback"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			FromError(c, tc.err, "failed", "fallback")

			require.Equal(t, tc.wantStatus, rec.Code)
			var body HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tc.wantCode, body.Code)
			require.Equal(t, tc.wantMsg, body.Message)
		})
	}
}
