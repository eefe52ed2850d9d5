package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		wantStatus int
		wantError  string
	}{
		{"credenciais inválidas", ErrInvalidCredentials, MsgInvalidCredentials, http.StatusUnauthorized, MsgInvalidCredentials},
		{"dados ausentes", ErrMissingRequiredData, "Email é obrigatório", http.StatusBadRequest, "Email é obrigatório"},
		{"rota inexistente", ErrRouteNotFound, MsgRouteNotFound, http.StatusNotFound, MsgRouteNotFound},
		{"método não permitido", ErrMethodNotAllowed, MsgMethodNotAllowed, http.StatusMethodNotAllowed, MsgMethodNotAllowed},
		{"código desconhecido vira 500", "XYZ_999", "falhou", http.StatusInternalServerError, "falhou"},
		{"mensagem vazia usa texto do status", ErrInternalServer, "", http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, tt.message, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestMarshal(t *testing.T) {
	assert.JSONEq(t, `{"error":"Erro interno no servidor","code":"SRV_001"}`, string(Marshal(ErrInternalServer, MsgInternalServer)))
}

func TestStatusFor_Adapter(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor(ErrAdapter))
	assert.JSONEq(t, `{"error":"Falha ao processar a invocação","code":"SRV_002"}`, string(Marshal(ErrAdapter, MsgAdapter)))
}
