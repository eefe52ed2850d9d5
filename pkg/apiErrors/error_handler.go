package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos ao cliente
const (
	// Erros de autenticação
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas

	// Erros de validação e roteamento
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrRouteNotFound       = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método não suportado pela rota

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrAdapter        = "SRV_002" // Falha na tradução do evento da plataforma serverless
)

// Mensagens padrão usadas quando o chamador não informa uma
const (
	MsgInvalidCredentials = "Credenciais inválidas"
	MsgInternalServer     = "Erro interno no servidor"
	MsgAdapter            = "Falha ao processar a invocação"
	MsgRouteNotFound      = "Rota não encontrada"
	MsgMethodNotAllowed   = "Método não permitido"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrAdapter:             http.StatusInternalServerError,
}

// APIError é o corpo padronizado de erro. O campo "error" é sempre preenchido.
type APIError struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP de um código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// New monta o corpo de erro. Mensagem vazia é substituída pela padrão do status.
func New(code string, message string, details any) APIError {
	if message == "" {
		message = http.StatusText(StatusFor(code))
	}

	return APIError{
		Error:   message,
		Code:    code,
		Details: details,
	}
}

// Marshal serializa o corpo de erro; usado pelos adaptadores serverless
func Marshal(code string, message string) []byte {
	body, err := json.Marshal(New(code, message, nil))
	if err != nil {
		return []byte(`{"error":"` + MsgInternalServer + `","code":"` + ErrInternalServer + `"}`)
	}
	return body
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(New(code, message, details))
}
