package middleware

import (
	"net/http"
	"strings"
)

// APIPrefix delimita as rotas que recebem os cabeçalhos de CORS
const APIPrefix = "/api/"

const wildcardOrigin = "*"

func allowedOrigin(allowedOrigins []string, origin string) (string, bool) {
	for _, allowed := range allowedOrigins {
		if allowed == wildcardOrigin {
			return wildcardOrigin, true
		}
		if origin != "" && origin == allowed {
			return origin, true
		}
	}
	return "", false
}

// Cors libera o acesso de outras origens às rotas sob /api/.
// Com "*" na lista qualquer origem é aceita, inclusive requisições sem Origin.
// Preflight (OPTIONS) em /api/ é respondido aqui mesmo com 204.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, APIPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			if value, ok := allowedOrigin(allowedOrigins, r.Header.Get("Origin")); ok {
				w.Header().Set("Access-Control-Allow-Origin", value)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Requested-With")
				w.Header().Set("Access-Control-Max-Age", "86400")
				if value != wildcardOrigin {
					w.Header().Add("Vary", "Origin")
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
