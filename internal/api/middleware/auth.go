package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/lavexpress/booking-service/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "jeton administrateur manquant ou invalide"

// Auth проверяет административный токен в заголовке X-Admin-Token
// Используется на всех ручках управления бронированиями и формулами
func Auth(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(adminTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
