package middleware

import (
	"net/http"
	"strings"

	"github.com/m1shk4/ASB-BookingFront/internal/api/handlers"
)

const (
	// HeaderClientID заголовок с идентификатором клиента (владельца черновика)
	HeaderClientID = "X-Client-ID"

	msgMissingClientID = "требуется заголовок X-Client-ID"
)

// ClientID извлекает идентификатор клиента из запроса
func ClientID(r *http.Request) string {
	return r.Header.Get(HeaderClientID)
}

// BearerToken извлекает bearer-токен из заголовка Authorization.
// Пустая строка означает гостевой запрос
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// RequireClientID middleware, требующий заголовок X-Client-ID.
// Аутентификация по bearer-токену остаётся опциональной: гости
// работают с черновиками наравне с авторизованными пользователями
func RequireClientID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ClientID(r) == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingClientID)
			return
		}
		next.ServeHTTP(w, r)
	})
}
