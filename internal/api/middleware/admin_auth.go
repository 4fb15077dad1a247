package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Totaedandan/auame/internal/api/handlers"
)

const (
	msgUnauthorized = "Требуется авторизация администратора"
	authRealm       = `Basic realm="air-vibe-admin", charset="UTF-8"`
)

// CredentialsVerifier проверка учётных данных администратора
type CredentialsVerifier interface {
	Verify(login, password string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// AdminAuth пропускает только запросы с верными Basic учётными данными
func AdminAuth(verifier CredentialsVerifier, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			login, password, ok := r.BasicAuth()
			if !ok {
				logger.Warn("AdminAuth: missing credentials for %s %s", r.Method, r.URL.Path)
				w.Header().Set("WWW-Authenticate", authRealm)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			if !verifier.Verify(login, password) {
				logger.Warn("AdminAuth: rejected %s %s for login=%q", r.Method, r.URL.Path, login)
				w.Header().Set("WWW-Authenticate", authRealm)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
