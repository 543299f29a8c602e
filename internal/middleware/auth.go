package middleware

import (
	"TodoAuth/internal/auth"
	"context"
	"encoding/json"
	"net/http"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// Authorizer превращает значение заголовка Authorization в userID.
type Authorizer interface {
	Authorize(header string) (int64, error)
}

var _ Authorizer = (*auth.Codec)(nil)

// WithAuth проверяет bearer-токен и, если он валиден, кладёт userID в контекст.
// Запросы без токена или с невалидным токеном проходят дальше анонимно.
func WithAuth(a Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}
			userID, err := a.Authorize(header)
			if err != nil {
				// причина отказа только в debug-лог
				sugar.Debugw("auth rejected", "uri", r.RequestURI, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// RequireAuth отвечает 401, если в контексте нет userID; дальше цепочка не выполняется.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			WriteUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WriteUnauthorized пишет единый ответ 401 без подробностей.
func WriteUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}

// WithUserID кладёт userID в контекст.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext достаёт userID, положенный WithAuth.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok && userID > 0
}
