package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SpaBooking/internal/api/handlers"
)

type contextKey string

const (
	userIDKey contextKey = "userID"

	// HeaderUserID заголовок с ID клиента, выставляется API gateway
	HeaderUserID = "X-User-ID"

	msgUnauthorized = "требуется заголовок X-User-ID с ID пользователя"
)

// Auth требует заголовок X-User-ID и кладет ID клиента в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		ctx := WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithUserID возвращает контекст с ID клиента
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext возвращает ID клиента, положенный Auth
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
