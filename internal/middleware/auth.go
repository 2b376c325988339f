package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"vidtube/internal/apierr"
	"vidtube/internal/auth"
)

type contextKey string

// ActorIDKey is the context key for the authenticated user's id.
const ActorIDKey = contextKey("actorID")

// CookieName is the session cookie consumed by protected routes.
const CookieName = "access_token"

// ActorID extracts the authenticated user id from a request context. The
// empty string means the request was not authenticated.
func ActorID(ctx context.Context) string {
	id, _ := ctx.Value(ActorIDKey).(string)
	return id
}

// RequireAuth resolves the session cookie into an actor identity and rejects
// requests without a valid token. A missing token and an invalid token are
// both authentication failures, distinct from authorization failures.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			writeAuthError(w, apierr.Unauthenticated("You are not authenticated!"))
			return
		}

		userID, err := auth.ParseToken(cookie.Value)
		if err != nil {
			writeAuthError(w, apierr.Unauthenticated("Token is not valid!"))
			return
		}

		ctx := context.WithValue(r.Context(), ActorIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeAuthError(w http.ResponseWriter, apiErr *apierr.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"status":  apiErr.Status,
		"message": apiErr.Message,
	})
}
