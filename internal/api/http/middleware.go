package http

import (
	"context"
	"net/http"
	"strings"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/security"
)

type contextKey string

const actorContextKey contextKey = "actor"

// Authenticator resolves bearer tokens into an Actor stored on the request
// context. Role and ownership checks stay in the services.
type Authenticator struct {
	tokens security.TokenManager
}

func NewAuthenticator(tokens security.TokenManager) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// RequireAuth rejects requests without a valid bearer token.
func (a *Authenticator) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := a.actorFromRequest(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing or invalid token"})
			return
		}
		next(w, r.WithContext(withActor(r.Context(), actor)))
	}
}

func (a *Authenticator) actorFromRequest(r *http.Request) (domain.Actor, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return domain.Actor{}, false
	}
	claims, err := a.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return domain.Actor{}, false
	}
	return domain.Actor{UserID: claims.UserID, Role: claims.Role}, true
}

func withActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

func actorFrom(ctx context.Context) domain.Actor {
	actor, _ := ctx.Value(actorContextKey).(domain.Actor)
	return actor
}
