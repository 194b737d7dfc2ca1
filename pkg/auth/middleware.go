package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/porcelarte/pkg/httpx"
	"github.com/ghuser/porcelarte/pkg/logger"
)

const sessionName = "porcelarte_session"
const sessionActorKey = "actor_id"

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the ActorID, and injects it into the request context.
// Returns 401 Unauthorized if the session is missing, invalid, or lacks a valid actor_id.
//
// After this middleware, handlers can safely call auth.ActorIDFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			actorIDStr, ok := session.Values[sessionActorKey].(string)
			if !ok || actorIDStr == "" {
				log.WarnContext(r.Context(), "session missing actor_id")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			actorID, err := uuid.Parse(actorIDStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid actor_id in session", "actor_id", actorIDStr, "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session data"})
				return
			}

			ctx := WithActorID(r.Context(), actorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
