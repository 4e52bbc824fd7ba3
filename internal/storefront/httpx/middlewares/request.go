package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/fantasy-books/internal/pkg/constants"
)

var sessionPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// AttachRequestMetadata copies the request id and the shopper session into
// the context. A missing session selects the default cart; a malformed one
// is rejected.
func AttachRequestMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetReqID(r.Context())
		session := r.Header.Get(constants.HeaderXSessionID)
		if session != "" && !sessionPattern.MatchString(session) {
			writeError(w, http.StatusBadRequest, "invalid_session", "X-Session-ID must be 1-64 letters, digits, '-' or '_'")
			return
		}

		if requestID != "" {
			w.Header().Set(constants.HeaderXRequestId, requestID)
		}
		ctx := context.WithValue(r.Context(), constants.ContextKeyRequestID, requestID)
		ctx = context.WithValue(ctx, constants.ContextKeySessionID, session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the shopper session stored by AttachRequestMetadata.
func SessionID(ctx context.Context) string {
	s, _ := ctx.Value(constants.ContextKeySessionID).(string)
	return s
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code, "message": msg})
}
