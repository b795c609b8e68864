package queue

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionCookieName = "party_session"

// SessionClaims is everything the cookie carries: a random session ID
// keying the server-side voter state, and the DJ capability flag. The
// liked/disliked sets themselves never leave the server.
type SessionClaims struct {
	SessionID string `json:"sid"`
	DJ        bool   `json:"dj"`
	jwt.RegisteredClaims
}

type ctxSessionKey struct{}

// sessionMiddleware guarantees every request downstream carries valid
// session claims. A missing, expired or forged cookie is replaced with a
// fresh guest session rather than rejected; guests never see an auth error.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := s.claimsFromCookie(r)
		if claims == nil {
			claims = &SessionClaims{SessionID: uuid.NewString()}
			if err := s.issueSession(w, claims); err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
		}

		ctx := context.WithValue(r.Context(), ctxSessionKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) claimsFromCookie(r *http.Request) *SessionClaims {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return nil
	}
	return claims
}

// issueSession signs the claims and (re)sets the cookie. Called on first
// contact and whenever the DJ flag flips.
func (s *Server) issueSession(w http.ResponseWriter, claims *SessionClaims) error {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(s.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func sessionFrom(r *http.Request) *SessionClaims {
	claims, _ := r.Context().Value(ctxSessionKey{}).(*SessionClaims)
	if claims == nil {
		return &SessionClaims{}
	}
	return claims
}

func actorFrom(r *http.Request) Actor {
	claims := sessionFrom(r)
	return Actor{SessionID: claims.SessionID, DJ: claims.DJ}
}
