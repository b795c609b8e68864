package queue

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// EventPublisher fans queue events out to live listeners (the websocket
// hub, optionally through Redis). Implementations must not block the
// request path.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any)
}

type ServerConfig struct {
	// JWTSecret signs the session cookie.
	JWTSecret []byte
	// DJPasswordHash is the bcrypt hash of the shared DJ password.
	DJPasswordHash []byte
	// SessionTTL bounds the session cookie lifetime. Zero means 12h.
	SessionTTL time.Duration
	// WSHandler, when set, is mounted at GET /ws.
	WSHandler http.Handler
}

type Server struct {
	store      Store
	publisher  EventPublisher
	jwtSecret  []byte
	djHash     []byte
	sessionTTL time.Duration
	ws         http.Handler
}

func NewServer(store Store, publisher EventPublisher, cfg ServerConfig) *Server {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Server{
		store:      store,
		publisher:  publisher,
		jwtSecret:  cfg.JWTSecret,
		djHash:     cfg.DJPasswordHash,
		sessionTTL: ttl,
		ws:         cfg.WSHandler,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)
	if s.ws != nil {
		r.Handle("/ws", s.ws)
	}

	r.Group(func(r chi.Router) {
		r.Use(s.sessionMiddleware)

		r.Get("/", s.handleIndex)
		r.Get("/login", s.handleLoginPage)

		r.Post("/add", s.handleAddSong)
		r.Post("/like/{id}", s.handleLike)
		r.Post("/dislike/{id}", s.handleDislike)
		r.Post("/remove/{id}", s.handleRemove)

		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)

		r.Get("/data", s.handleData)
		r.Post("/vote", s.handleVoteGenre)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "party-queue",
	})
}

func (s *Server) publishEvent(ctx context.Context, eventType string, payload any) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, eventType, payload)
}
