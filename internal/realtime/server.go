package realtime

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

// broadcastChannel is the Redis pub/sub channel queue events travel on
// when fan-out through Redis is configured.
const broadcastChannel = "broadcast"

// Server bridges queue events to websocket viewers. With a Redis client
// it publishes through pub/sub so several instances can share one event
// stream; without one it feeds the local hub directly.
type Server struct {
	hub           *Hub
	rdb           *redis.Client
	ctx           context.Context
	allowedOrigin string

	upgrader websocket.Upgrader
}

func NewServer(hub *Hub, rdb *redis.Client, ctx context.Context, allowedOrigin string) *Server {
	s := &Server{
		hub:           hub,
		rdb:           rdb,
		ctx:           ctx,
		allowedOrigin: allowedOrigin,
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if s.allowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == s.allowedOrigin
		},
	}
	return s
}

// Publish implements the queue's EventPublisher. Marshal failures are
// dropped silently: live updates are best effort, the queue state itself
// is authoritative.
func (s *Server) Publish(ctx context.Context, eventType string, payload any) {
	body := map[string]any{
		"type":    eventType,
		"payload": payload,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return
	}

	if s.rdb != nil {
		if err := s.rdb.Publish(ctx, broadcastChannel, string(data)).Err(); err != nil {
			log.Printf("party-queue: redis publish: %v", err)
		}
		// The subscriber loop delivers it back into the hub.
		return
	}

	s.hub.Broadcast(data)
}

// RunRedisSubscriber feeds Redis broadcast messages into the hub. A no-op
// when Redis is not configured.
func (s *Server) RunRedisSubscriber() {
	if s.rdb == nil {
		return
	}

	sub := s.rdb.Subscribe(s.ctx, broadcastChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-s.ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			s.hub.broadcast <- []byte(msg.Payload)
		}
	}
}

// HandleWS upgrades the connection and registers it with the hub.
// GET /ws
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("party-queue: ws upgrade: %v", err)
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
	s.hub.register <- client

	welcome := map[string]any{
		"type": "welcome",
		"now":  time.Now().UTC().Format(time.RFC3339Nano),
	}
	if b, err := json.Marshal(welcome); err == nil {
		client.send <- b
	}

	go client.writePump()
	go client.readPump()
}
