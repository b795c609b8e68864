package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/HarryKain/dj/internal/queue"
	"github.com/HarryKain/dj/internal/realtime"
)

func main() {
	ctx := context.Background()
	cfg := loadConfigFromEnv()

	djHash, err := bcrypt.GenerateFromPassword([]byte(cfg.DJPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("party-queue: hash DJ password: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("party-queue: redis: %v", err)
		}
		rdb = redis.NewClient(opt)
		defer rdb.Close()
		log.Printf("party-queue: event fan-out via redis at %s", opt.Addr)
	}

	hub := realtime.NewHub()
	go hub.Run()

	rt := realtime.NewServer(hub, rdb, ctx, cfg.WSOrigin)
	go rt.RunRedisSubscriber()

	store := queue.NewMemoryStore()
	srv := queue.NewServer(store, rt, queue.ServerConfig{
		JWTSecret:      cfg.SessionSecret,
		DJPasswordHash: djHash,
		SessionTTL:     cfg.SessionTTL,
		WSHandler:      http.HandlerFunc(rt.HandleWS),
	})

	r := srv.Router(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
	)

	log.Printf("party-queue listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("party-queue: %v", err)
	}
}
