package main

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"time"
)

type Config struct {
	Port          string
	SessionSecret []byte
	DJPassword    string
	SessionTTL    time.Duration
	RedisURL      string
	WSOrigin      string
}

func loadConfigFromEnv() Config {
	cfg := Config{
		Port:       getenv("PORT", "8080"),
		DJPassword: getenv("DJ_PASSWORD", "2911"),
		SessionTTL: mustParseDuration("SESSION_TTL", "12h"),
		RedisURL:   getenv("REDIS_URL", ""),
		WSOrigin:   getenv("WS_ALLOWED_ORIGIN", ""),
	}

	secret := getenv("SESSION_SECRET", "")
	if secret == "" {
		// Queue state only lives for the process anyway, so a per-start
		// secret just means guests get a fresh session after a restart.
		secret = randomSecret(32)
		log.Printf("party-queue: SESSION_SECRET not set, generated one for this run")
	}
	cfg.SessionSecret = []byte(secret)

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustParseDuration(envKey, def string) time.Duration {
	raw := getenv(envKey, def)
	dur, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("party-queue: invalid %s %q: %v", envKey, raw, err)
	}
	return dur
}

func randomSecret(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("party-queue: generate session secret: %v", err)
	}
	return hex.EncodeToString(buf)
}
