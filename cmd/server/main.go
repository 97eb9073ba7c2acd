package main // Entry point package

import (
	"context" // Context for the Redis startup ping
	"log"     // Logging library

	"github.com/labstack/echo/v4"  // Echo web framework
	"github.com/redis/go-redis/v9" // Redis client for the rate limiter

	"github.com/dedeco/cloudfunctions-gcp-deploy-approaches/internal/config" // Internal config loader
	"github.com/dedeco/cloudfunctions-gcp-deploy-approaches/internal/joke"   // Joke catalog and handler
	"github.com/dedeco/cloudfunctions-gcp-deploy-approaches/internal/router" // Internal router setup
)

func main() {
	cfg := config.Load()               // Load environment config (and .env when present)
	rl := config.LoadRateLimitConfig() // Rate limiting is opt-in via RATE_LIMIT_ENABLED

	// Connect to Redis only when rate limiting is requested.  If Redis is
	// unreachable the server still starts, just without a limiter.
	var rdb *redis.Client
	if rl.Enabled {
		client, err := config.NewRedisClient(context.Background(), config.LoadRedisConfig())
		if err != nil {
			log.Printf("rate limiting disabled: %v", err)
		} else {
			rdb = client
			defer rdb.Close() // release pooled connections on normal exit
		}
	}

	e := echo.New()     // Create Echo instance
	e.HideBanner = true // Keep startup output to our own log line
	router.RegisterRoutes(e, router.Deps{ // Register application routes
		Config:    cfg,
		RateLimit: rl,
		Redis:     rdb,
		Jokes:     joke.New(joke.Default()), // one shared, stateless handler
	})

	addr := ":" + cfg.Port // Address string with port
	log.Printf("listening on %s (env=%s, rate_limit=%t, trust_proxy=%t)", addr, cfg.Env, rdb != nil, cfg.TrustProxy) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
