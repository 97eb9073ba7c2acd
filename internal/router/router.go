package router // package router wires handlers and middleware onto an echo instance

import (
	"github.com/labstack/echo/v4"                   // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's bundled recover/logger middleware
	"github.com/redis/go-redis/v9"                  // Redis client handed to the rate limiter

	"github.com/dedeco/cloudfunctions-gcp-deploy-approaches/internal/config"     // runtime configuration
	"github.com/dedeco/cloudfunctions-gcp-deploy-approaches/internal/handler"    // echo handlers and adapters
	"github.com/dedeco/cloudfunctions-gcp-deploy-approaches/internal/joke"       // the joke handler itself
	"github.com/dedeco/cloudfunctions-gcp-deploy-approaches/internal/middleware" // Redis token bucket
)

// Deps carries what the routes need. Redis may be nil, in which case the
// rate limiter is a pass-through.
type Deps struct {
	Config    config.Config
	RateLimit config.RateLimitConfig
	Redis     *redis.Client
	Jokes     *joke.Handler
}

// RegisterRoutes mounts the health check and the joke endpoint on e.
// The joke endpoint answers every method on every path other than /healthz.
// CORS is handled by the joke handler itself, so no CORS middleware runs
// here and the preflight header set stays exactly the one the handler writes.
func RegisterRoutes(e *echo.Echo, d Deps) {
	// Decide where c.RealIP() reads the client address from.  The rate
	// limiter keys buckets by it, so a client-controlled header must never
	// be believed unless the hop that set it is a known proxy.
	e.IPExtractor = IPExtractor(d.Config)

	// Recover turns a panicking handler into a 500 instead of killing the
	// connection.  Logger prints one line per request (method, uri, status,
	// latency) and can be switched off with REQUEST_LOG=false.
	e.Use(echomw.Recover())
	if d.Config.RequestLog {
		e.Use(echomw.Logger())
	}

	// Map GET /healthz to the Health handler.  Load balancers and Cloud Run
	// probes hit this path; it never consults the joke catalog.
	e.GET("/healthz", handler.Health)

	// The joke route is registered for every method (Any) so that OPTIONS
	// preflights reach the joke handler rather than echo's default OPTIONS
	// reply.  Both "/" and "/*" are mounted so any path serves a joke.  The
	// rate limiter is route middleware; it skips OPTIONS on its own.
	jokes := handler.NewJokeHandler(d.Jokes)
	limit := middleware.RateLimit(d.RateLimit, d.Redis)
	e.Any("/", jokes.Serve, limit)
	e.Any("/*", jokes.Serve, limit)
}

// IPExtractor picks how echo resolves the client IP.  Without TrustProxy
// the socket peer address is used and X-Forwarded-For / X-Real-IP are
// ignored.  With it, X-Forwarded-For is walked from the right and only hops
// inside TrustedProxies (plus loopback, link-local and private ranges) are
// skipped, so a client cannot choose its own address.
func IPExtractor(cfg config.Config) echo.IPExtractor {
	if !cfg.TrustProxy {
		return echo.ExtractIPDirect()
	}
	opts := make([]echo.TrustOption, 0, len(cfg.TrustedProxies))
	for _, n := range cfg.TrustedProxies {
		opts = append(opts, echo.TrustIPRange(n))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}
