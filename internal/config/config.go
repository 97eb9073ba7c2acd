package config // package config loads application configuration from environment variables

import (
	"log"
	"net"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime settings. Each field maps to an
// environment variable; all of them have defaults so the binary starts on
// Cloud Run with nothing but PORT set.
type Config struct {
	Env        string // application environment (e.g. "dev", "prod")
	Port       string // HTTP port to listen on
	RequestLog bool   // log every request through echo's logger middleware

	// TrustProxy makes the client IP come from X-Forwarded-For, but only
	// for hops in TrustedProxies or private/loopback ranges. When false the
	// socket peer address is used and forwarding headers are ignored.
	TrustProxy     bool
	TrustedProxies []*net.IPNet
}

// Load reads a .env file when present and then builds a Config from the
// environment. PORT wins over APP_PORT because hosting platforms inject it.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}
	return Config{
		Env:        envStr("APP_ENV", "dev"),
		Port:       envStr("PORT", envStr("APP_PORT", "8080")),
		RequestLog: envBool("REQUEST_LOG", true),

		TrustProxy:     envBool("TRUST_PROXY", false),
		TrustedProxies: parseCIDRs(envStr("TRUSTED_PROXIES", "")),
	}
}

// parseCIDRs reads a comma separated CIDR list. Bad entries are logged and
// skipped; a bare IP is taken as a single-host range.
func parseCIDRs(s string) []*net.IPNet {
	var out []*net.IPNet
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.Contains(p, "/") {
			if ip := net.ParseIP(p); ip != nil && ip.To4() != nil {
				p += "/32"
			} else {
				p += "/128"
			}
		}
		_, n, err := net.ParseCIDR(p)
		if err != nil {
			log.Printf("config: ignoring trusted proxy %q: %v", p, err)
			continue
		}
		out = append(out, n)
	}
	return out
}
