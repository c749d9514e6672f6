package config

import (
	"os"
	"strings"
)

type Environment struct {
	IsDevelopment bool
	Domain        string
	CookieSecure  bool
	CORSOrigins   []string
}

var Env Environment

func init() {
	// Get domain from environment variable
	domain := os.Getenv("COOKIE_DOMAIN")

	// If no domain is set, we're in development
	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	origins := []string{"http://localhost:8000"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	Env = Environment{
		IsDevelopment: isDev,
		Domain:        domain,
		CookieSecure:  !isDev,
		CORSOrigins:   origins,
	}
}
