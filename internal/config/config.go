package config

import (
	"os"
	"strings"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string

	DBDriver string
	DBDSN    string

	// ContentDir holds one JSON challenge document per file.
	ContentDir string

	// ProgressBackend selects where answered-sets live: "memory" or "db".
	ProgressBackend string

	EnableLocalAuth bool
	EnableGuestAuth bool
	AuthHMACSecret  string

	// AnonymousUser is the placeholder identity used when auth is disabled.
	AnonymousUser string

	CORSOriginsOnline  []string
	CORSOriginsOffline []string
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Mode:     mode,
		HTTPAddr: addr,

		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		ContentDir:      envOr("CONTENT_DIR", "./content"),
		ProgressBackend: envOr("PROGRESS_BACKEND", "db"),

		EnableLocalAuth: envBool("ENABLE_LOCAL_AUTH", true),
		EnableGuestAuth: envBool("ENABLE_GUEST_AUTH", true),
		AuthHMACSecret:  envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),

		AnonymousUser: envOr("ANONYMOUS_USER", "anonymous"),

		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", "https://learn.securellm.dev"),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:5173"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
