package config

import (
	"errors"
	"fmt"
	"math"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	CorsOrigins []string
	// TrustedProxies lists the peers (IPs or CIDRs) whose X-Forwarded-For
	// is believed. Empty means the client IP is always the socket peer.
	TrustedProxies []string

	LogLevel  string
	LogFormat string

	DatabaseURL     string
	DBUser          string
	DBPass          string
	DBHost          string
	DBPort          string
	DBName          string
	DBAutoMigrate   bool
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBConnMaxIdle   time.Duration
	DBSlowThreshold time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the process configuration from the environment. Call
// godotenv.Load first if a .env file should be honoured. Malformed CORS
// origins or proxy addresses are reported rather than left to fail later
// inside the router.
func Load() (Config, error) {
	dbURL := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if dbURL == "" {
		dbURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	cfg := Config{
		Port:           EnvOrDefault("PORT", "4000"),
		CorsOrigins:    parseList(os.Getenv("CORS_ORIGINS"), []string{"http://localhost:5173"}),
		TrustedProxies: parseList(os.Getenv("TRUSTED_PROXIES"), nil),

		LogLevel:  EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: EnvOrDefault("LOG_FORMAT", "json"),

		DatabaseURL:     dbURL,
		DBUser:          EnvOrDefault("DB_USER", "root"),
		DBPass:          os.Getenv("DB_PASS"),
		DBHost:          EnvOrDefault("DB_HOST", "127.0.0.1"),
		DBPort:          EnvOrDefault("DB_PORT", "3306"),
		DBName:          EnvOrDefault("DB_NAME", "SimpleProjectDB"),
		DBAutoMigrate:   envBool("DB_AUTO_MIGRATE", true),
		DBMaxOpenConns:  envInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:  envInt("DB_MAX_IDLE_CONNS", 2),
		DBConnMaxIdle:   envDuration("DB_CONN_MAX_IDLE", 30*time.Second),
		DBSlowThreshold: envDuration("DB_SLOW_THRESHOLD", time.Second),

		// a zero or negative budget would block every request
		RateLimitRPS:   envPositiveFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: envPositiveInt("RATE_LIMIT_BURST", 10),
	}

	if err := validateOrigins(cfg.CorsOrigins); err != nil {
		return Config{}, err
	}
	if err := validateProxies(cfg.TrustedProxies); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validateOrigins accepts "*" or scheme://host[:port] with an http(s) scheme,
// which is what a browser sends in the Origin header.
func validateOrigins(origins []string) error {
	var errs []error
	for _, origin := range origins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" ||
			u.User != nil || (u.Path != "" && u.Path != "/") || u.RawQuery != "" || strings.Contains(origin, "*") {
			errs = append(errs, fmt.Errorf("CORS_ORIGINS: invalid origin %q", origin))
		}
	}
	return errors.Join(errs...)
}

func validateProxies(proxies []string) error {
	var errs []error
	for _, p := range proxies {
		if strings.Contains(p, "/") {
			if _, _, err := net.ParseCIDR(p); err != nil {
				errs = append(errs, fmt.Errorf("TRUSTED_PROXIES: invalid CIDR %q", p))
			}
			continue
		}
		if net.ParseIP(p) == nil {
			errs = append(errs, fmt.Errorf("TRUSTED_PROXIES: invalid IP %q", p))
		}
	}
	return errors.Join(errs...)
}

// EnvOrDefault returns the trimmed value of key, or def when unset or blank.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseList(raw string, def []string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func envInt(key string, def int) int {
	n, err := strconv.Atoi(EnvOrDefault(key, ""))
	if err != nil {
		return def
	}
	return n
}

func envPositiveInt(key string, def int) int {
	if n := envInt(key, def); n > 0 {
		return n
	}
	return def
}

func envFloat(key string, def float64) float64 {
	f, err := strconv.ParseFloat(EnvOrDefault(key, ""), 64)
	if err != nil {
		return def
	}
	return f
}

// envPositiveFloat also rejects NaN and +Inf.
func envPositiveFloat(key string, def float64) float64 {
	if f := envFloat(key, def); f > 0 && !math.IsInf(f, 1) {
		return f
	}
	return def
}

func envBool(key string, def bool) bool {
	b, err := strconv.ParseBool(EnvOrDefault(key, ""))
	if err != nil {
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(EnvOrDefault(key, ""))
	if err != nil {
		return def
	}
	return d
}
