package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                   string
	MongoURI               string
	MongoDatabase          string
	PingCollection         string
	ServiceCollection      string
	ReviewCollection       string
	PetCollection          string
	HealthRecordCollection string
	ReminderCollection     string
	Timeout                time.Duration
	Timezone               string
	ServerLog              *log.Logger
	JWTConfigs             []JWTConfig
	JWTAudience            string
	AllowedOrigins         []string
	GoogleMapsAPIKey       string
	GoogleMapsBaseURL      string
	GoogleMapsTimeout      time.Duration
	ExternalFetchTimeout   time.Duration
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	mapsTimeout := 5 * time.Second
	if raw := strings.TrimSpace(os.Getenv("GOOGLE_MAPS_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			mapsTimeout = parsed
		}
	}

	// Per-adapter deadline for the aggregation fan-out; a hanging provider
	// must not stall the whole merged result.
	externalTimeout := 10 * time.Second
	if raw := strings.TrimSpace(os.Getenv("EXTERNAL_FETCH_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			externalTimeout = parsed
		}
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_SUPABASE_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_SUPABASE_JWT_ISSUER", "supabase"),
			Secret: []byte(secret),
		})
	}
	if secret := strings.TrimSpace(os.Getenv("AUTH_GOOGLE_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_GOOGLE_JWT_ISSUER", "petmate-auth"),
			Secret: []byte(secret),
		})
	}

	if len(jwtConfigs) == 0 {
		log.Fatal("JWT secrets not configured. Set AUTH_SUPABASE_JWT_SECRET or AUTH_GOOGLE_JWT_SECRET.")
	}

	jwtAudience := strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE"))

	cfg := Config{
		Addr:                   envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:               envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:          envOrDefault("MONGO_DB", "petmate"),
		PingCollection:         envOrDefault("PING_COLLECTION", "pings"),
		ServiceCollection:      envOrDefault("SERVICE_COLLECTION", "services"),
		ReviewCollection:       envOrDefault("REVIEW_COLLECTION", "service_reviews"),
		PetCollection:          envOrDefault("PET_COLLECTION", "pets"),
		HealthRecordCollection: envOrDefault("HEALTH_RECORD_COLLECTION", "health_records"),
		ReminderCollection:     envOrDefault("REMINDER_COLLECTION", "reminders"),
		Timeout:                timeout,
		Timezone:               envOrDefault("TIMEZONE", "Asia/Jakarta"),
		ServerLog:              log.New(os.Stdout, "[petcare-api] ", log.LstdFlags|log.Lshortfile),
		JWTConfigs:             jwtConfigs,
		JWTAudience:            jwtAudience,
		AllowedOrigins:         allowedOrigins,
		GoogleMapsAPIKey:       strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY")),
		GoogleMapsBaseURL:      strings.TrimSpace(os.Getenv("GOOGLE_MAPS_BASE_URL")),
		GoogleMapsTimeout:      mapsTimeout,
		ExternalFetchTimeout:   externalTimeout,
	}

	if cfg.GoogleMapsAPIKey == "" {
		cfg.ServerLog.Printf("GOOGLE_MAPS_API_KEY not set; the Google Maps platform will be disabled")
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
