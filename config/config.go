package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port              string
	DBPath            string
	LLMEndpoint       string
	LLMAPIKey         string
	LLMModel          string
	AmapAPIKey        string
	SupabaseJWTSecret string

	// Planner performance knobs.
	MaxWorkers       int
	EnableCache      bool
	CacheTTL         time.Duration // 0 = cache for the process lifetime
	VerboseLogging   bool
	RetryOnRateLimit bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] no .env file loaded: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Printf("[cfg] bad %s=%q, using %d", k, v, def)
		}
		return def
	}
	getBool := func(k string, def bool) bool {
		if v := os.Getenv(k); v != "" {
			return v == "true" || v == "1"
		}
		return def
	}

	cfg := AppConfig{
		Port:              get("PORT", "8080"),
		DBPath:            get("DB_PATH", "trip.db"),
		LLMEndpoint:       get("LLM_ENDPOINT", ""),
		LLMAPIKey:         get("LLM_API_KEY", ""),
		LLMModel:          get("LLM_MODEL", "gpt-4o-mini"),
		AmapAPIKey:        get("AMAP_API_KEY", ""),
		SupabaseJWTSecret: get("SUPABASE_JWT_SECRET", ""),
		MaxWorkers:        getInt("PERF_MAX_WORKERS", 3),
		EnableCache:       getBool("PERF_ENABLE_CACHE", true),
		CacheTTL:          time.Duration(getInt("CACHE_TTL_MINUTES", 0)) * time.Minute,
		VerboseLogging:    getBool("PERF_VERBOSE_LOGGING", false),
		RetryOnRateLimit:  getBool("RETRY_ON_RATE_LIMIT", false),
	}
	log.Printf("[cfg] port=%s db=%s model=%s workers=%d cache=%v ttl=%s retry=%v",
		cfg.Port, cfg.DBPath, cfg.LLMModel, cfg.MaxWorkers, cfg.EnableCache, cfg.CacheTTL, cfg.RetryOnRateLimit)
	return cfg
}
