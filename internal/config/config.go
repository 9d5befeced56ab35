package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	OWMAPIKey    string
	OWMBaseURL   string
	RedisURL     string
	KafkaBrokers []string
	WeatherTopic string
	ZipkinURL    string
	StaticDir    string
	UpstreamRPS  float64

	WidgetAPIURL        string
	WidgetLocale        string
	WidgetForecastSlots int
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded (ok for prod)")
	}
	return &Config{
		Port:         getEnv("PORT", "8080"),
		OWMAPIKey:    os.Getenv("OWM_API_KEY"),
		OWMBaseURL:   getEnv("OWM_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		RedisURL:     os.Getenv("REDIS_URL"),
		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		WeatherTopic: getEnv("WEATHER_KAFKA_TOPIC", "weather-updates"),
		ZipkinURL:    os.Getenv("ZIPKIN_URL"),
		StaticDir:    getEnv("STATIC_DIR", "static"),
		UpstreamRPS:  getFloat("UPSTREAM_RPS", 1),

		WidgetAPIURL:        getEnv("WIDGET_API_URL", "http://localhost:8080"),
		WidgetLocale:        getEnv("WIDGET_LOCALE", "en_US"),
		WidgetForecastSlots: getInt("WIDGET_FORECAST_SLOTS", 4),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		log.Printf("invalid %s=%q, using %g", key, v, fallback)
		return fallback
	}
	return f
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
