package main

import (
	"context"
	"log"
	"net/http"

	"weather-widget/internal/api"
	"weather-widget/internal/bootstrap"
	"weather-widget/internal/config"
	"weather-widget/internal/db"
	"weather-widget/internal/handlers"
	"weather-widget/internal/kafka"
	"weather-widget/internal/models"
	"weather-widget/internal/services"
	"weather-widget/internal/tracing"
	"weather-widget/internal/workers"
)

func main() {
	cfg := config.Load()
	if cfg.OWMAPIKey == "" {
		log.Fatal("OWM_API_KEY is required")
	}

	shutdownTracing, err := tracing.Setup("weather-server", cfg.ZipkinURL)
	if err != nil {
		log.Fatalf("Tracing setup failed: %v", err)
	}

	// ------------------------
	// Redis (optional)
	// ------------------------
	var cache services.Cache
	var closers []func()
	if cfg.RedisURL != "" {
		redisClient, err := db.ConnectRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("Redis: %v", err)
		}
		cache = services.NewRedisCache(redisClient)
		closers = append(closers, func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Redis close error: %v", err)
			}
		})
	} else {
		log.Println("REDIS_URL not set, weather cache disabled")
	}

	// ------------------------
	// Kafka (optional)
	// ------------------------
	var producer kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 && cache != nil {
		p, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.WeatherTopic)
		if err != nil {
			log.Fatalf("Kafka: %v", err)
		}
		consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.WeatherTopic, "weather-cache-syncer")
		if err != nil {
			log.Fatalf("Kafka: %v", err)
		}
		workers.StartWeatherSyncer(cache, consumer, services.DefaultTTL)
		producer = p
		// Consumer first so that nothing is written after Redis closes.
		closers = append([]func(){consumer.Stop, p.Close}, closers...)
	}

	// ------------------------
	// Weather service + handlers
	// ------------------------
	owm := api.NewClient(cfg.OWMAPIKey, cfg.OWMBaseURL, cfg.UpstreamRPS)
	weatherService := services.NewCacheService[models.WeatherResponse](cache, producer, services.WeatherFetcher{Source: owm})

	r := bootstrap.InitRoutes(
		handlers.NewWeatherHandler(weatherService),
		handlers.NewNowHandler(nil),
		cfg.StaticDir,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	closers = append(closers, func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("Tracing shutdown error: %v", err)
		}
	})
	done := bootstrap.GracefulShutdown(srv, closers...)

	log.Printf("Server started on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-done
}
