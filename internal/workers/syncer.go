package workers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"weather-widget/internal/kafka"
	"weather-widget/internal/models"
	"weather-widget/internal/services"
)

// StartWeatherSyncer copies weather published on the updates topic into the cache.
func StartWeatherSyncer(cache services.Cache, consumer *kafka.Consumer, ttl time.Duration) {
	if consumer == nil || cache == nil {
		return
	}
	consumer.Start(WeatherSyncHandler(cache, ttl))
}

func WeatherSyncHandler(cache services.Cache, ttl time.Duration) func(key, value []byte) {
	return func(key, value []byte) {
		if len(key) == 0 {
			log.Println("WeatherSyncer: empty key")
			return
		}
		var weather models.WeatherResponse
		if err := json.Unmarshal(value, &weather); err != nil {
			log.Printf("WeatherSyncer: unmarshal failed: %v", err)
			return
		}
		if weather.City == "" {
			log.Printf("WeatherSyncer: city empty for %s", key)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		redisKey := string(key)
		if err := cache.Set(ctx, redisKey, value, ttl); err != nil {
			log.Printf("WeatherSyncer: failed set %s: %v", redisKey, err)
			return
		}
		log.Printf("Weather cached: %s", redisKey)
	}
}
