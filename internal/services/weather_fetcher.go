package services

import (
	"context"
	"strings"

	"weather-widget/internal/models"
)

type WeatherSource interface {
	FetchWeather(ctx context.Context, city string) (*models.WeatherResponse, error)
}

type WeatherFetcher struct {
	Source WeatherSource
}

func WeatherCacheKey(city string) string {
	return "weather:" + strings.ToLower(strings.TrimSpace(city))
}

func (WeatherFetcher) CacheKey(params ...string) string {
	return WeatherCacheKey(params[0])
}

func (f WeatherFetcher) Fetch(ctx context.Context, params ...string) (*models.WeatherResponse, error) {
	return f.Source.FetchWeather(ctx, strings.TrimSpace(params[0]))
}
