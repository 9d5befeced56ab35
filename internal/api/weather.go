package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-widget/internal/icons"
	"weather-widget/internal/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	requestTimeout = 12 * time.Second
	forecastDays   = 5
)

// ErrNotFound is returned when OpenWeatherMap has no current weather for the city.
var ErrNotFound = errors.New("city not found")

// Client talks to OpenWeatherMap and shapes its answers into models.WeatherResponse.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client allowing rps upstream requests per second with a burst of 5.
func NewClient(apiKey, baseURL string, rps float64) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(rps), 5),
	}
}

// FetchWeather returns current conditions for city plus up to five midday
// forecast entries, one per upcoming local day.
func (c *Client) FetchWeather(ctx context.Context, city string) (*models.WeatherResponse, error) {
	ctx, span := otel.Tracer("weather-widget/api").Start(ctx, "owm.fetch-weather", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("city", city))

	w, err := c.fetchWeather(ctx, city)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return w, nil
}

func (c *Client) fetchWeather(ctx context.Context, city string) (*models.WeatherResponse, error) {
	var cur currentResponse
	status, err := c.get(ctx, "/weather", city, &cur)
	if err != nil {
		return nil, fmt.Errorf("current weather: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("current weather (HTTP %d): %w", status, ErrNotFound)
	}

	w := cur.toModel(city)

	var fc forecastResponse
	status, err = c.get(ctx, "/forecast", city, &fc)
	if err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}
	w.Forecast = []models.ForecastEntry{}
	if status == http.StatusOK {
		todayKey := localDayKey(cur.Dt, cur.Timezone)
		for _, it := range pickNoon(fc.List, todayKey, forecastDays) {
			w.Forecast = append(w.Forecast, it.toModel())
		}
	}
	return w, nil
}

// get decodes the body into out only for 200 responses.
func (c *Client) get(ctx context.Context, path, city string, out any) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return 0, fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("invalid JSON format: %w", err)
	}
	return resp.StatusCode, nil
}

// tcase title-cases a condition and reports "Unknown" for empty input.
func tcase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Unknown"
	}
	return icons.TitleCase(s)
}
