package widget

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-widget/internal/models"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Client calls the widget backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Weather fetches GET /api/weather?city=<city>.
func (c *Client) Weather(ctx context.Context, city string) (*models.WeatherResponse, error) {
	var w models.WeatherResponse
	if err := c.getJSON(ctx, "widget.weather", "/api/weather?city="+url.QueryEscape(city), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// Now fetches GET /api/now and parses its timestamp.
func (c *Client) Now(ctx context.Context) (time.Time, error) {
	var st models.ServerTime
	if err := c.getJSON(ctx, "widget.now", "/api/now", &st); err != nil {
		return time.Time{}, err
	}
	t, err := parseServerTime(st.NowUTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: now_utc %q: %w", ErrParse, st.NowUTC, err)
	}
	return t, nil
}

// serverTimeLayouts are tried in order. Layouts without a zone read as UTC.
var serverTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

func parseServerTime(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range serverTimeLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func (c *Client) getJSON(ctx context.Context, spanName, path string, out any) error {
	ctx, span := otel.Tracer("weather-widget/widget").Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrRequest, err)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: HTTP %d", ErrRequest, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}
