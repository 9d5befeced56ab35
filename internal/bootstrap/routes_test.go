package bootstrap

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"weather-widget/internal/handlers"
	"weather-widget/internal/models"
)

type fixedWeather struct{}

func (fixedWeather) Get(_ context.Context, params ...string) (*models.WeatherResponse, error) {
	return &models.WeatherResponse{City: params[0]}, nil
}

func TestInitRoutes(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "weather"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "weather", "rain.svg"), []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := InitRoutes(
		handlers.NewWeatherHandler(fixedWeather{}),
		handlers.NewNowHandler(func() time.Time { return time.Unix(0, 0) }),
		dir,
	)
	srv := httptest.NewServer(r)
	defer srv.Close()

	cases := map[string]int{
		"/":                        http.StatusOK,
		"/api/weather?city=Paris":  http.StatusOK,
		"/api/weather":             http.StatusBadRequest,
		"/api/now":                 http.StatusOK,
		"/static/weather/rain.svg": http.StatusOK,
		"/static/weather/nope.svg": http.StatusNotFound,
	}
	for path, want := range cases {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode != want {
			t.Errorf("%s: expected %d, got %d", path, want, resp.StatusCode)
		}
	}
}
