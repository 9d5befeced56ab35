package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"weather-widget/internal/api"
	"weather-widget/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
)

type WeatherGetter interface {
	Get(ctx context.Context, params ...string) (*models.WeatherResponse, error)
}

type WeatherHandler struct {
	weatherService WeatherGetter
}

func NewWeatherHandler(weatherService WeatherGetter) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

// GetWeather serves GET /api/weather?city=<name>.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := otel.Tracer("weather-widget/handlers").Start(ctx, "GET /api/weather")
	defer span.End()

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No city provided"})
		return
	}
	span.SetAttributes(attribute.String("city", city))

	weather, err := h.weatherService.Get(ctx, city)
	if errors.Is(err, api.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not Found"})
		return
	}
	if err != nil {
		log.Printf("weather lookup for %s failed (request %s): %v", city, middleware.GetReqID(r.Context()), err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Parsing failed", "details": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, weather)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}
