package handlers

import (
	"net/http"
	"time"

	"weather-widget/internal/models"
)

type NowHandler struct {
	now func() time.Time
}

func NewNowHandler(now func() time.Time) *NowHandler {
	if now == nil {
		now = time.Now
	}
	return &NowHandler{now: now}
}

// GetNow serves GET /api/now.
func (h *NowHandler) GetNow(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ServerTime{NowUTC: h.now().UTC().Format(time.RFC3339Nano)})
}
