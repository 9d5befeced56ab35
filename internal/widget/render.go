package widget

import (
	"strings"
	"time"

	"weather-widget/internal/icons"
	"weather-widget/internal/models"
)

// Renderer writes a WeatherResponse into the result regions. Given the same
// response and the same current time it always produces the same view.
type Renderer struct {
	format  Formatter
	labeler *Labeler
	now     func() time.Time
}

func NewRenderer(format Formatter, now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{format: format, labeler: NewLabeler(format, now), now: now}
}

func (r *Renderer) Render(v Regions, w *models.WeatherResponse) {
	loc := cityZone(w.ShiftOr(0))
	local := w.TimestampOr(r.now()).In(loc)

	v.Location.SetText(locationText(w.City, w.Country))
	v.Date.SetText(r.labeler.CurrentDate(local))

	desc := w.ConditionDesc
	if desc == "" {
		desc = w.Condition
	}
	condition := icons.TitleCase(desc)

	v.Temp.SetText(formatTemp(w.Temp))
	v.Condition.SetText(condition)
	v.Humidity.SetText(formatHumidity(w.Humidity))
	v.Wind.SetText(formatWind(w.Wind))
	v.ConditionImage.SetImage(icons.Path(icons.Resolve(w.Icon, w.Condition)), condition)

	for i, slot := range v.Slots {
		if i >= len(w.Forecast) {
			slot.Card.SetVisible(false)
			continue
		}
		f := w.Forecast[i]
		day := models.TimestampOr(f.DateTS, time.Unix(0, 0)).In(loc)

		slot.Card.SetVisible(true)
		slot.Weekday.SetText(r.format.Weekday(day))
		slot.Date.SetText(r.format.ShortDate(day))
		slot.Image.SetImage(icons.Path(icons.Resolve(f.Icon, f.Condition)), f.Condition)
		slot.Temp.SetText(formatTemp(f.Temp))
	}
}

// locationText joins city and country, leaving out empty parts.
func locationText(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

// cityZone is a fixed zone for a UTC offset as reported by the backend.
func cityZone(shift time.Duration) *time.Location {
	return time.FixedZone("", int(shift/time.Second))
}
