package widget

import (
	"log"
	"math"
	"strconv"
	"time"

	"github.com/goodsign/monday"
)

const (
	layoutWeekday   = "Monday"
	layoutShortDate = "Jan 02, 2006"
	layoutLongDate  = "Monday, Jan 02, 2006"
	layoutClock     = "15:04"
)

// Formatter renders dates with localized day and month names.
type Formatter struct {
	locale monday.Locale
}

// NewFormatter returns a formatter for a locale such as "en_US" or "de_DE".
// Unsupported locales fall back to en_US.
func NewFormatter(locale string) Formatter {
	l := monday.Locale(locale)
	for _, known := range monday.ListLocales() {
		if known == l {
			return Formatter{locale: l}
		}
	}
	if locale != "" {
		log.Printf("unsupported locale %q, using en_US", locale)
	}
	return Formatter{locale: monday.LocaleEnUS}
}

func (f Formatter) Weekday(t time.Time) string {
	return monday.Format(t, layoutWeekday, f.locale)
}

func (f Formatter) ShortDate(t time.Time) string {
	return monday.Format(t, layoutShortDate, f.locale)
}

func (f Formatter) LongDate(t time.Time) string {
	return monday.Format(t, layoutLongDate, f.locale)
}

func (f Formatter) Clock(t time.Time) string {
	return t.Format(layoutClock)
}

// roundHalfUp rounds to the nearest integer with halves going up (-2.5 -> -2).
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

func formatTemp(c float64) string {
	return strconv.FormatInt(roundHalfUp(c), 10) + "°C"
}

func formatHumidity(h float64) string {
	return strconv.FormatInt(roundHalfUp(h), 10) + "%"
}

// formatWind keeps one decimal, ties rounded up like the temperature.
func formatWind(ms float64) string {
	return strconv.FormatFloat(math.Floor(ms*10+0.5)/10, 'f', 1, 64) + " m/s"
}
