// Package icons maps short condition codes ("Rain", "Clouds", ...) to the
// SVG files served under /static/weather/.
package icons

import "strings"

const (
	Unknown    = "unknown.svg"
	PathPrefix = "/static/weather/"
)

var byCondition = map[string]string{
	"Thunderstorm": "thunderstorm.svg",
	"Drizzle":      "drizzle.svg",
	"Rain":         "rain.svg",
	"Snow":         "snow.svg",
	"Mist":         "atmosphere.svg",
	"Smoke":        "atmosphere.svg",
	"Haze":         "atmosphere.svg",
	"Dust":         "atmosphere.svg",
	"Fog":          "atmosphere.svg",
	"Sand":         "atmosphere.svg",
	"Ash":          "atmosphere.svg",
	"Clear":        "clear.svg",
	"Clouds":       "clouds.svg",
}

// TitleCase upper-cases the first character and lower-cases the rest.
func TitleCase(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// For returns the icon file for a condition code, or Unknown.
func For(code string) string {
	return ForOr(code, Unknown)
}

func ForOr(code, def string) string {
	if file, ok := byCondition[TitleCase(strings.TrimSpace(code))]; ok {
		return file
	}
	return def
}

// Resolve prefers the server supplied file and falls back to the table.
func Resolve(icon, code string) string {
	if icon != "" {
		return icon
	}
	return For(code)
}

func Path(file string) string {
	return PathPrefix + file
}
