package models

import (
	"bytes"
	"encoding/json"
	"math"
	"time"
)

// WeatherResponse is the body of GET /api/weather.
type WeatherResponse struct {
	City          string          `json:"city"`
	Country       string          `json:"country,omitempty"`
	DateTS        OptionalNumber  `json:"date_ts"`
	TimezoneShift OptionalNumber  `json:"timezone_shift"`
	Temp          float64         `json:"temp"`
	Condition     string          `json:"condition"`
	ConditionDesc string          `json:"condition_desc,omitempty"`
	Humidity      float64         `json:"humidity"`
	Wind          float64         `json:"wind"`
	Icon          string          `json:"icon,omitempty"`
	Forecast      []ForecastEntry `json:"forecast"`
}

type ForecastEntry struct {
	DateTS    OptionalNumber `json:"date_ts"`
	Condition string         `json:"condition"`
	Icon      string         `json:"icon,omitempty"`
	Temp      float64        `json:"temp"`
}

// ServerTime is the body of GET /api/now.
type ServerTime struct {
	NowUTC string `json:"now_utc"`
}

// OptionalNumber is a JSON number that may be missing. null, strings and
// other non-numeric values decode as unset rather than failing the body.
type OptionalNumber struct {
	Value float64
	Set   bool
}

func Number(v float64) OptionalNumber {
	return OptionalNumber{Value: v, Set: true}
}

func (n *OptionalNumber) UnmarshalJSON(data []byte) error {
	*n = OptionalNumber{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == 'n' || data[0] == '"' || data[0] == '{' || data[0] == '[' || data[0] == 't' || data[0] == 'f' {
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	n.Value, n.Set = v, true
	return nil
}

func (n OptionalNumber) MarshalJSON() ([]byte, error) {
	if !n.Set || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Or returns the value when it is set and finite, def otherwise.
func (n OptionalNumber) Or(def float64) float64 {
	if !n.Set || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return def
	}
	return n.Value
}

// ShiftOr returns the timezone shift in seconds, or def when absent.
func (r WeatherResponse) ShiftOr(def time.Duration) time.Duration {
	if !r.TimezoneShift.Set {
		return def
	}
	return time.Duration(r.TimezoneShift.Or(def.Seconds()) * float64(time.Second))
}

// TimestampOr returns date_ts as a UTC instant, or now when absent.
func (r WeatherResponse) TimestampOr(now time.Time) time.Time {
	return TimestampOr(r.DateTS, now)
}

func TimestampOr(n OptionalNumber, def time.Time) time.Time {
	if !n.Set {
		return def
	}
	v := n.Or(math.NaN())
	if math.IsNaN(v) {
		return def
	}
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}
