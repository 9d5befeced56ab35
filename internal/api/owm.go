package api

import (
	"sort"
	"strconv"
	"time"

	"weather-widget/internal/icons"
	"weather-widget/internal/models"
)

type condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type currentResponse struct {
	Name     string      `json:"name"`
	Dt       int64       `json:"dt"`
	Timezone int64       `json:"timezone"`
	Weather  []condition `json:"weather"`
	Sys      struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type forecastItem struct {
	Dt      int64       `json:"dt"`
	DtTxt   string      `json:"dt_txt"`
	Weather []condition `json:"weather"`
	Main    struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

type forecastResponse struct {
	List []forecastItem `json:"list"`
}

func firstCondition(list []condition) condition {
	if len(list) == 0 {
		return condition{}
	}
	return list[0]
}

func (c currentResponse) toModel(requested string) *models.WeatherResponse {
	w0 := firstCondition(c.Weather)
	main := tcase(w0.Main)
	desc := w0.Description
	if desc == "" {
		desc = main
	}

	city := c.Name
	if city == "" {
		city = requested
	}
	return &models.WeatherResponse{
		City:          city,
		Country:       c.Sys.Country,
		DateTS:        models.Number(float64(c.Dt)),
		TimezoneShift: models.Number(float64(c.Timezone)),
		Temp:          c.Main.Temp,
		Humidity:      c.Main.Humidity,
		Wind:          c.Wind.Speed,
		Condition:     main,
		ConditionDesc: tcase(desc),
		Icon:          icons.For(main),
	}
}

func (f forecastItem) toModel() models.ForecastEntry {
	main := tcase(firstCondition(f.Weather).Main)
	return models.ForecastEntry{
		DateTS:    models.Number(float64(f.Dt)),
		Temp:      f.Main.Temp,
		Condition: main,
		Icon:      icons.For(main),
	}
}

// dayKeyHour returns the YYYY-MM-DD key and hour of an entry, preferring dt_txt.
func (f forecastItem) dayKeyHour() (string, int) {
	if len(f.DtTxt) >= 13 {
		if h, err := strconv.Atoi(f.DtTxt[11:13]); err == nil {
			return f.DtTxt[:10], h
		}
	}
	t := time.Unix(f.Dt, 0).UTC()
	if len(f.DtTxt) >= 10 {
		return f.DtTxt[:10], t.Hour()
	}
	return t.Format(time.DateOnly), t.Hour()
}

func localDayKey(dt, shift int64) string {
	return time.Unix(dt+shift, 0).UTC().Format(time.DateOnly)
}

// pickNoon keeps, for each day after todayKey, the entry closest to 12:00,
// and returns at most limit of them in date order.
func pickNoon(items []forecastItem, todayKey string, limit int) []forecastItem {
	type scored struct {
		score int
		item  forecastItem
	}
	byDay := make(map[string]scored)
	for _, it := range items {
		key, hour := it.dayKeyHour()
		score := hour - 12
		if score < 0 {
			score = -score
		}
		if prev, ok := byDay[key]; !ok || score < prev.score {
			byDay[key] = scored{score: score, item: it}
		}
	}

	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		if k > todayKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if len(keys) > limit {
		keys = keys[:limit]
	}

	out := make([]forecastItem, 0, len(keys))
	for _, k := range keys {
		out = append(out, byDay[k].item)
	}
	return out
}
