package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"weather-widget/internal/widget"
)

func TestClockUpdate(t *testing.T) {
	cases := []struct {
		name  string
		snap  widget.Snapshot
		shown string
		want  string
		ok    bool
	}{
		{"prompt", widget.Snapshot{PromptVisible: true, Time: "10:01"}, "10:00", "10:00", false},
		{"unchanged", widget.Snapshot{ResultVisible: true, Time: "10:00"}, "10:00", "10:00", false},
		{"not synced yet", widget.Snapshot{ResultVisible: true}, "", "", false},
		{"ticked", widget.Snapshot{ResultVisible: true, Time: "10:01"}, "10:00", "10:01", true},
		{"first time", widget.Snapshot{ResultVisible: true, Time: "10:00"}, "", "10:00", true},
	}
	for _, c := range cases {
		got, ok := clockUpdate(c.snap, c.shown)
		if got != c.want || ok != c.ok {
			t.Errorf("%s: expected (%q, %v), got (%q, %v)", c.name, c.want, c.ok, got, ok)
		}
	}
}

func TestPrintViewShowsSyncedTime(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/weather", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"city": "Paris", "temp": 21.6, "condition": "Clear", "humidity": 40, "wind": 3}`))
	})
	mux.HandleFunc("/api/now", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"now_utc": "2026-10-19T17:45:00+00:00"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	w := widget.New(widget.Options{APIURL: srv.URL, Locale: "en_US", ForecastSlots: 2, Location: time.UTC})
	defer w.Close()

	if err := w.Submit(context.Background(), "Paris"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.WaitClockSync()

	var out bytes.Buffer
	printView(&out, w)
	if !strings.Contains(out.String(), "17:45") {
		t.Errorf("expected the synced time in the output, got:\n%s", out.String())
	}
}
