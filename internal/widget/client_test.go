package widget

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientNowParsesServerFormats(t *testing.T) {
	cases := map[string]time.Time{
		`{"now_utc": "2026-10-19T17:45:03.123456+00:00"}`: time.Date(2026, 10, 19, 17, 45, 3, 123456000, time.UTC),
		`{"now_utc": "2026-10-19T17:45:03Z"}`:             time.Date(2026, 10, 19, 17, 45, 3, 0, time.UTC),
		`{"now_utc": "2026-10-19T17:45:00"}`:              time.Date(2026, 10, 19, 17, 45, 0, 0, time.UTC),
		`{"now_utc": "2026-10-19T17:45:00.123456"}`:       time.Date(2026, 10, 19, 17, 45, 0, 123456000, time.UTC),
		`{"now_utc": "2026-10-19 17:45:00Z"}`:             time.Date(2026, 10, 19, 17, 45, 0, 0, time.UTC),
		`{"now_utc": "2026-10-19 17:45:00+02:00"}`:        time.Date(2026, 10, 19, 15, 45, 0, 0, time.UTC),
		`{"now_utc": "2026-10-19 17:45:00"}`:              time.Date(2026, 10, 19, 17, 45, 0, 0, time.UTC),
	}
	for body, want := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/now" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(body))
		}))

		got, err := NewClient(srv.URL+"/", time.Second).Now(context.Background())
		srv.Close()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", body, err)
		}
		if !got.Equal(want) {
			t.Errorf("%s: expected %v, got %v", body, want, got)
		}
	}
}

func TestClientNowRejectsGarbage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"now_utc": "yesterday"}`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, time.Second).Now(context.Background()); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestClientWeatherContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewClient(srv.URL, 5*time.Second).Weather(ctx, "Paris"); !errors.Is(err, ErrRequest) {
		t.Fatalf("expected ErrRequest, got %v", err)
	}
}
