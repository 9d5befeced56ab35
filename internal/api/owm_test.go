package api

import "testing"

func TestPickNoonLimitAndOrder(t *testing.T) {
	var items []forecastItem
	for _, txt := range []string{
		"2025-10-25 12:00:00", "2025-10-20 00:00:00", "2025-10-21 15:00:00", "2025-10-21 09:00:00",
		"2025-10-22 12:00:00", "2025-10-23 12:00:00", "2025-10-24 12:00:00", "2025-10-19 12:00:00",
	} {
		items = append(items, forecastItem{DtTxt: txt})
	}

	got := pickNoon(items, "2025-10-19", 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 days, got %d", len(got))
	}
	want := []string{"2025-10-20 00:00:00", "2025-10-21 15:00:00", "2025-10-22 12:00:00", "2025-10-23 12:00:00", "2025-10-24 12:00:00"}
	for i, w := range want {
		if got[i].DtTxt != w {
			t.Errorf("slot %d: expected %s, got %s", i, w, got[i].DtTxt)
		}
	}
}

func TestDayKeyHourFallsBackToTimestamp(t *testing.T) {
	// 2025-10-20 15:00 UTC
	key, hour := forecastItem{Dt: 1760972400}.dayKeyHour()
	if key != "2025-10-20" || hour != 15 {
		t.Errorf("expected 2025-10-20/15, got %s/%d", key, hour)
	}
}

func TestLocalDayKey(t *testing.T) {
	// 2025-10-19 22:00 UTC is already the 20th at UTC+5.
	if got := localDayKey(1760911200, 5*3600); got != "2025-10-20" {
		t.Errorf("expected 2025-10-20, got %s", got)
	}
	if got := localDayKey(1760911200, 0); got != "2025-10-19" {
		t.Errorf("expected 2025-10-19, got %s", got)
	}
}
