package widget

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avast/retry-go/v4"
)

type fakeTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopped.Store(true) }

type tickerFactory struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (tf *tickerFactory) new(time.Duration) Ticker {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	t := &fakeTicker{ch: make(chan time.Time)}
	tf.tickers = append(tf.tickers, t)
	return t
}

func (tf *tickerFactory) get(i int) *fakeTicker {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return tf.tickers[i]
}

func (tf *tickerFactory) count() int {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return len(tf.tickers)
}

func newTestClock(now func() time.Time) (*Clock, *Text, *tickerFactory) {
	region := &Text{}
	tf := &tickerFactory{}
	c := NewClock(region, NewFormatter("en_US"), time.UTC)
	c.newTicker = tf.new
	if now != nil {
		c.now = now
	}
	return c, region, tf
}

func waitText(t *testing.T, region *Text, want string) {
	t.Helper()
	err := retry.Do(
		func() error {
			if got := region.String(); got != want {
				return errors.New("clock shows " + got)
			}
			return nil
		},
		retry.Attempts(50),
		retry.Delay(10*time.Millisecond),
		retry.DelayType(retry.FixedDelay),
	)
	if err != nil {
		t.Fatalf("expected clock to show %s: %v", want, err)
	}
}

func TestClockServerSyncedAdvancesOneSecondPerTick(t *testing.T) {
	c, region, tf := newTestClock(nil)
	defer c.Stop()

	base := time.Date(2026, 10, 19, 9, 59, 58, 0, time.UTC)
	c.Start(&base)
	if got := region.String(); got != "09:59" {
		t.Fatalf("expected 09:59 immediately, got %s", got)
	}

	tk := tf.get(0)
	tk.ch <- time.Now() // 09:59:59
	tk.ch <- time.Now() // 10:00:00
	waitText(t, region, "10:00")
}

func TestClockFreeRunningFollowsSystemClock(t *testing.T) {
	var now atomic.Value
	now.Store(time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC))
	c, region, tf := newTestClock(func() time.Time { return now.Load().(time.Time) })
	defer c.Stop()

	c.Start(nil)
	if got := region.String(); got != "14:30" {
		t.Fatalf("expected 14:30, got %s", got)
	}

	now.Store(time.Date(2026, 10, 19, 14, 31, 0, 0, time.UTC))
	tf.get(0).ch <- time.Now()
	waitText(t, region, "14:31")
}

func TestClockRestartLeavesOneTicker(t *testing.T) {
	c, region, tf := newTestClock(nil)
	defer c.Stop()

	first := time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)
	second := time.Date(2026, 10, 19, 2, 0, 0, 0, time.UTC)
	c.Start(&first)
	c.Start(&second)

	if tf.count() != 2 {
		t.Fatalf("expected 2 tickers created, got %d", tf.count())
	}
	if !tf.get(0).stopped.Load() {
		t.Error("expected first ticker to be stopped")
	}
	if tf.get(1).stopped.Load() {
		t.Error("expected second ticker to be running")
	}
	if got := region.String(); got != "02:00" {
		t.Errorf("expected 02:00 from second base, got %s", got)
	}

	select {
	case tf.get(0).ch <- time.Now():
		t.Error("first ticker is still being read")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestClockStop(t *testing.T) {
	c, _, tf := newTestClock(nil)

	c.Start(nil)
	if !c.Running() {
		t.Fatal("expected clock to run")
	}
	c.Stop()
	if c.Running() {
		t.Error("expected clock to be stopped")
	}
	if !tf.get(0).stopped.Load() {
		t.Error("expected ticker to be stopped")
	}
	c.Stop()
}

type nowFunc func(ctx context.Context) (time.Time, error)

func (f nowFunc) Now(ctx context.Context) (time.Time, error) { return f(ctx) }

func TestStartServerSynced(t *testing.T) {
	c, region, _ := newTestClock(func() time.Time { return time.Date(2026, 10, 19, 5, 0, 0, 0, time.UTC) })
	defer c.Stop()

	server := time.Date(2026, 10, 19, 17, 45, 0, 0, time.UTC)
	err := c.StartServerSynced(context.Background(), nowFunc(func(context.Context) (time.Time, error) {
		return server, nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := region.String(); got != "17:45" {
		t.Errorf("expected server time 17:45, got %s", got)
	}
}

func TestStartServerSyncedFallsBack(t *testing.T) {
	c, region, _ := newTestClock(func() time.Time { return time.Date(2026, 10, 19, 5, 0, 0, 0, time.UTC) })
	defer c.Stop()

	err := c.StartServerSynced(context.Background(), nowFunc(func(context.Context) (time.Time, error) {
		return time.Time{}, ErrRequest
	}))
	if !errors.Is(err, ErrRequest) {
		t.Fatalf("expected ErrRequest, got %v", err)
	}
	if !c.Running() {
		t.Fatal("expected clock to keep running on local time")
	}
	if got := region.String(); got != "05:00" {
		t.Errorf("expected local time 05:00, got %s", got)
	}
}
