package widget

import (
	"context"
	"log"
	"sync"
	"time"
)

// Ticker is the part of time.Ticker the clock needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.Ticker.C }

func newTimeTicker(d time.Duration) Ticker { return timeTicker{time.NewTicker(d)} }

type NowSource interface {
	Now(ctx context.Context) (time.Time, error)
}

// Clock writes the time of day into a region once per second. At most one
// ticker runs at a time: Start always stops the previous one.
type Clock struct {
	region TextRegion
	format Formatter
	loc    *time.Location

	now       func() time.Time
	newTicker func(time.Duration) Ticker
	interval  time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewClock displays times in loc (time.Local when nil).
func NewClock(region TextRegion, format Formatter, loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{
		region:    region,
		format:    format,
		loc:       loc,
		now:       time.Now,
		newTicker: newTimeTicker,
		interval:  time.Second,
	}
}

// Start runs the clock. A nil base follows the system clock; otherwise the
// display starts at *base and advances exactly one second per tick.
func (c *Clock) Start(base *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()

	var current time.Time
	synced := base != nil
	if synced {
		current = *base
	}
	tick := func() {
		if !synced {
			c.region.SetText(c.format.Clock(c.now().In(c.loc)))
			return
		}
		c.region.SetText(c.format.Clock(current.In(c.loc)))
		current = current.Add(time.Second)
	}

	tick()
	t := c.newTicker(c.interval)
	stop, done := make(chan struct{}), make(chan struct{})
	c.stop, c.done = stop, done

	go func() {
		defer close(done)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C():
				select {
				case <-stop:
					return
				default:
				}
				tick()
			}
		}
	}()
}

// StartServerSynced fetches the base time once and starts the clock from it.
// On failure it falls back to the system clock and returns the fetch error.
func (c *Clock) StartServerSynced(ctx context.Context, src NowSource) error {
	base, err := src.Now(ctx)
	if err != nil {
		log.Printf("server time unavailable, clock follows local time: %v", err)
		c.Start(nil)
		return err
	}
	c.Start(&base)
	return nil
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

func (c *Clock) stopLocked() {
	if c.stop == nil {
		return
	}
	close(c.stop)
	<-c.done
	c.stop, c.done = nil, nil
}
