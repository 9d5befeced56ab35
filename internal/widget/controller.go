// Package widget is the weather widget: it turns a city name into a rendered
// weather panel, a relative date label and a server-synced clock.
package widget

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"weather-widget/internal/models"
)

type State int

const (
	StatePrompt State = iota
	StateResult
	StateNotFound
)

func (s State) String() string {
	switch s {
	case StatePrompt:
		return "prompt"
	case StateResult:
		return "result"
	case StateNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

type WeatherSource interface {
	NowSource
	Weather(ctx context.Context, city string) (*models.WeatherResponse, error)
}

// Controller reacts to submits and owns the view regions and the clock.
type Controller struct {
	regions  Regions
	source   WeatherSource
	renderer *Renderer
	clock    *Clock

	syncTimeout time.Duration
	latest      atomic.Uint64
	syncs       sync.WaitGroup
	closing     context.Context
	cancel      context.CancelFunc

	mu    sync.Mutex
	state State
}

func NewController(regions Regions, source WeatherSource, renderer *Renderer, clock *Clock) *Controller {
	closing, cancel := context.WithCancel(context.Background())
	c := &Controller{
		closing:     closing,
		cancel:      cancel,
		regions:     regions,
		source:      source,
		renderer:    renderer,
		clock:       clock,
		syncTimeout: 10 * time.Second,
	}
	c.show(StatePrompt)
	return c
}

// Submit looks up input and moves the view to Result or NotFound. Blank input
// returns ErrEmptyInput without any request. When a newer Submit started
// while this one was waiting, its response is dropped with ErrStale.
func (c *Controller) Submit(ctx context.Context, input string) error {
	city := strings.TrimSpace(input)
	if city == "" {
		return ErrEmptyInput
	}

	token := c.latest.Add(1)
	w, err := c.source.Weather(ctx, city)

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.latest.Load() {
		log.Printf("dropping response for %q: superseded", city)
		return ErrStale
	}
	if err != nil {
		c.show(StateNotFound)
		log.Printf("Weather fetch/render failed: %v", err)
		return err
	}

	c.show(StateResult)
	c.renderer.Render(c.regions, w)

	// The sync outlives ctx but not Close.
	syncCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.syncTimeout)
	stop := context.AfterFunc(c.closing, cancel)
	c.syncs.Add(1)
	go func() {
		defer c.syncs.Done()
		defer cancel()
		defer stop()
		c.clock.StartServerSynced(syncCtx, c.source)
	}()
	return nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// WaitClockSync blocks until clock syncs started by earlier submits are done.
func (c *Controller) WaitClockSync() {
	c.syncs.Wait()
}

// Close cancels pending clock syncs, waits for them and stops the clock.
func (c *Controller) Close() {
	c.cancel()
	c.syncs.Wait()
	c.clock.Stop()
}

// show makes exactly one of the three sections visible.
func (c *Controller) show(s State) {
	c.state = s
	c.regions.Prompt.SetVisible(s == StatePrompt)
	c.regions.Result.SetVisible(s == StateResult)
	c.regions.NotFound.SetVisible(s == StateNotFound)
}

// IsNotFound reports whether err should surface as the not-found view.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRequest) || errors.Is(err, ErrParse)
}
