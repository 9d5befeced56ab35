package widget

import "time"

type Options struct {
	APIURL        string
	Locale        string
	ForecastSlots int
	Timeout       time.Duration
	// Location is where the clock is displayed; time.Local when nil.
	Location *time.Location
}

// Widget wires a Controller to an in-memory view and the HTTP backend.
type Widget struct {
	*Controller
	View *MemoryView
}

func New(o Options) *Widget {
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	format := NewFormatter(o.Locale)
	view := NewMemoryView(o.ForecastSlots)
	regions := view.Regions()

	return &Widget{
		Controller: NewController(
			regions,
			NewClient(o.APIURL, o.Timeout),
			NewRenderer(format, time.Now),
			NewClock(regions.Time, format, o.Location),
		),
		View: view,
	}
}
