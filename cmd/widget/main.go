package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"weather-widget/internal/config"
	"weather-widget/internal/tracing"
	"weather-widget/internal/widget"
)

func main() {
	cfg := config.Load()

	apiURL := flag.String("api", cfg.WidgetAPIURL, "backend base URL")
	locale := flag.String("locale", cfg.WidgetLocale, "locale for weekday and month names")
	slots := flag.Int("slots", cfg.WidgetForecastSlots, "number of forecast cards")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	shutdownTracing, err := tracing.Setup("weather-widget", cfg.ZipkinURL)
	if err != nil {
		log.Fatalf("Tracing setup failed: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("Tracing shutdown error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := widget.New(widget.Options{
		APIURL:        *apiURL,
		Locale:        *locale,
		ForecastSlots: *slots,
		Timeout:       *timeout,
	})
	defer w.Close()

	printView(os.Stdout, w)

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	refresh := time.NewTicker(time.Second)
	defer refresh.Stop()
	shown := ""

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			err := w.Submit(ctx, line)
			if errors.Is(err, widget.ErrEmptyInput) {
				continue
			}
			w.WaitClockSync()
			printView(os.Stdout, w)
			shown = w.View.Snapshot().Time
		case <-refresh.C:
			if t, ok := clockUpdate(w.View.Snapshot(), shown); ok {
				shown = t
				fmt.Fprintf(os.Stdout, "Time %s\n", t)
			}
		}
	}
}

// clockUpdate reports the time to print when the result is on screen and
// its clock moved since shown.
func clockUpdate(s widget.Snapshot, shown string) (string, bool) {
	if !s.ResultVisible || s.Time == "" || s.Time == shown {
		return shown, false
	}
	return s.Time, true
}

// printView writes the visible section of the view.
func printView(out io.Writer, w *widget.Widget) {
	s := w.View.Snapshot()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	switch {
	case s.PromptVisible:
		fmt.Fprintln(tw, "Enter a city:")
	case s.NotFoundVisible:
		fmt.Fprintln(tw, "City not found.")
	case s.ResultVisible:
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Location, s.Date, s.Time)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Temp, s.Condition, s.ConditionImage.Src)
		fmt.Fprintf(tw, "Humidity %s\tWind %s\t\n", s.Humidity, s.Wind)
		for _, slot := range s.Slots {
			if !slot.Visible {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", slot.Weekday, slot.Date, slot.Temp, slot.Image.Src)
		}
	}
}
