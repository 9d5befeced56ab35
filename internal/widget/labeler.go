package widget

import (
	"fmt"
	"time"
)

// Relation is the calendar relation of a date to today.
type Relation string

const (
	RelNone     Relation = ""
	RelToday    Relation = "Today"
	RelTomorrow Relation = "Tomorrow"
)

type Label struct {
	Rel  Relation
	Text string
}

// Labeler classifies dates as Today/Tomorrow by calendar day, not elapsed time.
type Labeler struct {
	format Formatter
	now    func() time.Time
}

func NewLabeler(format Formatter, now func() time.Time) *Labeler {
	if now == nil {
		now = time.Now
	}
	return &Labeler{format: format, now: now}
}

// Label compares midnights in target's location.
func (l *Labeler) Label(target time.Time) Label {
	today := midnight(l.now().In(target.Location()))
	day := midnight(target)

	switch {
	case day.Equal(today):
		return Label{Rel: RelToday, Text: fmt.Sprintf("%s (%s)", RelToday, l.format.Weekday(target))}
	case day.Equal(today.AddDate(0, 0, 1)):
		return Label{Rel: RelTomorrow, Text: fmt.Sprintf("%s (%s)", RelTomorrow, l.format.Weekday(target))}
	default:
		return Label{Rel: RelNone, Text: l.format.LongDate(target)}
	}
}

// CurrentDate is the text of the current-date region: the relative label
// followed by the short date, or the long date.
func (l *Labeler) CurrentDate(target time.Time) string {
	label := l.Label(target)
	if label.Rel == RelNone {
		return label.Text
	}
	return fmt.Sprintf("%s — %s", label.Text, l.format.ShortDate(target))
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
