package availability

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("window start must be before end")

// Window is the half-open interval [start, end).
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time        { return w.start }
func (w Window) End() time.Time          { return w.end }
func (w Window) Duration() time.Duration { return w.end.Sub(w.start) }

// Overlaps uses strict comparisons so windows sharing only a boundary
// instant do not contend.
func (w Window) Overlaps(o Window) bool {
	return w.start.Before(o.end) && o.start.Before(w.end)
}
