package availability

// Occupancy is an existing booking seen by the checker.
type Occupancy struct {
	Window        Window
	HoldsCapacity bool
}

type Result struct {
	TotalSpots  int
	Overlapping int
	Remaining   int
}

func (r Result) Available() bool {
	return r.Remaining > 0
}

// Evaluate counts capacity-holding occupancies overlapping w.
func Evaluate(totalSpots int, w Window, occupancies []Occupancy) Result {
	overlapping := 0
	for _, o := range occupancies {
		if o.HoldsCapacity && o.Window.Overlaps(w) {
			overlapping++
		}
	}
	return Result{
		TotalSpots:  totalSpots,
		Overlapping: overlapping,
		Remaining:   totalSpots - overlapping,
	}
}
