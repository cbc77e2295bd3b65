package slider

import "fmt"

// VisitTracker remembers which pages were entered and which were fully shown.
// Visits are permanent for the tracker's lifetime.
type VisitTracker struct {
	entered    []bool
	fullyShown []bool
}

// NewVisitTracker creates a tracker for pageCount pages.
func NewVisitTracker(pageCount int) *VisitTracker {
	if pageCount < 0 {
		panic(fmt.Sprintf("slider: negative page count %d", pageCount))
	}
	return &VisitTracker{
		entered:    make([]bool, pageCount),
		fullyShown: make([]bool, pageCount),
	}
}

// MarkFirstEnter records that page was entered and reports whether this was the first time.
func (v *VisitTracker) MarkFirstEnter(page int) bool {
	v.check(page)
	first := !v.entered[page]
	v.entered[page] = true
	return first
}

// HasEntered reports whether page was entered before.
func (v *VisitTracker) HasEntered(page int) bool {
	v.check(page)
	return v.entered[page]
}

// MarkFirstFullyShown records that page was fully shown and reports whether this was the first time.
func (v *VisitTracker) MarkFirstFullyShown(page int) bool {
	v.check(page)
	first := !v.fullyShown[page]
	v.fullyShown[page] = true
	return first
}

// HasFullyShown reports whether page was fully shown before.
func (v *VisitTracker) HasFullyShown(page int) bool {
	v.check(page)
	return v.fullyShown[page]
}

func (v *VisitTracker) check(page int) {
	if page < 0 || page >= len(v.entered) {
		panic(fmt.Sprintf("slider: page %d outside visit tracker of size %d", page, len(v.entered)))
	}
}
