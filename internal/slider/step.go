package slider

import "fmt"

// Step is the navigation currently in flight. A nil Step means nothing is pending.
// The concrete types are Advance and Finish.
type Step interface {
	isStep()
	fmt.Stringer
}

// Advance moves the slider to Page and, optionally, to background Image.
type Advance struct {
	Page  int
	Image Image
}

// Finish plays an exit animation and then reports the flow as finished.
type Finish struct{}

func (Advance) isStep() {}
func (Finish) isStep()  {}

func (a Advance) String() string {
	return fmt.Sprintf("advance(page=%d, image=%s)", a.Page, a.Image)
}

func (Finish) String() string {
	return "finish"
}

// stepName renders a possibly nil step for logs.
func stepName(s Step) string {
	if s == nil {
		return "none"
	}
	return s.String()
}
