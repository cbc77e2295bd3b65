package slider

import "fmt"

// Image is an optional background image index. The zero value is NoImage.
type Image struct {
	index int
	set   bool
}

// NoImage requests no background change.
var NoImage = Image{}

// ImageAt returns an Image pointing at index i. Out-of-range values are legal
// and are treated as "no background change" by the presenter.
func ImageAt(i int) Image {
	return Image{index: i, set: true}
}

// Index returns the image index and whether one was given.
func (i Image) Index() (int, bool) {
	return i.index, i.set
}

func (i Image) String() string {
	if !i.set {
		return "none"
	}
	return fmt.Sprintf("%d", i.index)
}

// Bounds holds the page and image counts of a slider.
type Bounds struct {
	PageCount  int
	ImageCount int
}

// IsUnderLowerPageBound reports whether page is before the first page.
func (b Bounds) IsUnderLowerPageBound(page int) bool {
	return page < 0
}

// IsOverUpperPageBound reports whether page is past the last page.
func (b Bounds) IsOverUpperPageBound(page int) bool {
	return page >= b.PageCount
}

// IsInsidePageBounds reports whether page is a valid page index.
func (b Bounds) IsInsidePageBounds(page int) bool {
	return !b.IsUnderLowerPageBound(page) && !b.IsOverUpperPageBound(page)
}

// IsGoingForward reports whether moving from current to page is a forward move inside the bounds.
func (b Bounds) IsGoingForward(page, current int) bool {
	return b.IsInsidePageBounds(page) && page > current
}

// IsGoingBackward reports whether moving from current to page is a backward move inside the bounds.
func (b Bounds) IsGoingBackward(page, current int) bool {
	return b.IsInsidePageBounds(page) && page < current
}

// IsInsideImageBounds reports whether img is set and a valid image index.
func (b Bounds) IsInsideImageBounds(img Image) bool {
	i, ok := img.Index()
	return ok && i >= 0 && i < b.ImageCount
}
