package logic

import "errors"

// Direction is a carousel move
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// DefaultVisibleCount is how many cards fit on screen at once
const DefaultVisibleCount = 3

var (
	// ErrCarouselBusy is returned while a previous move is still settling.
	ErrCarouselBusy = errors.New("carousel is transitioning")
	// ErrUnknownDirection is returned for anything but next or prev.
	ErrUnknownDirection = errors.New("unknown carousel direction")
)

// CarouselState is the paging position of a sliding window over ItemCount
// items. Index always stays within [0, MaxIndex()].
type CarouselState struct {
	Index           int
	ItemCount       int
	VisibleCount    int
	IsTransitioning bool
}

// NewCarouselState starts at the first page. A visible count below one is
// treated as one.
func NewCarouselState(itemCount, visibleCount int) CarouselState {
	if itemCount < 0 {
		itemCount = 0
	}
	if visibleCount < 1 {
		visibleCount = 1
	}
	return CarouselState{ItemCount: itemCount, VisibleCount: visibleCount}
}

// MaxIndex is the last valid page index
func (s CarouselState) MaxIndex() int {
	return max(0, s.ItemCount-s.VisibleCount)
}

// Scrollable reports whether there is more than one page
func (s CarouselState) Scrollable() bool {
	return s.MaxIndex() > 0
}

// Advance moves one page in direction, wrapping at both ends. It is a no-op
// returning ErrCarouselBusy while the transition lock is held. Setting and
// clearing the lock is the caller's job. An out-of-range index is clamped
// into [0, MaxIndex] before stepping.
func Advance(s CarouselState, d Direction) (CarouselState, error) {
	if s.IsTransitioning {
		return s, ErrCarouselBusy
	}

	maxIndex := s.MaxIndex()
	index := min(max(s.Index, 0), maxIndex)
	switch d {
	case DirectionNext:
		index = (index + 1) % (maxIndex + 1)
	case DirectionPrev:
		if index == 0 {
			index = maxIndex
		} else {
			index--
		}
	default:
		return s, ErrUnknownDirection
	}
	s.Index = index
	return s, nil
}

// Locked returns s with the transition lock held
func (s CarouselState) Locked() CarouselState {
	s.IsTransitioning = true
	return s
}

// Unlocked returns s with the transition lock released
func (s CarouselState) Unlocked() CarouselState {
	s.IsTransitioning = false
	return s
}

// Reset goes back to the first page, as after a viewport resize
func (s CarouselState) Reset() CarouselState {
	s.Index = 0
	return s
}

// Window is the half-open range of item indexes currently visible
func (s CarouselState) Window() (start, end int) {
	start = s.Index
	end = min(s.Index+s.VisibleCount, s.ItemCount)
	if start > end {
		start = end
	}
	return start, end
}

// SwipeDirection turns a horizontal drag into a move. Dragging left (towards
// smaller x) pages forward. Drags shorter than threshold are ignored.
func SwipeDirection(startX, endX, threshold int) (Direction, bool) {
	diff := startX - endX
	if diff > threshold {
		return DirectionNext, true
	}
	if -diff > threshold {
		return DirectionPrev, true
	}
	return "", false
}
