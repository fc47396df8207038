package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarouselMaxIndex(t *testing.T) {
	assert.Equal(t, 5, NewCarouselState(8, 3).MaxIndex())
	assert.Equal(t, 3, NewCarouselState(6, 3).MaxIndex())
	assert.Equal(t, 0, NewCarouselState(2, 3).MaxIndex())
	assert.Equal(t, 0, NewCarouselState(0, 3).MaxIndex())
	assert.Equal(t, 1, NewCarouselState(2, 0).VisibleCount)
}

func TestCarouselNextWrapsFromLastPage(t *testing.T) {
	s := NewCarouselState(8, 3)
	s.Index = 5

	next, err := Advance(s, DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, 0, next.Index)
}

func TestCarouselPrevWrapsFromFirstPage(t *testing.T) {
	next, err := Advance(NewCarouselState(8, 3), DirectionPrev)
	require.NoError(t, err)
	assert.Equal(t, 5, next.Index)

	next, err = Advance(next, DirectionPrev)
	require.NoError(t, err)
	assert.Equal(t, 4, next.Index)
}

func TestCarouselFullCycleReturnsToStart(t *testing.T) {
	for items := 0; items <= 10; items++ {
		for visible := 1; visible <= 4; visible++ {
			for _, d := range []Direction{DirectionNext, DirectionPrev} {
				s := NewCarouselState(items, visible)
				steps := s.MaxIndex() + 1
				var err error
				for i := 0; i < steps; i++ {
					s, err = Advance(s, d)
					require.NoError(t, err)
					require.GreaterOrEqual(t, s.Index, 0)
					require.LessOrEqual(t, s.Index, s.MaxIndex())
				}
				assert.Equal(t, 0, s.Index, "items=%d visible=%d dir=%s", items, visible, d)
			}
		}
	}
}

func TestCarouselBusyIsIdempotent(t *testing.T) {
	s := NewCarouselState(8, 3)
	s.Index = 2
	s = s.Locked()

	for _, d := range []Direction{DirectionNext, DirectionPrev, DirectionNext} {
		got, err := Advance(s, d)
		assert.ErrorIs(t, err, ErrCarouselBusy)
		assert.Equal(t, s, got)
	}

	unlocked, err := Advance(s.Unlocked(), DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, 3, unlocked.Index)
	assert.False(t, unlocked.IsTransitioning, "advance never takes the lock itself")
}

func TestCarouselEmptyIsNoOp(t *testing.T) {
	s := NewCarouselState(0, 3)
	for _, d := range []Direction{DirectionNext, DirectionPrev} {
		got, err := Advance(s, d)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Index)
	}
	assert.False(t, s.Scrollable())
}

func TestCarouselUnknownDirection(t *testing.T) {
	s := NewCarouselState(8, 3)
	got, err := Advance(s, Direction("up"))
	assert.ErrorIs(t, err, ErrUnknownDirection)
	assert.Equal(t, s, got)
}

func TestCarouselOutOfRangeIndexIsClamped(t *testing.T) {
	tests := []struct {
		name  string
		index int
		dir   Direction
		want  int
	}{
		{"prev above max", 7, DirectionPrev, 4},
		{"next above max", 7, DirectionNext, 0},
		{"prev below zero", -2, DirectionPrev, 5},
		{"next below zero", -2, DirectionNext, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := CarouselState{Index: tt.index, ItemCount: 8, VisibleCount: 3}
			got, err := Advance(s, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Index)
			assert.LessOrEqual(t, got.Index, got.MaxIndex())
			assert.GreaterOrEqual(t, got.Index, 0)
		})
	}
}

func TestCarouselResetAndWindow(t *testing.T) {
	s := NewCarouselState(6, 3)
	s.Index = 3

	start, end := s.Window()
	assert.Equal(t, 3, start)
	assert.Equal(t, 6, end)

	s = s.Reset()
	assert.Equal(t, 0, s.Index)
	start, end = s.Window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	short := NewCarouselState(2, 3)
	start, end = short.Window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
}

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		end    int
		want   Direction
		wantOK bool
	}{
		{"drag left pages forward", 300, 200, DirectionNext, true},
		{"drag right pages back", 100, 220, DirectionPrev, true},
		{"short drag ignored", 100, 140, "", false},
		{"exactly threshold ignored", 100, 50, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SwipeDirection(tt.start, tt.end, 50)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
