package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifyAndStaleClear(t *testing.T) {
	s := NewAppState()
	first := s.Notify(StatusInfo, "one")
	second := s.Notify(StatusError, "two")

	assert.False(t, s.ClearStatus(first))
	assert.Equal(t, "two", s.StatusMessage)

	assert.True(t, s.ClearStatus(second))
	assert.Empty(t, s.StatusMessage)
	assert.Empty(t, s.StatusKind)
}

func TestCountersRunOnce(t *testing.T) {
	s := NewAppState()
	assert.True(t, s.StartCounters([]int{100, 0}))
	assert.False(t, s.StartCounters([]int{5}))
	assert.Len(t, s.Counters, 2)

	frames := 0
	for s.StepCounters() {
		frames++
		if frames > 200 {
			t.Fatal("counters never finished")
		}
	}
	assert.Equal(t, 100, s.CounterValue(0))
	assert.Equal(t, 0, s.CounterValue(1))
	assert.Equal(t, 0, s.CounterValue(7))
}
