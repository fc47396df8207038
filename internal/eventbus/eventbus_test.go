package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careergranny/internal/domain"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan SectionShownEvent, 1)
	b.Subscribe(EventSectionShown, func(e DomainEvent) {
		if ev, ok := e.(SectionShownEvent); ok {
			got <- ev
		}
	})

	b.Publish(SectionShownEvent{From: domain.SectionHome, To: domain.SectionEvents})

	select {
	case ev := <-got:
		assert.Equal(t, domain.SectionEvents, ev.To)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	calls := 0
	unsubscribe := b.Subscribe(EventAppReady, func(DomainEvent) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	done := make(chan struct{})
	b.Subscribe(EventAppReady, func(DomainEvent) { close(done) })

	unsubscribe()
	b.Publish(AppReadyEvent{})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("remaining subscriber was not called")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, calls)
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New()
	defer b.Close()

	delivered := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { delivered <- struct{}{} })

	b.Publish(ErrorEvent{Message: "first"})

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("second handler never ran")
	}
}

func TestPublishAfterCloseDoesNotBlock(t *testing.T) {
	b := New()
	b.Close()

	finished := make(chan struct{})
	go func() {
		b.Publish(AppReadyEvent{})
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		require.Fail(t, "publish blocked after close")
	}
}
