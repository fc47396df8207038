package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pinged struct{ n int }

func TestBusDeliversInOrder(t *testing.T) {
	bus := NewBus()
	var got []int
	bus.Subscribe(TypeOf(pinged{}), func(e interface{}) { got = append(got, e.(pinged).n) })
	bus.Subscribe(TypeOf(pinged{}), func(e interface{}) { got = append(got, e.(pinged).n*10) })

	bus.Publish(pinged{n: 1})
	bus.Publish("ignored")

	assert.Equal(t, []int{1, 10}, got)
}

func TestBusHandlerCanPublish(t *testing.T) {
	bus := NewBus()
	var chained bool
	bus.Subscribe(TypeOf(pinged{}), func(e interface{}) { bus.Publish(struct{}{}) })
	bus.Subscribe(TypeOf(struct{}{}), func(e interface{}) { chained = true })

	bus.Publish(pinged{})
	assert.True(t, chained)
}

func TestNullBus(t *testing.T) {
	var bus EventBus = &NullBus{}
	bus.Subscribe("x", func(interface{}) { t.Fatal("unexpected") })
	bus.Publish("x")
}
