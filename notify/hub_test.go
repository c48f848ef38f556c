package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishOrder(t *testing.T) {
	var h Hub[int]
	var got []string

	h.Subscribe(func(v int) { got = append(got, "a") })
	h.Subscribe(func(v int) { got = append(got, "b") })
	h.Publish(1)

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestUnsubscribe(t *testing.T) {
	var h Hub[string]
	var seen []string

	cancel := h.Subscribe(func(s string) { seen = append(seen, s) })
	other := h.Subscribe(func(s string) { seen = append(seen, "other:"+s) })

	h.Publish("first")
	cancel()
	cancel()
	h.Publish("second")
	other()
	h.Publish("third")

	require.Len(t, seen, 3)
	assert.Equal(t, []string{"first", "other:first", "other:second"}, seen)
}

func TestClear(t *testing.T) {
	var h Hub[int]
	calls := 0
	h.Subscribe(func(int) { calls++ })
	h.Subscribe(func(int) { calls++ })

	h.Clear()
	h.Publish(7)

	assert.Zero(t, calls)

	h.Subscribe(func(int) { calls++ })
	h.Publish(8)
	assert.Equal(t, 1, calls, "hub is usable after Clear")
}
