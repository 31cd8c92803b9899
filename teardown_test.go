package embervk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeardownUnwindsInReverse(t *testing.T) {
	var stack teardownStack
	var order []string
	for _, name := range []string{"window", "instance", "device", "swapchain"} {
		name := name
		stack.push(func() { order = append(order, name) })
	}

	stack.unwind()
	assert.Equal(t, []string{"swapchain", "device", "instance", "window"}, order)
}

func TestTeardownUnwindRunsOnce(t *testing.T) {
	var stack teardownStack
	calls := 0
	stack.push(func() { calls++ })

	stack.unwind()
	stack.unwind()
	assert.Equal(t, 1, calls)
}

func TestTeardownEmptyUnwind(t *testing.T) {
	var stack teardownStack
	stack.unwind()
}
