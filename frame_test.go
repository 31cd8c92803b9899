package embervk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend journals every frame operation and can be told to fail one.
type fakeBackend struct {
	ops       []string
	next      uint32
	images    uint32
	recorded  []uint32
	presented []uint32
	failAt    string
	failWith  error
}

func (f *fakeBackend) step(op string) error {
	f.ops = append(f.ops, op)
	if op == f.failAt {
		return f.failWith
	}
	return nil
}

func (f *fakeBackend) WaitFrame() error { return f.step("wait") }

func (f *fakeBackend) Acquire() (uint32, error) {
	index := f.next % f.images
	f.next++
	return index, f.step("acquire")
}

func (f *fakeBackend) Record(index uint32) error {
	f.recorded = append(f.recorded, index)
	return f.step("record")
}

func (f *fakeBackend) Submit() error { return f.step("submit") }

func (f *fakeBackend) Present(index uint32) error {
	f.presented = append(f.presented, index)
	return f.step("present")
}

var frameOrder = []string{"wait", "acquire", "record", "submit", "present"}

func TestTickRunsFrameInOrder(t *testing.T) {
	backend := &fakeBackend{images: 3}

	require.NoError(t, tick(backend))
	assert.Equal(t, frameOrder, backend.ops)
}

func TestTickPlumbsAcquiredIndex(t *testing.T) {
	backend := &fakeBackend{images: 3, next: 2}

	require.NoError(t, tick(backend))
	assert.Equal(t, []uint32{2}, backend.recorded)
	assert.Equal(t, []uint32{2}, backend.presented)
}

func TestSteadyStateKeepsOrderOverManyFrames(t *testing.T) {
	backend := &fakeBackend{images: 3}

	const frames = 100
	for i := 0; i < frames; i++ {
		require.NoError(t, tick(backend))
	}

	require.Len(t, backend.ops, frames*len(frameOrder))
	for i := 0; i < frames; i++ {
		chunk := backend.ops[i*len(frameOrder) : (i+1)*len(frameOrder)]
		assert.Equal(t, frameOrder, chunk, "frame %d out of order", i)
	}

	// Each recorded image is the one presented that frame.
	require.Len(t, backend.recorded, frames)
	assert.Equal(t, backend.recorded, backend.presented)
}

func TestTickStopsAtFirstFailure(t *testing.T) {
	for stop, op := range frameOrder {
		backend := &fakeBackend{images: 3, failAt: op, failWith: StepError(ErrFrame)}

		err := tick(backend)
		require.Error(t, err, "failing %s", op)
		assert.ErrorIs(t, err, ErrFrame)
		assert.Equal(t, frameOrder[:stop+1], backend.ops, "failing %s", op)
	}
}
