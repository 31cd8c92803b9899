package embervk

// teardownStack collects destruction steps as construction succeeds and
// replays them strictly last-in first-out. Each bootstrap stage registers
// exactly one step, which keeps teardown one-to-one with creation even when
// construction stops partway.
type teardownStack struct {
	steps []func()
}

func (t *teardownStack) push(step func()) {
	t.steps = append(t.steps, step)
}

// unwind runs the registered steps in reverse registration order, once.
// A second unwind is a no-op.
func (t *teardownStack) unwind() {
	for i := len(t.steps) - 1; i >= 0; i-- {
		t.steps[i]()
	}
	t.steps = nil
}
