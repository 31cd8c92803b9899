package embervk

// frameBackend is the slice of the renderer one frame touches. Narrow on
// purpose so the tick ordering can be exercised without a device.
type frameBackend interface {
	WaitFrame() error
	Acquire() (uint32, error)
	Record(index uint32) error
	Submit() error
	Present(index uint32) error
}

// tick runs one frame end to end: pace on the previous frame's fence,
// acquire the next image, re-record the command buffer for it, submit, and
// hand the image to the presentation engine. The first failure aborts the
// frame and every failure is terminal for the caller.
func tick(backend frameBackend) error {
	if err := backend.WaitFrame(); err != nil {
		return err
	}
	index, err := backend.Acquire()
	if err != nil {
		return err
	}
	if err := backend.Record(index); err != nil {
		return err
	}
	if err := backend.Submit(); err != nil {
		return err
	}
	return backend.Present(index)
}
