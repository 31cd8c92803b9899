package embervk

import (
	vk "github.com/vulkan-go/vulkan"
)

// CoreSync carries the frame's synchronization trio: a semaphore signaled
// when the acquired image is ready for rendering, one signaled when
// rendering finishes, and a fence pacing the host. The fence starts
// signaled so the first tick has nothing to wait on.
type CoreSync struct {
	imageAvailable vk.Semaphore
	renderFinished vk.Semaphore
	inFlight       vk.Fence
}

func NewCoreSync(device *CoreDevice) (*CoreSync, error) {
	core := &CoreSync{}
	semaphoreInfo := vk.SemaphoreCreateInfo{
		SType: vk.StructureTypeSemaphoreCreateInfo,
	}

	ret := vk.CreateSemaphore(device.Handle(), &semaphoreInfo, nil, &core.imageAvailable)
	if err := NewError(ErrSyncObject, ret); err != nil {
		return nil, err
	}
	ret = vk.CreateSemaphore(device.Handle(), &semaphoreInfo, nil, &core.renderFinished)
	if err := NewError(ErrSyncObject, ret); err != nil {
		core.Destroy(device.Handle())
		return nil, err
	}
	ret = vk.CreateFence(device.Handle(), &vk.FenceCreateInfo{
		SType: vk.StructureTypeFenceCreateInfo,
		Flags: vk.FenceCreateFlags(vk.FenceCreateSignaledBit),
	}, nil, &core.inFlight)
	if err := NewError(ErrSyncObject, ret); err != nil {
		core.Destroy(device.Handle())
		return nil, err
	}

	Infof("sync objects created")
	return core, nil
}

func (s *CoreSync) ImageAvailable() vk.Semaphore { return s.imageAvailable }
func (s *CoreSync) RenderFinished() vk.Semaphore { return s.renderFinished }
func (s *CoreSync) InFlight() vk.Fence           { return s.inFlight }

// Wait blocks until the previous frame's fence signals, then re-arms it for
// this frame's submission.
func (s *CoreSync) Wait(device vk.Device) error {
	fences := []vk.Fence{s.inFlight}
	ret := vk.WaitForFences(device, 1, fences, vk.True, vk.MaxUint64)
	if err := NewError(ErrFrame, ret); err != nil {
		return err
	}
	return NewError(ErrFrame, vk.ResetFences(device, 1, fences))
}

func (s *CoreSync) Destroy(device vk.Device) {
	if s == nil {
		return
	}
	if s.inFlight != vk.NullFence {
		vk.DestroyFence(device, s.inFlight, nil)
		s.inFlight = vk.NullFence
	}
	if s.renderFinished != vk.NullSemaphore {
		vk.DestroySemaphore(device, s.renderFinished, nil)
		s.renderFinished = vk.NullSemaphore
	}
	if s.imageAvailable != vk.NullSemaphore {
		vk.DestroySemaphore(device, s.imageAvailable, nil)
		s.imageAvailable = vk.NullSemaphore
	}
	Infof("sync objects destroyed")
}
