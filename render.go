package embervk

import (
	vk "github.com/vulkan-go/vulkan"
)

// CoreRender assembles the full presentation stack in dependency order and
// drives the frame loop over it. It is the frameBackend the loop ticks.
type CoreRender struct {
	config       Config
	window       *CoreWindow
	instance     *CoreInstance
	surface      vk.Surface
	device       *CoreDevice
	swapchain    *CoreSwapchain
	pass         *CoreRenderPass
	pipeline     *CorePipeline
	framebuffers *CoreFramebuffers
	pool         *CorePool
	sync         *CoreSync
	cleanup      teardownStack
	frame        uint64
}

// NewCoreRender builds window, instance, surface, device, swapchain, render
// pass, pipeline, framebuffers, command pool and sync objects, in that
// order. On any failure the partial stack is torn down and the error comes
// back; there is no degraded mode.
func NewCoreRender(config Config) (*CoreRender, error) {
	r := &CoreRender{config: config, surface: vk.NullSurface}
	if err := r.bootstrap(); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

// bootstrap registers exactly one teardown step per stage it completes, so
// Destroy unwinds whatever exists in reverse no matter where construction
// stopped.
func (r *CoreRender) bootstrap() error {
	var err error

	if r.window, err = NewCoreWindow(r.config); err != nil {
		return err
	}
	r.cleanup.push(func() { r.window.Destroy() })

	if r.instance, err = NewCoreInstance(r.config, r.window); err != nil {
		return err
	}
	r.cleanup.push(func() { r.instance.Destroy() })

	if r.surface, err = r.window.CreateSurface(r.instance.Handle()); err != nil {
		return err
	}
	r.cleanup.push(func() {
		vk.DestroySurface(r.instance.Handle(), r.surface, nil)
		r.surface = vk.NullSurface
		Infof("surface destroyed")
	})

	if r.device, err = NewCoreDevice(r.instance, r.surface, r.config); err != nil {
		return err
	}
	r.cleanup.push(func() { r.device.Destroy() })

	if r.swapchain, err = NewCoreSwapchain(r.device, r.surface, r.window); err != nil {
		return err
	}
	r.cleanup.push(func() { r.swapchain.Destroy(r.device.Handle()) })

	if r.pass, err = NewCoreRenderPass(r.device, r.swapchain.Format()); err != nil {
		return err
	}
	r.cleanup.push(func() { r.pass.Destroy(r.device.Handle()) })

	if r.pipeline, err = NewCorePipeline(r.device, r.pass, r.swapchain.Extent(), r.config); err != nil {
		return err
	}
	r.cleanup.push(func() { r.pipeline.Destroy(r.device.Handle()) })

	if r.framebuffers, err = NewCoreFramebuffers(r.device, r.pass, r.swapchain); err != nil {
		return err
	}
	r.cleanup.push(func() { r.framebuffers.Destroy(r.device.Handle()) })

	if r.pool, err = NewCorePool(r.device); err != nil {
		return err
	}
	r.cleanup.push(func() { r.pool.Destroy(r.device.Handle()) })

	if r.sync, err = NewCoreSync(r.device); err != nil {
		return err
	}
	r.cleanup.push(func() { r.sync.Destroy(r.device.Handle()) })

	Infof("renderer ready")
	return nil
}

// WaitFrame paces the loop on the in-flight fence.
func (r *CoreRender) WaitFrame() error {
	return r.sync.Wait(r.device.Handle())
}

// Acquire asks the presentation engine for the next image, signaling the
// image-available semaphore when the image is usable.
func (r *CoreRender) Acquire() (uint32, error) {
	var index uint32
	ret := vk.AcquireNextImage(r.device.Handle(), r.swapchain.Handle(), vk.MaxUint64,
		r.sync.ImageAvailable(), vk.NullFence, &index)
	if err := NewError(ErrFrame, ret); err != nil {
		return 0, err
	}
	return index, nil
}

// Record re-records the command buffer against the acquired image's
// framebuffer.
func (r *CoreRender) Record(index uint32) error {
	return r.pool.Record(r.pass.Handle(), r.framebuffers.At(index),
		r.swapchain.Extent(), r.pipeline.Handle())
}

// Submit queues the recorded buffer on the graphics queue. Color output
// waits for the acquired image; completion signals the render-finished
// semaphore and the in-flight fence.
func (r *CoreRender) Submit() error {
	ret := vk.QueueSubmit(r.device.GraphicsQueue(), 1, []vk.SubmitInfo{{
		SType:                vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount:   1,
		PWaitSemaphores:      []vk.Semaphore{r.sync.ImageAvailable()},
		PWaitDstStageMask:    []vk.PipelineStageFlags{vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)},
		CommandBufferCount:   1,
		PCommandBuffers:      []vk.CommandBuffer{r.pool.Buffer()},
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    []vk.Semaphore{r.sync.RenderFinished()},
	}}, r.sync.InFlight())
	if err := NewError(ErrFrame, ret); err != nil {
		return err
	}
	Tracef("frame %d submitted", r.frame)
	return nil
}

// Present returns the image to the presentation engine once rendering
// signals.
func (r *CoreRender) Present(index uint32) error {
	ret := vk.QueuePresent(r.device.PresentQueue(), &vk.PresentInfo{
		SType:              vk.StructureTypePresentInfo,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{r.sync.RenderFinished()},
		SwapchainCount:     1,
		PSwapchains:        []vk.Swapchain{r.swapchain.Handle()},
		PImageIndices:      []uint32{index},
	})
	if err := NewError(ErrFrame, ret); err != nil {
		return err
	}
	Tracef("frame %d presented (image %d)", r.frame, index)
	return nil
}

// Run ticks frames until the window asks to close, then drains the device.
// A frame error ends the loop immediately.
func (r *CoreRender) Run() error {
	Infof("entering frame loop")
	for !r.window.ShouldClose() {
		r.window.PollEvents()
		if err := tick(r); err != nil {
			return err
		}
		r.frame++
	}
	r.device.WaitIdle()
	Infof("frame loop exited after %d frames", r.frame)
	return nil
}

// Destroy drains the device, then tears the stack down in strict reverse
// construction order. Safe to call on a partially built renderer and safe
// to call twice.
func (r *CoreRender) Destroy() {
	if r == nil {
		return
	}
	r.device.WaitIdle()
	r.cleanup.unwind()
	r.sync, r.pool, r.framebuffers, r.pipeline, r.pass = nil, nil, nil, nil, nil
	r.swapchain, r.device, r.instance, r.window = nil, nil, nil, nil
}
