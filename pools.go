package embervk

import (
	vk "github.com/vulkan-go/vulkan"
)

// CorePool owns the command pool on the graphics family and the single
// primary command buffer the frame loop re-records every tick.
type CorePool struct {
	pool   vk.CommandPool
	buffer vk.CommandBuffer
}

// NewCorePool creates the pool with individual buffer reset enabled and
// allocates one primary buffer from it.
func NewCorePool(device *CoreDevice) (*CorePool, error) {
	var pool vk.CommandPool
	ret := vk.CreateCommandPool(device.Handle(), &vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: device.Indices().Graphics.Value(),
	}, nil, &pool)
	if err := NewError(ErrCommandPool, ret); err != nil {
		return nil, err
	}

	buffers := make([]vk.CommandBuffer, 1)
	ret = vk.AllocateCommandBuffers(device.Handle(), &vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        pool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}, buffers)
	if err := NewError(ErrCommandBuffer, ret); err != nil {
		vk.DestroyCommandPool(device.Handle(), pool, nil)
		return nil, err
	}

	Infof("command pool ready (graphics family %d)", device.Indices().Graphics.Value())
	return &CorePool{pool: pool, buffer: buffers[0]}, nil
}

// Buffer returns the primary command buffer.
func (c *CorePool) Buffer() vk.CommandBuffer { return c.buffer }

// Record resets the buffer and records one frame: clear the target to
// opaque black, run the render pass with the bound pipeline, draw the three
// procedural vertices.
func (c *CorePool) Record(pass vk.RenderPass, framebuffer vk.Framebuffer, extent vk.Extent2D, pipeline vk.Pipeline) error {
	ret := vk.ResetCommandBuffer(c.buffer, 0)
	if err := NewError(ErrCommandBuffer, ret); err != nil {
		return err
	}

	ret = vk.BeginCommandBuffer(c.buffer, &vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
	})
	if err := NewError(ErrCommandBuffer, ret); err != nil {
		return err
	}

	clearValues := []vk.ClearValue{vk.NewClearValue([]float32{0, 0, 0, 1})}
	vk.CmdBeginRenderPass(c.buffer, &vk.RenderPassBeginInfo{
		SType:       vk.StructureTypeRenderPassBeginInfo,
		RenderPass:  pass,
		Framebuffer: framebuffer,
		RenderArea: vk.Rect2D{
			Offset: vk.Offset2D{},
			Extent: extent,
		},
		ClearValueCount: 1,
		PClearValues:    clearValues,
	}, vk.SubpassContentsInline)

	vk.CmdBindPipeline(c.buffer, vk.PipelineBindPointGraphics, pipeline)
	vk.CmdDraw(c.buffer, 3, 1, 0, 0)
	vk.CmdEndRenderPass(c.buffer)

	ret = vk.EndCommandBuffer(c.buffer)
	return NewError(ErrCommandBuffer, ret)
}

// Destroy releases the pool; the buffer allocated from it goes with it.
func (c *CorePool) Destroy(device vk.Device) {
	if c == nil || c.pool == vk.NullCommandPool {
		return
	}
	vk.DestroyCommandPool(device, c.pool, nil)
	c.pool = vk.NullCommandPool
	c.buffer = nil
	Infof("command pool destroyed")
}
