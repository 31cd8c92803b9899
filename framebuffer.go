package embervk

import (
	vk "github.com/vulkan-go/vulkan"
)

// CoreFramebuffers holds one framebuffer per swapchain image view, index
// aligned with the swapchain so an acquired image index selects its target
// directly.
type CoreFramebuffers struct {
	handles []vk.Framebuffer
}

// NewCoreFramebuffers wraps every swapchain view in a single-attachment
// framebuffer sized to the swapchain extent.
func NewCoreFramebuffers(device *CoreDevice, pass *CoreRenderPass, chain *CoreSwapchain) (*CoreFramebuffers, error) {
	extent := chain.Extent()
	core := &CoreFramebuffers{}
	for _, view := range chain.Views() {
		var framebuffer vk.Framebuffer
		ret := vk.CreateFramebuffer(device.Handle(), &vk.FramebufferCreateInfo{
			SType:           vk.StructureTypeFramebufferCreateInfo,
			RenderPass:      pass.Handle(),
			AttachmentCount: 1,
			PAttachments:    []vk.ImageView{view},
			Width:           extent.Width,
			Height:          extent.Height,
			Layers:          1,
		}, nil, &framebuffer)
		if err := NewError(ErrFramebuffer, ret); err != nil {
			core.Destroy(device.Handle())
			return nil, err
		}
		core.handles = append(core.handles, framebuffer)
	}
	Infof("framebuffers created (%d)", len(core.handles))
	return core, nil
}

// At returns the framebuffer for a swapchain image index.
func (f *CoreFramebuffers) At(index uint32) vk.Framebuffer {
	return f.handles[index]
}

func (f *CoreFramebuffers) Count() int { return len(f.handles) }

func (f *CoreFramebuffers) Destroy(device vk.Device) {
	if f == nil {
		return
	}
	for _, framebuffer := range f.handles {
		vk.DestroyFramebuffer(device, framebuffer, nil)
	}
	f.handles = nil
	Infof("framebuffers destroyed")
}
