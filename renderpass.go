package embervk

import (
	vk "github.com/vulkan-go/vulkan"
)

// CoreRenderPass is the single pass the frame renders through: one color
// attachment cleared on load and handed to the presentation engine on store.
type CoreRenderPass struct {
	handle vk.RenderPass
}

// NewCoreRenderPass builds the pass against the swapchain's image format.
// The lone subpass dependency blocks color output until the acquired image
// is actually released by the presentation engine.
func NewCoreRenderPass(device *CoreDevice, format vk.Format) (*CoreRenderPass, error) {
	attachments := []vk.AttachmentDescription{{
		Format:         format,
		Samples:        vk.SampleCount1Bit,
		LoadOp:         vk.AttachmentLoadOpClear,
		StoreOp:        vk.AttachmentStoreOpStore,
		StencilLoadOp:  vk.AttachmentLoadOpDontCare,
		StencilStoreOp: vk.AttachmentStoreOpDontCare,
		InitialLayout:  vk.ImageLayoutUndefined,
		FinalLayout:    vk.ImageLayoutPresentSrc,
	}}

	colorRefs := []vk.AttachmentReference{{
		Attachment: 0,
		Layout:     vk.ImageLayoutColorAttachmentOptimal,
	}}

	subpasses := []vk.SubpassDescription{{
		PipelineBindPoint:    vk.PipelineBindPointGraphics,
		ColorAttachmentCount: 1,
		PColorAttachments:    colorRefs,
	}}

	dependencies := []vk.SubpassDependency{{
		SrcSubpass:    vk.SubpassExternal,
		DstSubpass:    0,
		SrcStageMask:  vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		SrcAccessMask: 0,
		DstStageMask:  vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		DstAccessMask: vk.AccessFlags(vk.AccessColorAttachmentWriteBit),
	}}

	var pass vk.RenderPass
	ret := vk.CreateRenderPass(device.Handle(), &vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: uint32(len(attachments)),
		PAttachments:    attachments,
		SubpassCount:    uint32(len(subpasses)),
		PSubpasses:      subpasses,
		DependencyCount: uint32(len(dependencies)),
		PDependencies:   dependencies,
	}, nil, &pass)
	if err := NewError(ErrRenderPass, ret); err != nil {
		return nil, err
	}

	Infof("render pass created")
	return &CoreRenderPass{handle: pass}, nil
}

func (r *CoreRenderPass) Handle() vk.RenderPass { return r.handle }

func (r *CoreRenderPass) Destroy(device vk.Device) {
	if r == nil || r.handle == vk.NullRenderPass {
		return
	}
	vk.DestroyRenderPass(device, r.handle, nil)
	r.handle = vk.NullRenderPass
	Infof("render pass destroyed")
}
