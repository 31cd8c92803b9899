package embervk

import (
	vk "github.com/vulkan-go/vulkan"
)

// SwapchainSupport is a snapshot of what a device can do with a surface.
type SwapchainSupport struct {
	Capabilities vk.SurfaceCapabilities
	Formats      []vk.SurfaceFormat
	PresentModes []vk.PresentMode
}

// querySwapchainSupport reads surface capabilities, formats and present
// modes for one device. The nested extents are dereferenced here so callers
// work with plain values.
func querySwapchainSupport(gpu vk.PhysicalDevice, surface vk.Surface) (SwapchainSupport, error) {
	var support SwapchainSupport

	ret := vk.GetPhysicalDeviceSurfaceCapabilities(gpu, surface, &support.Capabilities)
	if err := NewError(ErrChainCreation, ret); err != nil {
		return support, err
	}
	support.Capabilities.Deref()
	support.Capabilities.CurrentExtent.Deref()
	support.Capabilities.MinImageExtent.Deref()
	support.Capabilities.MaxImageExtent.Deref()

	var formatCount uint32
	ret = vk.GetPhysicalDeviceSurfaceFormats(gpu, surface, &formatCount, nil)
	if err := NewError(ErrChainCreation, ret); err != nil {
		return support, err
	}
	if formatCount > 0 {
		support.Formats = make([]vk.SurfaceFormat, formatCount)
		ret = vk.GetPhysicalDeviceSurfaceFormats(gpu, surface, &formatCount, support.Formats)
		if err := NewError(ErrChainCreation, ret); err != nil {
			return support, err
		}
		for i := range support.Formats {
			support.Formats[i].Deref()
		}
	}

	var modeCount uint32
	ret = vk.GetPhysicalDeviceSurfacePresentModes(gpu, surface, &modeCount, nil)
	if err := NewError(ErrChainCreation, ret); err != nil {
		return support, err
	}
	if modeCount > 0 {
		support.PresentModes = make([]vk.PresentMode, modeCount)
		ret = vk.GetPhysicalDeviceSurfacePresentModes(gpu, surface, &modeCount, support.PresentModes)
		if err := NewError(ErrChainCreation, ret); err != nil {
			return support, err
		}
	}
	return support, nil
}

// chooseSurfaceFormat prefers 8-bit BGRA sRGB with a nonlinear sRGB color
// space and otherwise settles for the first advertised format.
func chooseSurfaceFormat(formats []vk.SurfaceFormat) vk.SurfaceFormat {
	for _, format := range formats {
		if format.Format == vk.FormatB8g8r8a8Srgb && format.ColorSpace == vk.ColorSpaceSrgbNonlinear {
			return format
		}
	}
	return formats[0]
}

// choosePresentMode prefers mailbox and falls back to FIFO, the one mode
// every implementation must provide.
func choosePresentMode(modes []vk.PresentMode) vk.PresentMode {
	for _, mode := range modes {
		if mode == vk.PresentModeMailbox {
			return mode
		}
	}
	return vk.PresentModeFifo
}

// chooseExtent takes the surface's current extent verbatim unless the
// surface leaves sizing to the swapchain, in which case the framebuffer
// size is clamped per axis into the supported range.
func chooseExtent(caps vk.SurfaceCapabilities, fbWidth, fbHeight int) vk.Extent2D {
	if caps.CurrentExtent.Width != vk.MaxUint32 {
		return caps.CurrentExtent
	}
	return vk.Extent2D{
		Width:  clampUint32(uint32(fbWidth), caps.MinImageExtent.Width, caps.MaxImageExtent.Width),
		Height: clampUint32(uint32(fbHeight), caps.MinImageExtent.Height, caps.MaxImageExtent.Height),
	}
}

// chooseImageCount asks for one image over the minimum so the renderer is
// not stalled waiting on the driver, capped at the maximum when the surface
// declares one.
func chooseImageCount(caps vk.SurfaceCapabilities) uint32 {
	count := caps.MinImageCount + 1
	if caps.MaxImageCount > 0 && count > caps.MaxImageCount {
		count = caps.MaxImageCount
	}
	return count
}

// chooseSharing keeps images exclusive to one family when both roles share
// it, and otherwise opens them to concurrent access by exactly the two role
// families.
func chooseSharing(indices QueueFamilyIndices) (vk.SharingMode, []uint32) {
	if indices.Shared() {
		return vk.SharingModeExclusive, nil
	}
	return vk.SharingModeConcurrent, []uint32{indices.Graphics.Value(), indices.Present.Value()}
}

// CoreSwapchain owns the swapchain, its images and one view per image.
type CoreSwapchain struct {
	handle vk.Swapchain
	images []vk.Image
	views  []vk.ImageView
	format vk.Format
	extent vk.Extent2D
}

// NewCoreSwapchain negotiates format, present mode, extent and image count
// against the surface and builds the swapchain plus its image views. Images
// are shared across queue families only when the two roles differ.
func NewCoreSwapchain(device *CoreDevice, surface vk.Surface, window *CoreWindow) (*CoreSwapchain, error) {
	support, err := querySwapchainSupport(device.GPU(), surface)
	if err != nil {
		return nil, err
	}

	format := chooseSurfaceFormat(support.Formats)
	mode := choosePresentMode(support.PresentModes)
	width, height := window.FramebufferSize()
	extent := chooseExtent(support.Capabilities, width, height)
	count := chooseImageCount(support.Capabilities)

	sharing, families := chooseSharing(device.Indices())

	var swapchain vk.Swapchain
	ret := vk.CreateSwapchain(device.Handle(), &vk.SwapchainCreateInfo{
		SType:                 vk.StructureTypeSwapchainCreateInfo,
		Surface:               surface,
		MinImageCount:         count,
		ImageFormat:           format.Format,
		ImageColorSpace:       format.ColorSpace,
		ImageExtent:           extent,
		ImageArrayLayers:      1,
		ImageUsage:            vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		ImageSharingMode:      sharing,
		QueueFamilyIndexCount: uint32(len(families)),
		PQueueFamilyIndices:   families,
		PreTransform:          support.Capabilities.CurrentTransform,
		CompositeAlpha:        vk.CompositeAlphaOpaqueBit,
		PresentMode:           mode,
		Clipped:               vk.True,
		OldSwapchain:          vk.NullSwapchain,
	}, nil, &swapchain)
	if err := NewError(ErrChainCreation, ret); err != nil {
		return nil, err
	}

	core := &CoreSwapchain{
		handle: swapchain,
		format: format.Format,
		extent: extent,
	}

	var imageCount uint32
	ret = vk.GetSwapchainImages(device.Handle(), swapchain, &imageCount, nil)
	if err := NewError(ErrChainCreation, ret); err != nil {
		core.Destroy(device.Handle())
		return nil, err
	}
	core.images = make([]vk.Image, imageCount)
	ret = vk.GetSwapchainImages(device.Handle(), swapchain, &imageCount, core.images)
	if err := NewError(ErrChainCreation, ret); err != nil {
		core.Destroy(device.Handle())
		return nil, err
	}

	if err := core.createViews(device.Handle()); err != nil {
		core.Destroy(device.Handle())
		return nil, err
	}

	Infof("swapchain created (%d images, %dx%d)", len(core.images), extent.Width, extent.Height)
	return core, nil
}

// createViews makes a 2D color view per swapchain image with identity
// swizzles. Views are appended as they land so a partial build still tears
// down cleanly.
func (s *CoreSwapchain) createViews(device vk.Device) error {
	for _, image := range s.images {
		var view vk.ImageView
		ret := vk.CreateImageView(device, &vk.ImageViewCreateInfo{
			SType:    vk.StructureTypeImageViewCreateInfo,
			Image:    image,
			ViewType: vk.ImageViewType2d,
			Format:   s.format,
			Components: vk.ComponentMapping{
				R: vk.ComponentSwizzleIdentity,
				G: vk.ComponentSwizzleIdentity,
				B: vk.ComponentSwizzleIdentity,
				A: vk.ComponentSwizzleIdentity,
			},
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     vk.ImageAspectFlags(vk.ImageAspectColorBit),
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		}, nil, &view)
		if err := NewError(ErrImageView, ret); err != nil {
			return err
		}
		s.views = append(s.views, view)
	}
	return nil
}

func (s *CoreSwapchain) Handle() vk.Swapchain  { return s.handle }
func (s *CoreSwapchain) Views() []vk.ImageView { return s.views }
func (s *CoreSwapchain) Format() vk.Format     { return s.format }
func (s *CoreSwapchain) Extent() vk.Extent2D   { return s.extent }
func (s *CoreSwapchain) ImageCount() int       { return len(s.images) }

// Destroy drops the image views before the swapchain itself. The images
// belong to the swapchain and go with it.
func (s *CoreSwapchain) Destroy(device vk.Device) {
	if s == nil {
		return
	}
	for _, view := range s.views {
		vk.DestroyImageView(device, view, nil)
	}
	s.views = nil
	if s.handle != vk.NullSwapchain {
		vk.DestroySwapchain(device, s.handle, nil)
		s.handle = vk.NullSwapchain
		Infof("swapchain destroyed")
	}
}
