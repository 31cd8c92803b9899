package embervk

import vk "github.com/vulkan-go/vulkan"

// Config carries the construction-time settings for a CoreRender. Nothing
// here changes at runtime: the window size is fixed for the process lifetime
// and the swapchain is never rebuilt.
type Config struct {
	// AppName is reported to the driver in the instance application info.
	AppName string
	// Title is the window title.
	Title string
	// Width and Height request the window size in screen coordinates.
	Width  int
	Height int

	// EnableValidation requests ValidationLayers on the instance and the
	// logical device. Construction fails when any of them is absent.
	EnableValidation bool
	ValidationLayers []string

	// DeviceExtensions is the mandatory device extension set. A physical
	// device missing any of them is rejected during selection.
	DeviceExtensions []string

	// VertexShaderPath and FragmentShaderPath locate compiled SPIR-V
	// bytecode, resolved against the working directory.
	VertexShaderPath   string
	FragmentShaderPath string
}

// DefaultConfig returns the fixed windowed setup: a 1000x600 surface, the
// swapchain extension, and validation off.
func DefaultConfig() Config {
	return Config{
		AppName:            "embervk",
		Title:              "Vulkan window",
		Width:              1000,
		Height:             600,
		ValidationLayers:   []string{"VK_LAYER_KHRONOS_validation"},
		DeviceExtensions:   []string{vk.KhrSwapchainExtensionName},
		VertexShaderPath:   "shaders/vert.spv",
		FragmentShaderPath: "shaders/frag.spv",
	}
}
