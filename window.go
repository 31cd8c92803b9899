package embervk

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"
)

// CoreWindow owns the GLFW side of the system: the native window, the
// instance extensions it requires, and surface creation against an instance.
// Resize is not handled; the window keeps its creation size for the process
// lifetime.
type CoreWindow struct {
	window *glfw.Window
}

// NewCoreWindow initializes GLFW, binds the Vulkan loader through it, and
// opens a fixed-size window with no client API attached. The calling
// goroutine must be locked to the OS thread before this runs.
func NewCoreWindow(config Config) (*CoreWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, WrapError(ErrWindowCreation, err)
	}

	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	if err := vk.Init(); err != nil {
		glfw.Terminate()
		return nil, WrapError(ErrNoVulkan, err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, WrapError(ErrWindowCreation, err)
	}
	Infof("window created (%dx%d)", config.Width, config.Height)

	return &CoreWindow{window: window}, nil
}

// RequiredExtensions lists the instance extensions GLFW needs for surface
// creation on this platform.
func (w *CoreWindow) RequiredExtensions() []string {
	return w.window.GetRequiredInstanceExtensions()
}

// CreateSurface makes a presentation surface against the given instance.
func (w *CoreWindow) CreateSurface(instance vk.Instance) (vk.Surface, error) {
	surfPtr, err := w.window.CreateWindowSurface(instance, nil)
	if err != nil {
		return vk.NullSurface, WrapError(ErrSurfaceCreation, err)
	}
	return vk.SurfaceFromPointer(surfPtr), nil
}

// FramebufferSize reports the drawable size in pixels, which can differ from
// the requested size on scaled displays.
func (w *CoreWindow) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *CoreWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

// PollEvents pumps the host event queue once.
func (w *CoreWindow) PollEvents() {
	glfw.PollEvents()
}

// Destroy closes the window and shuts GLFW down. Safe on a nil receiver so a
// partially built system can tear down unconditionally.
func (w *CoreWindow) Destroy() {
	if w == nil || w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
	Infof("window destroyed")
}
