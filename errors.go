package embervk

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	vk "github.com/vulkan-go/vulkan"
)

// Step sentinels, one per bootstrap or frame stage. Every failure raised by
// this package wraps exactly one of them, so callers can match a failing
// stage with errors.Is without parsing messages.
var (
	ErrNoVulkan         = errors.New("vulkan loader unavailable")
	ErrWindowCreation   = errors.New("window creation failed")
	ErrValidationLayers = errors.New("validation layers requested but not available")
	ErrInstanceCreation = errors.New("instance creation failed")
	ErrSurfaceCreation  = errors.New("surface creation failed")
	ErrNoSuitableDevice = errors.New("no suitable physical device")
	ErrDeviceCreation   = errors.New("logical device creation failed")
	ErrChainCreation    = errors.New("swapchain creation failed")
	ErrImageView        = errors.New("image view creation failed")
	ErrRenderPass       = errors.New("render pass creation failed")
	ErrShaderLoad       = errors.New("shader bytecode load failed")
	ErrShaderModule     = errors.New("shader module creation failed")
	ErrPipelineLayout   = errors.New("pipeline layout creation failed")
	ErrPipelineCreation = errors.New("graphics pipeline creation failed")
	ErrFramebuffer      = errors.New("framebuffer creation failed")
	ErrCommandPool      = errors.New("command pool creation failed")
	ErrCommandBuffer    = errors.New("command buffer allocation or recording failed")
	ErrSyncObject       = errors.New("sync object creation failed")
	ErrFrame            = errors.New("frame execution failed")
)

// Error ties a failing step to its cause and the call site that raised it.
type Error struct {
	Step   error     // one of the Err* sentinels above
	Result vk.Result // vk.Success when the cause was not a Vulkan result
	cause  error
	file   string
	line   int
}

func (e *Error) Error() string {
	switch {
	case e.Result != vk.Success && e.file != "":
		return fmt.Sprintf("%s: %s (%d) at %s:%d",
			e.Step, vk.Error(e.Result), e.Result, filepath.Base(e.file), e.line)
	case e.Result != vk.Success:
		return fmt.Sprintf("%s: %s (%d)", e.Step, vk.Error(e.Result), e.Result)
	case e.cause != nil:
		return fmt.Sprintf("%s: %s", e.Step, e.cause)
	}
	return e.Step.Error()
}

func (e *Error) Is(target error) bool { return target == e.Step }

func (e *Error) Unwrap() error { return e.cause }

func isError(ret vk.Result) bool {
	return ret != vk.Success
}

// NewError wraps a non-success Vulkan result under the given step sentinel,
// recording the caller's file and line. Returns nil on vk.Success.
func NewError(step error, ret vk.Result) error {
	if ret == vk.Success {
		return nil
	}
	e := &Error{Step: step, Result: ret, cause: vk.Error(ret)}
	if _, file, line, ok := runtime.Caller(1); ok {
		e.file, e.line = file, line
	}
	return e
}

// WrapError ties a non-Vulkan cause (file IO, GLFW) to a step sentinel.
// Returns nil when cause is nil.
func WrapError(step error, cause error) error {
	if cause == nil {
		return nil
	}
	e := &Error{Step: step, Result: vk.Success, cause: cause}
	if _, file, line, ok := runtime.Caller(1); ok {
		e.file, e.line = file, line
	}
	return e
}

// StepError raises a bare step failure with no underlying cause.
func StepError(step error) error {
	e := &Error{Step: step, Result: vk.Success}
	if _, file, line, ok := runtime.Caller(1); ok {
		e.file, e.line = file, line
	}
	return e
}
