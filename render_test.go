//go:build gpu

package embervk

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRenderLive stands the whole stack up against real hardware and ticks
// a second's worth of frames. Needs a display, a Vulkan-capable device, and
// the SPIR-V output of shaders/compile.sh:
//
//	go test -tags gpu -run TestRenderLive .
func TestRenderLive(t *testing.T) {
	runtime.LockOSThread()

	SetLogLevel(LogTrace)
	defer SetLogLevel(LogInfo)

	render, err := NewCoreRender(DefaultConfig())
	require.NoError(t, err)
	defer render.Destroy()

	for frame := 0; frame < 60; frame++ {
		render.window.PollEvents()
		require.NoError(t, tick(render))
	}
}
