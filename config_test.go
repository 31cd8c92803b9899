package embervk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	vk "github.com/vulkan-go/vulkan"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "Vulkan window", config.Title)
	assert.Equal(t, 1000, config.Width)
	assert.Equal(t, 600, config.Height)
	assert.False(t, config.EnableValidation)
	assert.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, config.ValidationLayers)
	assert.Equal(t, []string{vk.KhrSwapchainExtensionName}, config.DeviceExtensions)
	assert.Equal(t, "shaders/vert.spv", config.VertexShaderPath)
	assert.Equal(t, "shaders/frag.spv", config.FragmentShaderPath)
}
