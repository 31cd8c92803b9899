package embervk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeString(t *testing.T) {
	assert.Equal(t, "main\x00", safeString("main"))
	assert.Equal(t, "main\x00", safeString("main\x00"))
	assert.Equal(t, "\x00", safeString(""))
}

func TestSafeStringsLeavesInputAlone(t *testing.T) {
	in := []string{"VK_KHR_surface", "VK_KHR_swapchain\x00"}
	out := safeStrings(in)

	assert.Equal(t, []string{"VK_KHR_surface\x00", "VK_KHR_swapchain\x00"}, out)
	assert.Equal(t, "VK_KHR_surface", in[0])
}

func TestCheckExisting(t *testing.T) {
	actual := []string{"VK_KHR_surface", "VK_KHR_swapchain", "VK_EXT_debug_utils"}

	existing, missing := checkExisting(actual, []string{"VK_KHR_swapchain"})
	assert.Equal(t, []string{"VK_KHR_swapchain"}, existing)
	assert.Zero(t, missing)

	existing, missing = checkExisting(actual, []string{"VK_KHR_swapchain", "VK_KHR_maintenance1"})
	assert.Equal(t, []string{"VK_KHR_swapchain"}, existing)
	assert.Equal(t, 1, missing)

	existing, missing = checkExisting(nil, []string{"VK_KHR_surface"})
	assert.Empty(t, existing)
	assert.Equal(t, 1, missing)
}

func TestClampUint32(t *testing.T) {
	assert.Equal(t, uint32(400), clampUint32(200, 400, 800))
	assert.Equal(t, uint32(800), clampUint32(1000, 400, 800))
	assert.Equal(t, uint32(600), clampUint32(600, 400, 800))
}

func TestSliceUint32(t *testing.T) {
	// SPIR-V magic followed by one zero word, little endian.
	data := []byte{0x03, 0x02, 0x23, 0x07, 0x00, 0x00, 0x00, 0x00}
	words := sliceUint32(data)

	require.Len(t, words, 2)
	assert.Equal(t, uint32(0x07230203), words[0])
	assert.Equal(t, uint32(0), words[1])
}
