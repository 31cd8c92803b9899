package embervk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"
)

func TestFamilyIndexStartsAbsent(t *testing.T) {
	var index FamilyIndex
	assert.False(t, index.Has())

	index.Set(0)
	assert.True(t, index.Has())
	assert.Equal(t, uint32(0), index.Value())
}

func TestQueueFamilyIndicesComplete(t *testing.T) {
	var indices QueueFamilyIndices
	assert.False(t, indices.Complete())

	indices.Graphics.Set(1)
	assert.False(t, indices.Complete())

	indices.Present.Set(2)
	assert.True(t, indices.Complete())
}

func TestUniqueFamilies(t *testing.T) {
	var shared QueueFamilyIndices
	shared.Graphics.Set(0)
	shared.Present.Set(0)
	assert.True(t, shared.Shared())
	assert.Equal(t, []uint32{0}, shared.UniqueFamilies())

	var split QueueFamilyIndices
	split.Graphics.Set(0)
	split.Present.Set(2)
	assert.False(t, split.Shared())
	assert.Equal(t, []uint32{0, 2}, split.UniqueFamilies())
}

func graphicsFamily() vk.QueueFamilyProperties {
	return vk.QueueFamilyProperties{QueueFlags: vk.QueueFlags(vk.QueueGraphicsBit)}
}

func transferFamily() vk.QueueFamilyProperties {
	return vk.QueueFamilyProperties{QueueFlags: vk.QueueFlags(vk.QueueTransferBit)}
}

func TestScanFamiliesSharedFamily(t *testing.T) {
	props := []vk.QueueFamilyProperties{graphicsFamily()}

	indices := scanFamilies(props, func(i uint32) bool { return true })
	require.True(t, indices.Complete())
	assert.Equal(t, uint32(0), indices.Graphics.Value())
	assert.Equal(t, uint32(0), indices.Present.Value())
	assert.True(t, indices.Shared())
}

func TestScanFamiliesSplitRoles(t *testing.T) {
	// Family 0 only does graphics, family 1 only presents.
	props := []vk.QueueFamilyProperties{graphicsFamily(), transferFamily()}

	indices := scanFamilies(props, func(i uint32) bool { return i == 1 })
	require.True(t, indices.Complete())
	assert.Equal(t, uint32(0), indices.Graphics.Value())
	assert.Equal(t, uint32(1), indices.Present.Value())
	assert.False(t, indices.Shared())
}

func TestScanFamiliesStopsWhenComplete(t *testing.T) {
	props := []vk.QueueFamilyProperties{graphicsFamily(), graphicsFamily(), graphicsFamily()}

	var asked []uint32
	indices := scanFamilies(props, func(i uint32) bool {
		asked = append(asked, i)
		return true
	})
	require.True(t, indices.Complete())
	assert.Equal(t, []uint32{0}, asked)
}

func TestScanFamiliesIncomplete(t *testing.T) {
	props := []vk.QueueFamilyProperties{transferFamily(), transferFamily()}

	indices := scanFamilies(props, func(i uint32) bool { return false })
	assert.False(t, indices.Complete())
	assert.False(t, indices.Graphics.Has())
	assert.False(t, indices.Present.Has())
}
