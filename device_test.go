package embervk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeIndices() QueueFamilyIndices {
	var indices QueueFamilyIndices
	indices.Graphics.Set(0)
	indices.Present.Set(0)
	return indices
}

func TestDeviceProfileSuitable(t *testing.T) {
	good := deviceProfile{indices: completeIndices(), extensional: true, presentable: true}
	assert.True(t, good.suitable())

	missingQueue := good
	missingQueue.indices = QueueFamilyIndices{}
	assert.False(t, missingQueue.suitable())

	missingExtensions := good
	missingExtensions.extensional = false
	assert.False(t, missingExtensions.suitable())

	bareSurface := good
	bareSurface.presentable = false
	assert.False(t, bareSurface.suitable())
}

func TestFirstSuitableTakesEnumerationOrder(t *testing.T) {
	profiles := []deviceProfile{
		{name: "llvmpipe"},
		{name: "integrated", indices: completeIndices(), extensional: true, presentable: true},
		{name: "discrete", indices: completeIndices(), extensional: true, presentable: true},
	}

	pick, ok := firstSuitable(profiles)
	require.True(t, ok)
	assert.Equal(t, 1, pick)
	assert.Equal(t, "integrated", profiles[pick].name)
}

func TestFirstSuitableNoneSuitable(t *testing.T) {
	profiles := []deviceProfile{
		{name: "llvmpipe"},
		{name: "cpu", extensional: true},
	}

	_, ok := firstSuitable(profiles)
	assert.False(t, ok)
}

func TestFirstSuitableEmpty(t *testing.T) {
	_, ok := firstSuitable(nil)
	assert.False(t, ok)
}
