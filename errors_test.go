package embervk

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"
)

func TestNewErrorNilOnSuccess(t *testing.T) {
	require.NoError(t, NewError(ErrInstanceCreation, vk.Success))
}

func TestNewErrorCarriesStepAndResult(t *testing.T) {
	err := NewError(ErrDeviceCreation, vk.ErrorInitializationFailed)
	require.Error(t, err)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, ErrDeviceCreation, e.Step)
	assert.Equal(t, vk.ErrorInitializationFailed, e.Result)
	assert.Contains(t, err.Error(), "logical device creation failed")
	assert.Contains(t, err.Error(), "errors_test.go")
}

func TestErrorMatchesItsStepOnly(t *testing.T) {
	err := NewError(ErrChainCreation, vk.ErrorDeviceLost)
	assert.True(t, errors.Is(err, ErrChainCreation))
	assert.False(t, errors.Is(err, ErrRenderPass))
}

func TestWrapErrorKeepsCause(t *testing.T) {
	cause := fmt.Errorf("no such file")
	err := WrapError(ErrShaderLoad, cause)
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrShaderLoad))
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "no such file")
}

func TestWrapErrorNilCause(t *testing.T) {
	require.NoError(t, WrapError(ErrShaderLoad, nil))
}

func TestStepErrorBareMessage(t *testing.T) {
	err := StepError(ErrNoSuitableDevice)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSuitableDevice))
	assert.Equal(t, ErrNoSuitableDevice.Error(), err.Error())
}

func TestIsError(t *testing.T) {
	assert.False(t, isError(vk.Success))
	assert.True(t, isError(vk.ErrorOutOfDeviceMemory))
	assert.True(t, isError(vk.Incomplete))
}
