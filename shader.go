package embervk

import (
	"fmt"
	"os"

	vk "github.com/vulkan-go/vulkan"
)

// loadShaderCode reads compiled SPIR-V from disk and validates that the
// payload is a nonempty whole number of 32-bit words before anything
// reinterprets it.
func loadShaderCode(path string) ([]byte, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError(ErrShaderLoad, err)
	}
	if len(code) == 0 || len(code)%4 != 0 {
		return nil, WrapError(ErrShaderLoad,
			fmt.Errorf("%s: %d bytes is not a SPIR-V word stream", path, len(code)))
	}
	return code, nil
}

// newShaderModule wraps validated SPIR-V in a shader module.
func newShaderModule(device vk.Device, code []byte) (vk.ShaderModule, error) {
	var module vk.ShaderModule
	ret := vk.CreateShaderModule(device, &vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(code)),
		PCode:    sliceUint32(code),
	}, nil, &module)
	if err := NewError(ErrShaderModule, ret); err != nil {
		return vk.NullShaderModule, err
	}
	return module, nil
}

// loadShaderModule reads one SPIR-V file into a module. Modules built this
// way live only as long as pipeline construction needs them.
func loadShaderModule(device vk.Device, path string) (vk.ShaderModule, error) {
	code, err := loadShaderCode(path)
	if err != nil {
		return vk.NullShaderModule, err
	}
	return newShaderModule(device, code)
}
