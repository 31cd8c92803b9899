package embervk

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// InstanceExtensions lists the instance extension names available on the
// platform, without terminators.
func InstanceExtensions() ([]string, error) {
	var count uint32
	ret := vk.EnumerateInstanceExtensionProperties("", &count, nil)
	if err := NewError(ErrInstanceCreation, ret); err != nil {
		return nil, err
	}
	list := make([]vk.ExtensionProperties, count)
	ret = vk.EnumerateInstanceExtensionProperties("", &count, list)
	if err := NewError(ErrInstanceCreation, ret); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, ext := range list {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// InstanceLayers lists the layer names installed on the platform.
func InstanceLayers() ([]string, error) {
	var count uint32
	ret := vk.EnumerateInstanceLayerProperties(&count, nil)
	if err := NewError(ErrValidationLayers, ret); err != nil {
		return nil, err
	}
	list := make([]vk.LayerProperties, count)
	ret = vk.EnumerateInstanceLayerProperties(&count, list)
	if err := NewError(ErrValidationLayers, ret); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, layer := range list {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

// DeviceExtensions lists the extension names a physical device supports.
func DeviceExtensions(gpu vk.PhysicalDevice) ([]string, error) {
	var count uint32
	ret := vk.EnumerateDeviceExtensionProperties(gpu, "", &count, nil)
	if err := NewError(ErrNoSuitableDevice, ret); err != nil {
		return nil, err
	}
	list := make([]vk.ExtensionProperties, count)
	ret = vk.EnumerateDeviceExtensionProperties(gpu, "", &count, list)
	if err := NewError(ErrNoSuitableDevice, ret); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, ext := range list {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// supportsDeviceExtensions reports whether gpu offers every name in wanted.
// A failed query rejects the candidate instead of aborting selection.
func supportsDeviceExtensions(gpu vk.PhysicalDevice, wanted []string) bool {
	actual, err := DeviceExtensions(gpu)
	if err != nil {
		Warnf("device extension query failed: %v", err)
		return false
	}
	_, missing := checkExisting(actual, wanted)
	return missing == 0
}

// checkValidationSupport verifies every requested validation layer is
// installed.
func checkValidationSupport(wanted []string) error {
	actual, err := InstanceLayers()
	if err != nil {
		return err
	}
	if _, missing := checkExisting(actual, wanted); missing > 0 {
		return WrapError(ErrValidationLayers,
			fmt.Errorf("%d of %v not installed", missing, wanted))
	}
	return nil
}
