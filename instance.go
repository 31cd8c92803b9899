package embervk

import (
	vk "github.com/vulkan-go/vulkan"
)

// CoreInstance wraps the Vulkan instance together with the layer set enabled
// on it. The layer names are re-declared at logical device creation for
// loaders that still distinguish device layers.
type CoreInstance struct {
	handle vk.Instance
	layers []string
}

// NewCoreInstance creates the Vulkan instance: application info at API
// version 1.0, the window system's required extensions, and the validation
// layers when the config requests them.
func NewCoreInstance(config Config, window *CoreWindow) (*CoreInstance, error) {
	var layers []string
	if config.EnableValidation {
		if err := checkValidationSupport(config.ValidationLayers); err != nil {
			return nil, err
		}
		layers = config.ValidationLayers
	}

	required := window.RequiredExtensions()
	if actual, err := InstanceExtensions(); err == nil {
		if _, missing := checkExisting(actual, required); missing > 0 {
			Warnf("missing %d required instance extensions", missing)
		}
	}

	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(config.AppName),
		ApplicationVersion: vk.MakeVersion(1, 0, 0),
		PEngineName:        safeString("No Engine"),
		EngineVersion:      vk.MakeVersion(1, 0, 0),
		ApiVersion:         vk.ApiVersion10,
	}

	var instance vk.Instance
	ret := vk.CreateInstance(&vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(required)),
		PpEnabledExtensionNames: safeStrings(required),
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     safeStrings(layers),
	}, nil, &instance)
	if err := NewError(ErrInstanceCreation, ret); err != nil {
		return nil, err
	}
	vk.InitInstance(instance)
	Infof("instance created (%d extensions, %d layers)", len(required), len(layers))

	return &CoreInstance{handle: instance, layers: layers}, nil
}

// Handle returns the raw instance.
func (c *CoreInstance) Handle() vk.Instance { return c.handle }

// Layers returns the layer names enabled at creation time.
func (c *CoreInstance) Layers() []string { return c.layers }

// Destroy releases the instance. Every surface and device created from it
// must already be gone.
func (c *CoreInstance) Destroy() {
	if c == nil || c.handle == nil {
		return
	}
	vk.DestroyInstance(c.handle, nil)
	c.handle = nil
	Infof("instance destroyed")
}
