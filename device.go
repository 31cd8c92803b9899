package embervk

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// deviceProfile records what one candidate device offers. Profiles are
// gathered for every enumerated device so selection itself stays a pure
// pass over plain data.
type deviceProfile struct {
	name        string
	indices     QueueFamilyIndices
	extensional bool
	presentable bool
}

// suitable reports whether the device can drive the whole pipeline: both
// queue roles filled, required extensions present, and at least one surface
// format and present mode to negotiate with.
func (p deviceProfile) suitable() bool {
	return p.indices.Complete() && p.extensional && p.presentable
}

// firstSuitable returns the index of the first suitable profile in
// enumeration order. No scoring; the first match wins.
func firstSuitable(profiles []deviceProfile) (int, bool) {
	for i, p := range profiles {
		if p.suitable() {
			return i, true
		}
	}
	return 0, false
}

// profileDevice interrogates a candidate against the surface. Surface
// capabilities are only consulted once the swapchain extension is known to
// exist.
func profileDevice(gpu vk.PhysicalDevice, surface vk.Surface, extensions []string) deviceProfile {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(gpu, &props)
	props.Deref()

	profile := deviceProfile{
		name:        vk.ToString(props.DeviceName[:]),
		indices:     findQueueFamilies(gpu, surface),
		extensional: supportsDeviceExtensions(gpu, extensions),
	}
	if profile.extensional {
		if support, err := querySwapchainSupport(gpu, surface); err == nil {
			profile.presentable = len(support.Formats) > 0 && len(support.PresentModes) > 0
		}
	}
	return profile
}

// CoreDevice owns the selected physical device, the logical device built on
// it, and the two role queues.
type CoreDevice struct {
	gpu      vk.PhysicalDevice
	handle   vk.Device
	name     string
	indices  QueueFamilyIndices
	graphics vk.Queue
	present  vk.Queue
}

// NewCoreDevice enumerates the physical devices visible to the instance,
// selects the first suitable one, and creates a logical device with one
// queue per distinct family.
func NewCoreDevice(instance *CoreInstance, surface vk.Surface, config Config) (*CoreDevice, error) {
	var count uint32
	ret := vk.EnumeratePhysicalDevices(instance.Handle(), &count, nil)
	if err := NewError(ErrNoSuitableDevice, ret); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, WrapError(ErrNoSuitableDevice, fmt.Errorf("no devices with Vulkan support"))
	}
	gpus := make([]vk.PhysicalDevice, count)
	ret = vk.EnumeratePhysicalDevices(instance.Handle(), &count, gpus)
	if err := NewError(ErrNoSuitableDevice, ret); err != nil {
		return nil, err
	}

	profiles := make([]deviceProfile, len(gpus))
	for i, gpu := range gpus {
		profiles[i] = profileDevice(gpu, surface, config.DeviceExtensions)
	}
	pick, ok := firstSuitable(profiles)
	if !ok {
		return nil, WrapError(ErrNoSuitableDevice,
			fmt.Errorf("%d device(s) enumerated, none suitable", count))
	}

	core := &CoreDevice{
		gpu:     gpus[pick],
		name:    profiles[pick].name,
		indices: profiles[pick].indices,
	}
	if err := core.createLogical(config, instance.Layers()); err != nil {
		return nil, err
	}
	Infof("using device %q (graphics family %d, present family %d)",
		core.name, core.indices.Graphics.Value(), core.indices.Present.Value())
	return core, nil
}

// createLogical builds the logical device. Validation layers are repeated
// here for implementations that still read device layers.
func (d *CoreDevice) createLogical(config Config, layers []string) error {
	var queueInfos []vk.DeviceQueueCreateInfo
	for _, family := range d.indices.UniqueFamilies() {
		queueInfos = append(queueInfos, vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: family,
			QueueCount:       1,
			PQueuePriorities: []float32{1.0},
		})
	}

	var device vk.Device
	ret := vk.CreateDevice(d.gpu, &vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(config.DeviceExtensions)),
		PpEnabledExtensionNames: safeStrings(config.DeviceExtensions),
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     safeStrings(layers),
		PEnabledFeatures:        []vk.PhysicalDeviceFeatures{{}},
	}, nil, &device)
	if err := NewError(ErrDeviceCreation, ret); err != nil {
		return err
	}
	d.handle = device

	var queue vk.Queue
	vk.GetDeviceQueue(device, d.indices.Graphics.Value(), 0, &queue)
	d.graphics = queue
	vk.GetDeviceQueue(device, d.indices.Present.Value(), 0, &queue)
	d.present = queue
	return nil
}

func (d *CoreDevice) Handle() vk.Device           { return d.handle }
func (d *CoreDevice) GPU() vk.PhysicalDevice      { return d.gpu }
func (d *CoreDevice) Name() string                { return d.name }
func (d *CoreDevice) Indices() QueueFamilyIndices { return d.indices }
func (d *CoreDevice) GraphicsQueue() vk.Queue     { return d.graphics }
func (d *CoreDevice) PresentQueue() vk.Queue      { return d.present }

// WaitIdle blocks until the device drains all queued work.
func (d *CoreDevice) WaitIdle() {
	if d == nil || d.handle == nil {
		return
	}
	vk.DeviceWaitIdle(d.handle)
}

func (d *CoreDevice) Destroy() {
	if d == nil || d.handle == nil {
		return
	}
	vk.DestroyDevice(d.handle, nil)
	d.handle = nil
	Infof("logical device destroyed")
}
