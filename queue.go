package embervk

import vk "github.com/vulkan-go/vulkan"

// FamilyIndex is an optional queue family slot, absent until Set.
type FamilyIndex struct {
	value uint32
	valid bool
}

func (f *FamilyIndex) Set(v uint32) {
	f.value = v
	f.valid = true
}

// Has reports whether the slot was filled during the scan.
func (f FamilyIndex) Has() bool { return f.valid }

// Value returns the family index. Only meaningful when Has is true.
func (f FamilyIndex) Value() uint32 { return f.value }

// QueueFamilyIndices carries the families satisfying the graphics and
// presentation roles on one candidate device. The roles may coincide.
type QueueFamilyIndices struct {
	Graphics FamilyIndex
	Present  FamilyIndex
}

// Complete reports whether both roles found a family.
func (q QueueFamilyIndices) Complete() bool {
	return q.Graphics.Has() && q.Present.Has()
}

// Shared reports whether both roles landed on the same family.
func (q QueueFamilyIndices) Shared() bool {
	return q.Graphics.Has() && q.Present.Has() &&
		q.Graphics.Value() == q.Present.Value()
}

// UniqueFamilies collapses the two roles into the distinct family set,
// graphics first. The logical device declares one queue per entry.
func (q QueueFamilyIndices) UniqueFamilies() []uint32 {
	families := []uint32{q.Graphics.Value()}
	if !q.Shared() {
		families = append(families, q.Present.Value())
	}
	return families
}

// scanFamilies walks queue family properties in index order, recording
// graphics capability from the flags and present capability from presentAt,
// and stops as soon as both roles are satisfied.
func scanFamilies(props []vk.QueueFamilyProperties, presentAt func(i uint32) bool) QueueFamilyIndices {
	var indices QueueFamilyIndices
	for i, family := range props {
		family.Deref()
		if family.QueueFlags&vk.QueueFlags(vk.QueueGraphicsBit) != 0 {
			indices.Graphics.Set(uint32(i))
		}
		if presentAt(uint32(i)) {
			indices.Present.Set(uint32(i))
		}
		if indices.Complete() {
			break
		}
	}
	return indices
}

// findQueueFamilies runs the family scan against a live device and surface.
// A read-only query; nothing is created.
func findQueueFamilies(gpu vk.PhysicalDevice, surface vk.Surface) QueueFamilyIndices {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(gpu, &count, nil)
	props := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(gpu, &count, props)

	return scanFamilies(props, func(i uint32) bool {
		var support vk.Bool32
		ret := vk.GetPhysicalDeviceSurfaceSupport(gpu, i, surface, &support)
		return !isError(ret) && support.B()
	})
}
