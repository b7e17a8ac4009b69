package product

// Allocation records a portion of a product's produced quantity assigned to
// one container. A product never holds two allocations to the same container:
// repeated assignments merge into the existing entry, and an allocation whose
// quantity reaches zero is pruned rather than stored.
type Allocation struct {
	containerCode    string
	quantity         float64
	packer           string
	subPackagingType string
}

// ContainerCode returns the code of the container the allocation points to.
func (a Allocation) ContainerCode() string {
	return a.containerCode
}

// Quantity returns the allocated quantity. Always greater than zero for a
// stored allocation.
func (a Allocation) Quantity() float64 {
	return a.quantity
}

// Packer returns the identity of the person who packed the allocation, or
// empty when unknown.
func (a Allocation) Packer() string {
	return a.packer
}

// SubPackagingType returns the free-text sub-packaging description recorded
// with the allocation (e.g. a box build type), or empty.
func (a Allocation) SubPackagingType() string {
	return a.subPackagingType
}
