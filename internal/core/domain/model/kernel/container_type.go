package kernel

import (
	"fmt"
	"strings"

	"packtrack/internal/pkg/errs"
)

// ContainerType classifies the physical packaging units an order is packed
// into. Pallets and crates are top-level shipment containers; boxes and bags
// are small capsules that originate at production stations and are later
// nested under a pallet or crate.
type ContainerType int

const (
	// TypeUnknown represents an invalid or undefined container type.
	TypeUnknown ContainerType = iota

	// Pallet is a top-level shipment container, code prefix "P".
	Pallet

	// Crate is a top-level shipment container, code prefix "S".
	Crate

	// Box is a small capsule container, code prefix "K".
	Box

	// Bag is a small capsule container. Bags reuse the "P" prefix; inside a
	// station-scoped code the position after the dash disambiguates them
	// from pallets.
	Bag
)

func getContainerTypeStrings() map[ContainerType]string {
	return map[ContainerType]string{
		TypeUnknown: "Unknown",
		Pallet:      "Pallet",
		Crate:       "Crate",
		Box:         "Box",
		Bag:         "Bag",
	}
}

// Validate checks that the ContainerType is one of the four valid types.
func (t ContainerType) Validate() error {
	switch t {
	case Pallet, Crate, Box, Bag:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("container type is invalid",
			fmt.Errorf("%d is not a valid container type", t))
	}
}

// String returns the human-readable name of the container type.
func (t ContainerType) String() string {
	if s, ok := getContainerTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// Prefix returns the single-letter code prefix for the container type.
// Bags share the pallet prefix.
func (t ContainerType) Prefix() string {
	switch t {
	case Crate:
		return "S"
	case Box:
		return "K"
	default:
		return "P"
	}
}

// IsTopLevel reports whether the type is a pallet or crate, the only types
// that may carry nested capsules and shipment metadata.
func (t ContainerType) IsTopLevel() bool {
	return t == Pallet || t == Crate
}

// IsCapsule reports whether the type is a box or bag.
func (t ContainerType) IsCapsule() bool {
	return t == Box || t == Bag
}

// ParseContainerType converts an external type name ("pallet", "crate",
// "box", "bag", case-insensitive) into a ContainerType.
func ParseContainerType(s string) (ContainerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pallet":
		return Pallet, nil
	case "crate":
		return Crate, nil
	case "box":
		return Box, nil
	case "bag":
		return Bag, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("container type is invalid",
			fmt.Errorf("%q is not a valid container type", s))
	}
}
