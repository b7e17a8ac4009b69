package kernel

import (
	"fmt"
	"strings"
)

// Container code formats:
//
//	P001         top-level pallet (also bags created outside a station)
//	S002         top-level crate
//	K003         box
//	KES-K001     station-scoped box   (<StationCode>-K<NNN>)
//	KES-P001     station-scoped bag   (<StationCode>-P<NNN>)
//
// The sequence part is always three digits, zero padded. Sequences are
// issued per (type, station) key and are never reused within a session, even
// after the container is cancelled.

// FormatContainerCode renders a top-level container code for the given type
// and sequence number.
func FormatContainerCode(t ContainerType, seq int) string {
	return fmt.Sprintf("%s%03d", t.Prefix(), seq)
}

// FormatStationCode renders a station-scoped capsule code, e.g. "KES-K004".
func FormatStationCode(station string, t ContainerType, seq int) string {
	return fmt.Sprintf("%s-%s%03d", station, t.Prefix(), seq)
}

// SplitStationCode splits a station-scoped code into its station prefix and
// local part. For codes without a dash the station prefix is empty and the
// local part is the whole code.
func SplitStationCode(code string) (station, local string) {
	if i := strings.Index(code, "-"); i > 0 {
		return code[:i], code[i+1:]
	}
	return "", code
}

// CapsuleTypeOf classifies a station-scoped capsule code. After the dash,
// "K" marks a box and "P" marks a bag. Codes without a station prefix or
// with an unrecognized local prefix yield TypeUnknown.
func CapsuleTypeOf(code string) (station string, t ContainerType) {
	station, local := SplitStationCode(code)
	if station == "" || local == "" {
		return "", TypeUnknown
	}
	switch local[0] {
	case 'K':
		return station, Box
	case 'P':
		return station, Bag
	default:
		return station, TypeUnknown
	}
}

// InferContainerType derives a container's type from its code alone. This is
// a fallback used only for containers with no recorded type: the rule order
// is station-scoped capsule pattern first, then the generic single-letter
// prefix, then pallet as the default.
func InferContainerType(code string) ContainerType {
	if station, t := CapsuleTypeOf(code); station != "" && t != TypeUnknown {
		return t
	}
	switch {
	case strings.HasPrefix(code, "S"):
		return Crate
	case strings.HasPrefix(code, "P"):
		return Pallet
	case strings.HasPrefix(code, "K"):
		return Box
	default:
		return Pallet
	}
}
