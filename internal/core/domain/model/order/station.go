package order

import "packtrack/internal/pkg/errs"

// Station identifies a production station feeding products into the order:
// its display name, the short code used in station-scoped container codes,
// and the packer responsible for it.
//
// Station is an immutable value object.
type Station struct {
	name   string
	code   string
	packer string
}

// NewStation creates a Station with validation.
//
// Parameters:
//   - name: station display name (required)
//   - code: short uppercase code used in container codes (required)
//   - packer: responsible packer name (optional)
func NewStation(name, code, packer string) (Station, error) {
	if name == "" {
		return Station{}, errs.NewValueIsRequiredError("station name")
	}
	if code == "" {
		return Station{}, errs.NewValueIsRequiredError("station code")
	}
	return Station{name: name, code: code, packer: packer}, nil
}

// Name returns the station display name.
func (s Station) Name() string { return s.name }

// Code returns the short station code.
func (s Station) Code() string { return s.code }

// Packer returns the responsible packer name.
func (s Station) Packer() string { return s.packer }
