package order

import (
	"fmt"

	"packtrack/internal/pkg/errs"
)

// Stage represents the workflow step the packing panel is focused on for an
// order. Unlike container status, the stage is a navigation pointer, not a
// completion record: the user may move freely between stages, and each
// stage's actions carry their own gating.
//
// Stage order:
//
//	Packaging ── Shipment ── Loading ── FieldDelivery
//
// Stage is a value object that validates its values and provides string
// representations for persistence and display.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	StageUnknown Stage = iota

	// Packaging is the initial stage: products are allocated into containers.
	Packaging

	// Shipment covers shipment-depot transfer approval and shipment packaging.
	Shipment

	// Loading covers loading sealed containers onto vehicles.
	Loading

	// FieldDelivery covers on-site delivery and receipt capture.
	FieldDelivery
)

// getStageStrings returns a map of Stage values to their string representations.
// All stages are included for string conversion.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:  "Unknown",
		Packaging:     "Packaging",
		Shipment:      "Shipment",
		Loading:       "Loading",
		FieldDelivery: "FieldDelivery",
	}
}

// getValidStageStrings returns a map of only valid Stage values.
// Only valid stages are included to support validation.
func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // StageUnknown is intentionally excluded as it's invalid
	return map[Stage]string{
		Packaging:     "Packaging",
		Shipment:      "Shipment",
		Loading:       "Loading",
		FieldDelivery: "FieldDelivery",
	}
}

// Validate checks if the Stage value is valid.
//
// Valid stages are: Packaging, Shipment, Loading, FieldDelivery.
// StageUnknown (0) and any other values are invalid.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
// Safe to call on any Stage value, including invalid ones.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Ordinal returns the 1-based position of the stage in the workflow, or 0
// for invalid stages. Used by projections to render the stage strip.
func (s Stage) Ordinal() int {
	if s.Validate() != nil {
		return 0
	}
	return int(s)
}

// ParseStage converts a stage name back to its Stage value.
// Unrecognized names return StageUnknown with a validation error.
func ParseStage(name string) (Stage, error) {
	for stage, str := range getValidStageStrings() {
		if str == name {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause("stage is invalid",
		fmt.Errorf("%q is not a valid stage name", name))
}
