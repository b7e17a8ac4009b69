package kernel_test

import (
	"testing"

	"packtrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerType(t *testing.T) {
	t.Run("prefixes", func(t *testing.T) {
		assert.Equal(t, "P", kernel.Pallet.Prefix())
		assert.Equal(t, "S", kernel.Crate.Prefix())
		assert.Equal(t, "K", kernel.Box.Prefix())
		assert.Equal(t, "P", kernel.Bag.Prefix())
	})

	t.Run("classification", func(t *testing.T) {
		assert.True(t, kernel.Pallet.IsTopLevel())
		assert.True(t, kernel.Crate.IsTopLevel())
		assert.False(t, kernel.Box.IsTopLevel())
		assert.True(t, kernel.Box.IsCapsule())
		assert.True(t, kernel.Bag.IsCapsule())
		assert.False(t, kernel.Pallet.IsCapsule())
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, kernel.Bag.Validate())
		require.Error(t, kernel.TypeUnknown.Validate())
		require.Error(t, kernel.ContainerType(42).Validate())
	})

	t.Run("parse", func(t *testing.T) {
		typ, err := kernel.ParseContainerType("Crate")
		require.NoError(t, err)
		assert.Equal(t, kernel.Crate, typ)

		_, err = kernel.ParseContainerType("barrel")
		require.Error(t, err)
	})
}

func TestFormatContainerCode(t *testing.T) {
	assert.Equal(t, "P001", kernel.FormatContainerCode(kernel.Pallet, 1))
	assert.Equal(t, "S012", kernel.FormatContainerCode(kernel.Crate, 12))
	assert.Equal(t, "K123", kernel.FormatContainerCode(kernel.Box, 123))
	assert.Equal(t, "KES-K004", kernel.FormatStationCode("KES", kernel.Box, 4))
	assert.Equal(t, "DEP-P001", kernel.FormatStationCode("DEP", kernel.Bag, 1))
}

func TestCapsuleTypeOf(t *testing.T) {
	station, typ := kernel.CapsuleTypeOf("KES-K001")
	assert.Equal(t, "KES", station)
	assert.Equal(t, kernel.Box, typ)

	station, typ = kernel.CapsuleTypeOf("DEP-P002")
	assert.Equal(t, "DEP", station)
	assert.Equal(t, kernel.Bag, typ)

	_, typ = kernel.CapsuleTypeOf("P001")
	assert.Equal(t, kernel.TypeUnknown, typ)
}

func TestInferContainerType(t *testing.T) {
	tests := []struct {
		code string
		want kernel.ContainerType
	}{
		{"P001", kernel.Pallet},
		{"S002", kernel.Crate},
		{"K003", kernel.Box},
		{"KES-K001", kernel.Box},
		{"KES-P001", kernel.Bag},
		{"X999", kernel.Pallet}, // unknown prefix defaults to pallet
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.want, kernel.InferContainerType(tc.code))
		})
	}
}
