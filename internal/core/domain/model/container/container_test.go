package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"packtrack/internal/core/domain/model/container"
	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/pkg/errs"
)

func mustContainer(t *testing.T, code string) *container.Container {
	t.Helper()
	c, err := container.NewContainer(code, "ORD-1")
	require.NoError(t, err)
	return c
}

func Test_NewContainer(t *testing.T) {
	t.Run("type is inferred from the code", func(t *testing.T) {
		tests := map[string]kernel.ContainerType{
			"P001":     kernel.Pallet,
			"S002":     kernel.Crate,
			"K003":     kernel.Box,
			"CUT-K001": kernel.Box,
			"CUT-P001": kernel.Bag,
		}

		for code, want := range tests {
			c := mustContainer(t, code)
			assert.Equal(t, want, c.Type(), code)
			assert.Equal(t, container.Preparing, c.Status())
		}
	})

	t.Run("recorded type overrides inference", func(t *testing.T) {
		c := mustContainer(t, "P001")
		require.NoError(t, c.SetType(kernel.Bag))
		assert.Equal(t, kernel.Bag, c.Type())

		assert.ErrorIs(t, c.SetType(kernel.TypeUnknown), errs.ErrValueIsInvalid)
	})

	t.Run("code is required", func(t *testing.T) {
		_, err := container.NewContainer("", "ORD-1")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func Test_Container_Validate(t *testing.T) {
	var c container.Container
	assert.ErrorIs(t, c.Validate(), container.ErrContainerIsNotConstructed)
}

func Test_Container_SealReopen(t *testing.T) {
	t.Run("seal then reopen", func(t *testing.T) {
		c := mustContainer(t, "P001")

		require.NoError(t, c.Seal())
		assert.Equal(t, container.Sealed, c.Status())

		require.NoError(t, c.Reopen())
		assert.Equal(t, container.Preparing, c.Status())
	})

	t.Run("double seal is rejected", func(t *testing.T) {
		c := mustContainer(t, "P001")
		require.NoError(t, c.Seal())

		assert.ErrorIs(t, c.Seal(), errs.ErrValueIsInvalid)
	})

	t.Run("reopen requires sealed", func(t *testing.T) {
		c := mustContainer(t, "P001")
		assert.ErrorIs(t, c.Reopen(), errs.ErrValueIsInvalid)
	})
}

func Test_Container_Load(t *testing.T) {
	t.Run("load records vehicle", func(t *testing.T) {
		c := mustContainer(t, "P001")

		require.NoError(t, c.Load("Truck", "34 ABC 123", "John"))

		assert.Equal(t, container.Loaded, c.Status())
		assert.Equal(t, "Truck", c.VehicleType())
		assert.Equal(t, "34 ABC 123", c.VehicleNo())
		assert.Equal(t, "John", c.DriverName())
	})

	t.Run("load from sealed", func(t *testing.T) {
		c := mustContainer(t, "P001")
		require.NoError(t, c.Seal())

		assert.NoError(t, c.Load("Truck", "34 ABC 123", ""))
	})

	t.Run("vehicle plate is required", func(t *testing.T) {
		c := mustContainer(t, "P001")
		assert.ErrorIs(t, c.Load("Truck", "", ""), errs.ErrValueIsRequired)
	})

	t.Run("cannot load twice", func(t *testing.T) {
		c := mustContainer(t, "P001")
		require.NoError(t, c.Load("Truck", "34 ABC 123", ""))

		assert.ErrorIs(t, c.Load("Truck", "34 ABC 123", ""), errs.ErrValueIsInvalid)
	})
}

func Test_Container_Deliver(t *testing.T) {
	t.Run("deliver records receipt", func(t *testing.T) {
		c := mustContainer(t, "P001")
		receipt, err := container.NewDeliveryReceipt("Jane", "2026-02-10", "Site A", "")
		require.NoError(t, err)

		require.NoError(t, c.Deliver(receipt))

		assert.Equal(t, container.Delivered, c.Status())
		require.NotNil(t, c.Receipt())
		assert.Equal(t, "Jane", c.Receipt().Receiver())
		assert.True(t, c.Receipt().Confirmed())
	})

	t.Run("delivered is final", func(t *testing.T) {
		c := mustContainer(t, "P001")
		receipt, _ := container.NewDeliveryReceipt("Jane", "2026-02-10", "", "")
		require.NoError(t, c.Deliver(receipt))

		assert.ErrorIs(t, c.Deliver(receipt), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, c.Load("Truck", "34 ABC 123", ""), errs.ErrValueIsInvalid)
	})

	t.Run("receipt requires receiver and date", func(t *testing.T) {
		_, err := container.NewDeliveryReceipt("", "2026-02-10", "", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = container.NewDeliveryReceipt("Jane", "", "", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func Test_Container_InheritFrom(t *testing.T) {
	t.Run("lifecycle state survives recompute", func(t *testing.T) {
		prev := mustContainer(t, "P001")
		prev.SetContent([]string{"PRD-1"}, 4, nil)
		prev.SetSupervisor("John")
		prev.SetChildren([]string{"K001"})
		require.NoError(t, prev.Seal())

		next := mustContainer(t, "P001")
		next.SetContent([]string{"PRD-1"}, 4, nil)
		next.InheritFrom(prev)

		assert.Equal(t, container.Sealed, next.Status())
		assert.Equal(t, "John", next.Supervisor())
		assert.Equal(t, []string{"K001"}, next.Children())
	})

	t.Run("sealed container reopens when content changed", func(t *testing.T) {
		prev := mustContainer(t, "P001")
		prev.SetContent([]string{"PRD-1"}, 4, nil)
		require.NoError(t, prev.Seal())

		next := mustContainer(t, "P001")
		next.SetContent([]string{"PRD-1"}, 6, nil)
		next.InheritFrom(prev)

		assert.Equal(t, container.Preparing, next.Status())
	})

	t.Run("recorded type wins over inference", func(t *testing.T) {
		prev := mustContainer(t, "P001")
		require.NoError(t, prev.SetType(kernel.Bag))

		next := mustContainer(t, "P001")
		require.Equal(t, kernel.Pallet, next.Type())
		next.InheritFrom(prev)

		assert.Equal(t, kernel.Bag, next.Type())
	})

	t.Run("loaded status is not reverted by content change", func(t *testing.T) {
		prev := mustContainer(t, "P001")
		prev.SetContent([]string{"PRD-1"}, 4, nil)
		require.NoError(t, prev.Load("Truck", "34 ABC 123", ""))

		next := mustContainer(t, "P001")
		next.SetContent([]string{"PRD-1"}, 6, nil)
		next.InheritFrom(prev)

		assert.Equal(t, container.Loaded, next.Status())
	})
}

func Test_Container_Children(t *testing.T) {
	c := mustContainer(t, "S001")

	c.SetChildren([]string{"K001", "K002"})

	assert.Equal(t, []string{"K001", "K002"}, c.Children())
	assert.True(t, c.HasChild("K001"))

	c.SetChildren([]string{"K002"})
	assert.False(t, c.HasChild("K001"))
}

func Test_Container_Tombstone(t *testing.T) {
	c := mustContainer(t, "K001")
	assert.True(t, c.IsEmpty())
	assert.False(t, c.IsTombstone())

	c.SetChildren([]string{"K002"})
	assert.True(t, c.IsTombstone())

	c.SetContent([]string{"PRD-1"}, 2, nil)
	assert.False(t, c.IsEmpty())
	assert.False(t, c.IsTombstone())
}

func Test_Container_Clone(t *testing.T) {
	c := mustContainer(t, "P001")
	c.SetContent([]string{"PRD-1"}, 4, []string{"Box"})
	c.SetChildren([]string{"K001"})

	cp := c.Clone()
	cp.SetChildren([]string{"K001", "K002"})
	cp.SetContent([]string{"PRD-1", "PRD-2"}, 7, nil)

	assert.Equal(t, []string{"K001"}, c.Children())
	assert.Equal(t, 4.0, c.Quantity())
	assert.Equal(t, []string{"K001", "K002"}, cp.Children())
}
