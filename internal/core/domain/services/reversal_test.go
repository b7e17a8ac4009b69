package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"packtrack/internal/core/domain/model/movement"
	"packtrack/internal/core/domain/model/product"
	"packtrack/internal/core/domain/services"
)

func Test_ReversalService_UnassignChild(t *testing.T) {
	transfer := services.NewTransferService()
	reversal := services.NewReversalService()

	t.Run("returns the logged amount to the child", func(t *testing.T) {
		p := mustProduct(t, "PRD-1", 10)
		require.NoError(t, p.Assign("K001", 4, "", ""))
		require.NoError(t, p.Assign("K002", 2, "", ""))
		ledger := movement.NewLedger()
		require.NoError(t, transfer.Transfer([]*product.Product{p}, []string{"K001", "K002"}, "P005", ledger))

		err := reversal.UnassignChild("P005", "K001", []*product.Product{p}, ledger)

		require.NoError(t, err)
		k1, ok := p.AllocationTo("K001")
		require.True(t, ok)
		assert.Equal(t, 4.0, k1.Quantity())
		parent, _ := p.AllocationTo("P005")
		assert.Equal(t, 2.0, parent.Quantity())
		assert.Equal(t, []string{"K002"}, ledger.ChildrenOf("P005"))

		entries := ledger.EntriesFor("P005", "PRD-1")
		require.Len(t, entries, 1)
		assert.Equal(t, "K002", entries[0].Child)
	})

	t.Run("untracked fallback returns the whole allocation", func(t *testing.T) {
		p := mustProduct(t, "PRD-1", 10)
		require.NoError(t, p.Assign("P005", 6, "", ""))
		ledger := movement.NewLedger()
		ledger.AttachChild("P005", "K001")

		err := reversal.UnassignChild("P005", "K001", []*product.Product{p}, ledger)

		require.NoError(t, err)
		k1, ok := p.AllocationTo("K001")
		require.True(t, ok)
		assert.Equal(t, 6.0, k1.Quantity())
		_, ok = p.AllocationTo("P005")
		assert.False(t, ok)
		assert.Empty(t, ledger.ChildrenOf("P005"))
	})

	t.Run("untracked fallback applies with siblings attached", func(t *testing.T) {
		p := mustProduct(t, "PRD-1", 10)
		require.NoError(t, p.Assign("P005", 6, "", ""))
		ledger := movement.NewLedger()
		ledger.AttachChild("P005", "K001")
		ledger.AttachChild("P005", "K002")

		err := reversal.UnassignChild("P005", "K001", []*product.Product{p}, ledger)

		require.NoError(t, err)
		k1, ok := p.AllocationTo("K001")
		require.True(t, ok)
		assert.Equal(t, 6.0, k1.Quantity())
		_, ok = p.AllocationTo("P005")
		assert.False(t, ok)
		assert.Equal(t, []string{"K002"}, ledger.ChildrenOf("P005"))
	})

	t.Run("fallback is per product", func(t *testing.T) {
		logged := mustProduct(t, "PRD-1", 10)
		require.NoError(t, logged.Assign("K001", 4, "", ""))
		unlogged := mustProduct(t, "PRD-2", 8)
		ledger := movement.NewLedger()
		require.NoError(t, transfer.Transfer([]*product.Product{logged}, []string{"K001"}, "P005", ledger))
		require.NoError(t, unlogged.Assign("P005", 3, "", ""))

		err := reversal.UnassignChild("P005", "K001", []*product.Product{logged, unlogged}, ledger)

		require.NoError(t, err)
		a, ok := logged.AllocationTo("K001")
		require.True(t, ok)
		assert.Equal(t, 4.0, a.Quantity())
		b, ok := unlogged.AllocationTo("K001")
		require.True(t, ok)
		assert.Equal(t, 3.0, b.Quantity())
		_, ok = unlogged.AllocationTo("P005")
		assert.False(t, ok)
	})

	t.Run("round trip restores the pre-transfer state", func(t *testing.T) {
		p := mustProduct(t, "PRD-1", 10)
		require.NoError(t, p.Assign("K001", 4, "", ""))
		remainingBefore := p.Remaining()
		ledger := movement.NewLedger()

		require.NoError(t, transfer.Transfer([]*product.Product{p}, []string{"K001"}, "P005", ledger))
		require.NoError(t, reversal.UnassignChild("P005", "K001", []*product.Product{p}, ledger))

		assert.Equal(t, remainingBefore, p.Remaining())
		a, ok := p.AllocationTo("K001")
		require.True(t, ok)
		assert.Equal(t, 4.0, a.Quantity())
		assert.False(t, ledger.HasLog("P005"))
	})
}

func Test_ReversalService_CancelContainer(t *testing.T) {
	transfer := services.NewTransferService()
	reversal := services.NewReversalService()

	t.Run("logged movements restore exactly, not an even split", func(t *testing.T) {
		p := mustProduct(t, "PRD-1", 10)
		require.NoError(t, p.Assign("K001", 4, "", ""))
		require.NoError(t, p.Assign("K002", 2, "", ""))
		ledger := movement.NewLedger()
		require.NoError(t, transfer.Transfer([]*product.Product{p}, []string{"K001", "K002"}, "P005", ledger))

		err := reversal.CancelContainer("P005", []*product.Product{p}, ledger)

		require.NoError(t, err)
		k1, _ := p.AllocationTo("K001")
		k2, _ := p.AllocationTo("K002")
		assert.Equal(t, 4.0, k1.Quantity())
		assert.Equal(t, 2.0, k2.Quantity())
		_, ok := p.AllocationTo("P005")
		assert.False(t, ok)
		assert.False(t, ledger.HasLog("P005"))
		assert.Empty(t, ledger.ChildrenOf("P005"))
	})

	t.Run("even split without a log, remainder to the first children", func(t *testing.T) {
		p := mustProduct(t, "PRD-1", 20)
		require.NoError(t, p.Assign("P005", 11, "", ""))
		ledger := movement.NewLedger()
		ledger.AttachChild("P005", "K001")
		ledger.AttachChild("P005", "K002")
		ledger.AttachChild("P005", "K003")

		err := reversal.CancelContainer("P005", []*product.Product{p}, ledger)

		require.NoError(t, err)
		k1, _ := p.AllocationTo("K001")
		k2, _ := p.AllocationTo("K002")
		k3, _ := p.AllocationTo("K003")
		assert.Equal(t, 4.0, k1.Quantity())
		assert.Equal(t, 4.0, k2.Quantity())
		assert.Equal(t, 3.0, k3.Quantity())
	})

	t.Run("no children returns the quantity to the pool", func(t *testing.T) {
		p := mustProduct(t, "PRD-1", 10)
		require.NoError(t, p.Assign("P005", 6, "", ""))
		require.Equal(t, 4.0, p.Remaining())
		ledger := movement.NewLedger()

		err := reversal.CancelContainer("P005", []*product.Product{p}, ledger)

		require.NoError(t, err)
		assert.Equal(t, 10.0, p.Remaining())
		assert.Equal(t, 10.0, p.DepotQuantity().Value())
	})

	t.Run("archive entry is discarded", func(t *testing.T) {
		p := mustProduct(t, "PRD-1", 10)
		require.NoError(t, p.Assign("K001", 4, "", ""))
		ledger := movement.NewLedger()
		ledger.Archive("K001", 4)

		require.NoError(t, reversal.CancelContainer("K001", []*product.Product{p}, ledger))

		_, ok := ledger.ArchivedTotal("K001")
		assert.False(t, ok)
	})
}
