package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"packtrack/internal/core/domain/model/movement"
)

func Test_Ledger_Record(t *testing.T) {
	t.Run("records and reads back entries", func(t *testing.T) {
		l := movement.NewLedger()

		l.Record("P005", "PRD-1", "K001", 4)
		l.Record("P005", "PRD-1", "K002", 2)

		entries := l.EntriesFor("P005", "PRD-1")
		require.Len(t, entries, 2)
		assert.Equal(t, movement.Entry{Child: "K001", Quantity: 4}, entries[0])
		assert.Equal(t, movement.Entry{Child: "K002", Quantity: 2}, entries[1])
		assert.True(t, l.HasLog("P005"))
	})

	t.Run("same child merges", func(t *testing.T) {
		l := movement.NewLedger()

		l.Record("P005", "PRD-1", "K001", 4)
		l.Record("P005", "PRD-1", "K001", 3)

		entries := l.EntriesFor("P005", "PRD-1")
		require.Len(t, entries, 1)
		assert.Equal(t, 7.0, entries[0].Quantity)
	})

	t.Run("non-positive quantity is ignored", func(t *testing.T) {
		l := movement.NewLedger()
		l.Record("P005", "PRD-1", "K001", 0)
		assert.False(t, l.HasLog("P005"))
	})
}

func Test_Ledger_Relations(t *testing.T) {
	t.Run("attach and detach keep both directions", func(t *testing.T) {
		l := movement.NewLedger()

		l.AttachChild("P005", "K001")
		l.AttachChild("P005", "K002")

		assert.Equal(t, []string{"K001", "K002"}, l.ChildrenOf("P005"))
		parent, ok := l.ParentOf("K001")
		require.True(t, ok)
		assert.Equal(t, "P005", parent)

		l.DetachChild("P005", "K001")
		assert.Equal(t, []string{"K002"}, l.ChildrenOf("P005"))
		_, ok = l.ParentOf("K001")
		assert.False(t, ok)
	})

	t.Run("re-attach moves the child", func(t *testing.T) {
		l := movement.NewLedger()
		l.AttachChild("P005", "K001")

		l.AttachChild("P006", "K001")

		assert.Empty(t, l.ChildrenOf("P005"))
		assert.Equal(t, []string{"K001"}, l.ChildrenOf("P006"))
		parent, _ := l.ParentOf("K001")
		assert.Equal(t, "P006", parent)
	})

	t.Run("duplicate attach is idempotent", func(t *testing.T) {
		l := movement.NewLedger()
		l.AttachChild("P005", "K001")
		l.AttachChild("P005", "K001")
		assert.Equal(t, []string{"K001"}, l.ChildrenOf("P005"))
	})
}

func Test_Ledger_MovedTotal(t *testing.T) {
	l := movement.NewLedger()
	l.Record("P005", "PRD-1", "K001", 4)
	l.Record("P005", "PRD-2", "K001", 1)
	l.Record("P006", "PRD-1", "K001", 2)
	l.Record("P005", "PRD-1", "K002", 5)

	total := l.MovedTotal("K001")

	assert.Equal(t, 6.0, total["PRD-1"])
	assert.Equal(t, 1.0, total["PRD-2"])
	_, ok := total["PRD-3"]
	assert.False(t, ok)
}

func Test_Ledger_PurgeChild(t *testing.T) {
	l := movement.NewLedger()
	l.Record("P005", "PRD-1", "K001", 4)
	l.Record("P005", "PRD-1", "K002", 2)
	l.AttachChild("P005", "K001")
	l.AttachChild("P005", "K002")

	l.PurgeChild("K001")

	entries := l.EntriesFor("P005", "PRD-1")
	require.Len(t, entries, 1)
	assert.Equal(t, "K002", entries[0].Child)
	assert.Equal(t, []string{"K002"}, l.ChildrenOf("P005"))
	_, ok := l.ParentOf("K001")
	assert.False(t, ok)
}

func Test_Ledger_DropParent(t *testing.T) {
	l := movement.NewLedger()
	l.Record("P005", "PRD-1", "K001", 4)
	l.AttachChild("P005", "K001")
	l.AttachChild("P005", "K002")

	l.DropParent("P005")

	assert.False(t, l.HasLog("P005"))
	assert.Empty(t, l.ChildrenOf("P005"))
	_, ok := l.ParentOf("K001")
	assert.False(t, ok)
	_, ok = l.ParentOf("K002")
	assert.False(t, ok)
}

func Test_Ledger_Archive(t *testing.T) {
	l := movement.NewLedger()

	l.Archive("K001", 4)
	total, ok := l.ArchivedTotal("K001")
	require.True(t, ok)
	assert.Equal(t, 4.0, total)

	// zero totals never overwrite an archived value
	l.Archive("K001", 0)
	total, _ = l.ArchivedTotal("K001")
	assert.Equal(t, 4.0, total)

	l.DropArchive("K001")
	_, ok = l.ArchivedTotal("K001")
	assert.False(t, ok)
}

func Test_Ledger_ProductsOf(t *testing.T) {
	l := movement.NewLedger()
	l.Record("P005", "PRD-2", "K001", 1)
	l.Record("P005", "PRD-1", "K001", 1)

	assert.Equal(t, []string{"PRD-1", "PRD-2"}, l.ProductsOf("P005"))
}

func Test_Ledger_Clone(t *testing.T) {
	l := movement.NewLedger()
	l.Record("P005", "PRD-1", "K001", 4)
	l.AttachChild("P005", "K001")
	l.Archive("K001", 4)

	cp := l.Clone()
	cp.Record("P005", "PRD-1", "K001", 10)
	cp.AttachChild("P005", "K009")
	cp.DropArchive("K001")

	entries := l.EntriesFor("P005", "PRD-1")
	require.Len(t, entries, 1)
	assert.Equal(t, 4.0, entries[0].Quantity)
	assert.Equal(t, []string{"K001"}, l.ChildrenOf("P005"))
	_, ok := l.ArchivedTotal("K001")
	assert.True(t, ok)
}
