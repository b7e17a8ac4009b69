package movement

import (
	"maps"
	"slices"
)

// Entry records one logged movement: the child container a quantity came
// from and how much of it moved.
type Entry struct {
	Child    string
	Quantity float64
}

// Ledger is the movement log for container transfers. For every parent
// container it records, per product, which child containers contributed
// which quantities. It also owns the parent/child relation indexes and the
// capsule archive of last known nonzero totals.
//
// The relation indexes are maintained together with the log so they can
// never drift apart: attaching, detaching and purging always update both
// directions in one call.
type Ledger struct {
	// moves holds parent -> product -> contributing entries
	moves map[string]map[string][]Entry

	// parentOf maps a child container to its current parent
	parentOf map[string]string

	// children maps a parent to its child codes in attachment order
	children map[string][]string

	// archive keeps the last known nonzero total per capsule for
	// historical summaries after the capsule was emptied by transfer
	archive map[string]float64
}

// NewLedger creates an empty movement ledger.
func NewLedger() *Ledger {
	return &Ledger{
		moves:    make(map[string]map[string][]Entry),
		parentOf: make(map[string]string),
		children: make(map[string][]string),
		archive:  make(map[string]float64),
	}
}

// Record logs that quantity of product moved from child into parent.
// Repeated movements of the same product from the same child merge into one
// entry. Non-positive quantities are ignored.
func (l *Ledger) Record(parent, product, child string, quantity float64) {
	if quantity <= 0 {
		return
	}
	byProduct, ok := l.moves[parent]
	if !ok {
		byProduct = make(map[string][]Entry)
		l.moves[parent] = byProduct
	}
	for i, e := range byProduct[product] {
		if e.Child == child {
			byProduct[product][i].Quantity += quantity
			return
		}
	}
	byProduct[product] = append(byProduct[product], Entry{Child: child, Quantity: quantity})
}

// AttachChild records child as belonging to parent. A child already attached
// elsewhere is moved: the old parent's list is updated as well.
func (l *Ledger) AttachChild(parent, child string) {
	if prev, ok := l.parentOf[child]; ok {
		if prev == parent {
			return
		}
		l.removeFromChildren(prev, child)
	}
	l.parentOf[child] = parent
	if !slices.Contains(l.children[parent], child) {
		l.children[parent] = append(l.children[parent], child)
	}
}

// DetachChild removes the parent/child relation in both directions.
func (l *Ledger) DetachChild(parent, child string) {
	if l.parentOf[child] == parent {
		delete(l.parentOf, child)
	}
	l.removeFromChildren(parent, child)
}

// ChildrenOf returns a copy of the parent's child codes in attachment order.
func (l *Ledger) ChildrenOf(parent string) []string {
	return slices.Clone(l.children[parent])
}

// ParentOf returns the parent of the given child, when one is recorded.
func (l *Ledger) ParentOf(child string) (string, bool) {
	parent, ok := l.parentOf[child]
	return parent, ok
}

// EntriesFor returns a copy of the logged entries for product under parent.
func (l *Ledger) EntriesFor(parent, product string) []Entry {
	return slices.Clone(l.moves[parent][product])
}

// HasLog reports whether any movement is logged under parent.
func (l *Ledger) HasLog(parent string) bool {
	for _, entries := range l.moves[parent] {
		if len(entries) > 0 {
			return true
		}
	}
	return false
}

// ProductsOf returns the products with logged movements under parent,
// sorted for deterministic iteration.
func (l *Ledger) ProductsOf(parent string) []string {
	out := slices.Collect(maps.Keys(l.moves[parent]))
	slices.Sort(out)
	return out
}

// MovedTotal returns, per product, the total quantity moved out of the given
// child container across all parents.
func (l *Ledger) MovedTotal(child string) map[string]float64 {
	out := make(map[string]float64)
	for _, byProduct := range l.moves {
		for product, entries := range byProduct {
			for _, e := range entries {
				if e.Child == child {
					out[product] += e.Quantity
				}
			}
		}
	}
	return out
}

// PurgeChild removes every trace of the child container: its log entries
// under all parents and its relation to its parent.
func (l *Ledger) PurgeChild(child string) {
	for parent, byProduct := range l.moves {
		for product, entries := range byProduct {
			kept := entries[:0]
			for _, e := range entries {
				if e.Child != child {
					kept = append(kept, e)
				}
			}
			if len(kept) == 0 {
				delete(byProduct, product)
			} else {
				byProduct[product] = kept
			}
		}
		if len(byProduct) == 0 {
			delete(l.moves, parent)
		}
	}
	if parent, ok := l.parentOf[child]; ok {
		delete(l.parentOf, child)
		l.removeFromChildren(parent, child)
	}
}

// DropParent discards the parent's log and releases all its children.
func (l *Ledger) DropParent(parent string) {
	delete(l.moves, parent)
	for _, child := range l.children[parent] {
		if l.parentOf[child] == parent {
			delete(l.parentOf, child)
		}
	}
	delete(l.children, parent)
}

// Archive stores the last known nonzero total for a capsule container.
// Zero or negative totals are ignored so an archived value is never
// overwritten by an emptied state.
func (l *Ledger) Archive(capsule string, total float64) {
	if total > 0 {
		l.archive[capsule] = total
	}
}

// ArchivedTotal returns the archived total for a capsule, when one exists.
func (l *Ledger) ArchivedTotal(capsule string) (float64, bool) {
	total, ok := l.archive[capsule]
	return total, ok
}

// DropArchive removes the archived total for a capsule.
func (l *Ledger) DropArchive(capsule string) {
	delete(l.archive, capsule)
}

// Clone returns a deep copy of the ledger. Used by the in-memory unit of
// work to snapshot state before a command runs.
func (l *Ledger) Clone() *Ledger {
	cp := NewLedger()
	for parent, byProduct := range l.moves {
		cpProducts := make(map[string][]Entry, len(byProduct))
		for product, entries := range byProduct {
			cpProducts[product] = slices.Clone(entries)
		}
		cp.moves[parent] = cpProducts
	}
	maps.Copy(cp.parentOf, l.parentOf)
	for parent, kids := range l.children {
		cp.children[parent] = slices.Clone(kids)
	}
	maps.Copy(cp.archive, l.archive)
	return cp
}

func (l *Ledger) removeFromChildren(parent, child string) {
	kids := l.children[parent]
	kids = slices.DeleteFunc(kids, func(s string) bool { return s == child })
	if len(kids) == 0 {
		delete(l.children, parent)
	} else {
		l.children[parent] = kids
	}
}
