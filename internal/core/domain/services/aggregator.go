package services

import (
	"packtrack/internal/core/domain/model/container"
	"packtrack/internal/core/domain/model/movement"
	"packtrack/internal/core/domain/model/product"
)

// ContainerAggregator is a domain service that derives the container list
// from the allocation ledger. Containers are never edited directly: every
// mutating operation changes allocations and then rebuilds containers here,
// so the list can never disagree with the allocations it summarizes.
//
// Key responsibilities:
//   - Accumulating per-container totals, product sets and sub-packaging
//     types from the current allocations
//   - Carrying sticky lifecycle state (status, supervisor, vehicle, receipt)
//     over from the previous derivation
//   - Retaining emptied containers as tombstones instead of deleting them,
//     so transfer history stays navigable
//   - Reverting sealed containers to Preparing while any product still has
//     unallocated quantity
//
// Recompute is deterministic and idempotent: running it twice with no
// intervening allocation change yields an identical list.
type ContainerAggregator struct{}

// NewContainerAggregator creates a new ContainerAggregator instance.
func NewContainerAggregator() ContainerAggregator {
	return ContainerAggregator{}
}

// Recompute rebuilds the container list for an order from the products'
// allocations.
//
// Containers appear in first-allocation order. Previously known containers
// with no remaining allocations are appended in their previous order with
// quantity forced to zero. Parent/child relations are read from the
// movement ledger, which owns them; capsule containers with a nonzero total
// are archived in the ledger for historical summaries.
//
// Parameters:
//   - orderNo: the order the containers belong to
//   - products: all products of the order, in display order
//   - previous: the container list from the previous derivation
//   - ledger: the movement ledger (relations read, archive updated)
func (ContainerAggregator) Recompute(
	orderNo string,
	products []*product.Product,
	previous []*container.Container,
	ledger *movement.Ledger,
) ([]*container.Container, error) {
	type accumulation struct {
		quantity     float64
		productCodes []string
		subTypes     []string
	}

	prevByCode := make(map[string]*container.Container, len(previous))
	for _, c := range previous {
		prevByCode[c.Code()] = c
	}

	acc := make(map[string]*accumulation)
	var codeOrder []string

	for _, p := range products {
		for _, a := range p.Allocations() {
			code := a.ContainerCode()
			bucket, ok := acc[code]
			if !ok {
				bucket = &accumulation{}
				acc[code] = bucket
				codeOrder = append(codeOrder, code)
			}
			bucket.quantity += a.Quantity()
			bucket.productCodes = appendUnique(bucket.productCodes, p.Code())
			if a.SubPackagingType() != "" {
				bucket.subTypes = appendUnique(bucket.subTypes, a.SubPackagingType())
			}
		}
	}

	anyRemaining := false
	for _, p := range products {
		if p.Remaining() > 0 {
			anyRemaining = true
			break
		}
	}

	result := make([]*container.Container, 0, len(codeOrder))

	emit := func(code string, bucket *accumulation) error {
		c, err := container.NewContainer(code, orderNo)
		if err != nil {
			return err
		}
		if bucket != nil {
			c.SetContent(bucket.productCodes, bucket.quantity, bucket.subTypes)
		}
		c.InheritFrom(prevByCode[code])
		c.SetChildren(ledger.ChildrenOf(code))

		if anyRemaining && c.Status() == container.Sealed {
			if err := c.Reopen(); err != nil {
				return err
			}
		}
		if c.Type().IsCapsule() && c.Quantity() > 0 {
			ledger.Archive(code, c.Quantity())
		}
		result = append(result, c)
		return nil
	}

	for _, code := range codeOrder {
		if err := emit(code, acc[code]); err != nil {
			return nil, err
		}
	}
	for _, prev := range previous {
		if _, live := acc[prev.Code()]; live {
			continue
		}
		if err := emit(prev.Code(), nil); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}
	return append(list, s)
}
