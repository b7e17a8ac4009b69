// Package memory provides the in-memory implementation of the Unit of Work
// pattern and the repository ports. The whole session lives in a single
// process: commands run against a deep copy of the committed state and swap
// it in atomically on Commit, so a failed command never leaves partial
// mutations behind.
//
// Key Features:
//   - Snapshot isolation per unit of work (copy-on-Begin, swap-on-Commit)
//   - Serialized commits through a single store mutex
//   - Read side served from committed state only
//   - No persistence across process restarts by design
package memory

import (
	"sync"

	"packtrack/internal/core/application/usecases/queries"
	"packtrack/internal/core/domain/model/container"
	"packtrack/internal/core/domain/model/movement"
	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/core/domain/model/product"
	"packtrack/internal/pkg/errs"
)

// Snapshot is the seed data a store starts from. Orders keep their seed
// order; products are keyed by order number and keep their display order.
type Snapshot struct {
	Orders   []*order.Order
	Products map[string][]*product.Product
}

// state is the full session state. Every unit of work gets its own deep
// copy; the committed instance is only ever replaced wholesale.
type state struct {
	orderSeq   []string
	orders     map[string]*order.Order
	products   map[string][]*product.Product
	containers map[string][]*container.Container
	ledgers    map[string]*movement.Ledger
	sequences  map[string]int
}

func newState() *state {
	return &state{
		orders:     make(map[string]*order.Order),
		products:   make(map[string][]*product.Product),
		containers: make(map[string][]*container.Container),
		ledgers:    make(map[string]*movement.Ledger),
		sequences:  make(map[string]int),
	}
}

func (s *state) clone() *state {
	c := newState()
	c.orderSeq = append([]string(nil), s.orderSeq...)
	for orderNo, o := range s.orders {
		c.orders[orderNo] = o.Clone()
	}
	for orderNo, products := range s.products {
		cloned := make([]*product.Product, 0, len(products))
		for _, p := range products {
			cloned = append(cloned, p.Clone())
		}
		c.products[orderNo] = cloned
	}
	for orderNo, containers := range s.containers {
		cloned := make([]*container.Container, 0, len(containers))
		for _, cc := range containers {
			cloned = append(cloned, cc.Clone())
		}
		c.containers[orderNo] = cloned
	}
	for orderNo, l := range s.ledgers {
		c.ledgers[orderNo] = l.Clone()
	}
	for key, n := range s.sequences {
		c.sequences[key] = n
	}
	return c
}

// orderOfProduct resolves which order a product code belongs to.
func (s *state) orderOfProduct(code string) (string, *product.Product) {
	for _, orderNo := range s.orderSeq {
		for _, p := range s.products[orderNo] {
			if p.Code() == code {
				return orderNo, p
			}
		}
	}
	return "", nil
}

// Store holds the committed session state and hands out units of work.
// It is the single source of truth for both the command and the query side.
type Store struct {
	mu        sync.RWMutex
	committed *state
}

// NewStore creates a store seeded from the snapshot.
func NewStore(snapshot Snapshot) *Store {
	st := newState()
	for _, o := range snapshot.Orders {
		st.orderSeq = append(st.orderSeq, o.OrderNo())
		st.orders[o.OrderNo()] = o
	}
	for orderNo, products := range snapshot.Products {
		st.products[orderNo] = append([]*product.Product(nil), products...)
	}
	return &Store{committed: st}
}

var _ queries.Store = (*Store)(nil)

// Order returns one committed order by number.
func (s *Store) Order(orderNo string) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.committed.orders[orderNo]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", orderNo)
	}
	return o.Clone(), nil
}

// Orders returns every committed order in seed order.
func (s *Store) Orders() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*order.Order, 0, len(s.committed.orderSeq))
	for _, orderNo := range s.committed.orderSeq {
		orders = append(orders, s.committed.orders[orderNo].Clone())
	}
	return orders
}

// Products returns the order's committed products in display order.
func (s *Store) Products(orderNo string) []*product.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*product.Product, 0, len(s.committed.products[orderNo]))
	for _, p := range s.committed.products[orderNo] {
		products = append(products, p.Clone())
	}
	return products
}

// Containers returns the order's committed container list in derivation order.
func (s *Store) Containers(orderNo string) []*container.Container {
	s.mu.RLock()
	defer s.mu.RUnlock()

	containers := make([]*container.Container, 0, len(s.committed.containers[orderNo]))
	for _, c := range s.committed.containers[orderNo] {
		containers = append(containers, c.Clone())
	}
	return containers
}

// Ledger returns the order's committed movement ledger. An order that has
// seen no movements yet gets an empty ledger.
func (s *Store) Ledger(orderNo string) *movement.Ledger {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.committed.ledgers[orderNo]
	if !ok {
		return movement.NewLedger()
	}
	return l.Clone()
}
