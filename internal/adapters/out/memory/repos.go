package memory

import (
	"context"

	"packtrack/internal/core/domain/model/container"
	"packtrack/internal/core/domain/model/movement"
	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/core/domain/model/product"
	"packtrack/internal/pkg/errs"
)

// orderRepository implements ports.OrderRepository over the working state.
type orderRepository struct {
	uow *UnitOfWork
}

// Add saves a new order to the store.
func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	st := r.uow.state()
	if _, exists := st.orders[aggregate.OrderNo()]; exists {
		return errs.NewValueIsInvalidError("orderNo")
	}

	st.orderSeq = append(st.orderSeq, aggregate.OrderNo())
	st.orders[aggregate.OrderNo()] = aggregate
	return nil
}

// Update saves an existing order to the store.
func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	st := r.uow.state()
	if _, exists := st.orders[aggregate.OrderNo()]; !exists {
		return errs.NewObjectNotFoundError("order", aggregate.OrderNo())
	}

	st.orders[aggregate.OrderNo()] = aggregate
	return nil
}

// Get retrieves an order by its order number.
func (r *orderRepository) Get(_ context.Context, orderNo string) (*order.Order, error) {
	o, ok := r.uow.state().orders[orderNo]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", orderNo)
	}
	return o, nil
}

// GetAll retrieves every order in seed order.
func (r *orderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	st := r.uow.state()
	orders := make([]*order.Order, 0, len(st.orderSeq))
	for _, orderNo := range st.orderSeq {
		orders = append(orders, st.orders[orderNo])
	}
	return orders, nil
}

// productRepository implements ports.ProductRepository over the working state.
type productRepository struct {
	uow *UnitOfWork
}

// Add appends a new product to the end of its order's display list.
// Products carry no order number themselves; runtime additions join the
// first order of the session, which is the only one a live panel serves.
func (r *productRepository) Add(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	st := r.uow.state()
	if orderNo, _ := st.orderOfProduct(aggregate.Code()); orderNo != "" {
		return errs.NewValueIsInvalidError("productCode")
	}
	if len(st.orderSeq) == 0 {
		return errs.NewObjectNotFoundError("order", "any")
	}

	orderNo := st.orderSeq[0]
	st.products[orderNo] = append(st.products[orderNo], aggregate)
	return nil
}

// Update saves an existing product to the store.
func (r *productRepository) Update(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	st := r.uow.state()
	orderNo, _ := st.orderOfProduct(aggregate.Code())
	if orderNo == "" {
		return errs.NewObjectNotFoundError("product", aggregate.Code())
	}

	for i, p := range st.products[orderNo] {
		if p.Code() == aggregate.Code() {
			st.products[orderNo][i] = aggregate
			break
		}
	}
	return nil
}

// Get retrieves a product by its code.
func (r *productRepository) Get(_ context.Context, code string) (*product.Product, error) {
	_, p := r.uow.state().orderOfProduct(code)
	if p == nil {
		return nil, errs.NewObjectNotFoundError("product", code)
	}
	return p, nil
}

// GetAllByOrder retrieves every product of an order in display order.
func (r *productRepository) GetAllByOrder(_ context.Context, orderNo string) ([]*product.Product, error) {
	st := r.uow.state()
	products := make([]*product.Product, 0, len(st.products[orderNo]))
	products = append(products, st.products[orderNo]...)
	return products, nil
}

// containerRepository implements ports.ContainerRepository over the working
// state. The container list is a projection: commands replace it wholesale
// after a recompute and only Update single entries for state transitions.
type containerRepository struct {
	uow *UnitOfWork
}

// Get retrieves a container by its code.
func (r *containerRepository) Get(_ context.Context, code string) (*container.Container, error) {
	st := r.uow.state()
	for _, containers := range st.containers {
		for _, c := range containers {
			if c.Code() == code {
				return c, nil
			}
		}
	}
	return nil, errs.NewObjectNotFoundError("container", code)
}

// Update saves an existing container to the store.
func (r *containerRepository) Update(_ context.Context, aggregate *container.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	st := r.uow.state()
	containers := st.containers[aggregate.OrderNo()]
	for i, c := range containers {
		if c.Code() == aggregate.Code() {
			containers[i] = aggregate
			return nil
		}
	}
	return errs.NewObjectNotFoundError("container", aggregate.Code())
}

// GetAllByOrder retrieves every container of an order in derivation order.
func (r *containerRepository) GetAllByOrder(_ context.Context, orderNo string) ([]*container.Container, error) {
	st := r.uow.state()
	containers := make([]*container.Container, 0, len(st.containers[orderNo]))
	containers = append(containers, st.containers[orderNo]...)
	return containers, nil
}

// ReplaceAll swaps the order's container list for the freshly derived one.
func (r *containerRepository) ReplaceAll(_ context.Context, orderNo string, containers []*container.Container) error {
	r.uow.state().containers[orderNo] = containers
	return nil
}

// Remove deletes a container from the order's list.
func (r *containerRepository) Remove(_ context.Context, orderNo string, code string) error {
	st := r.uow.state()
	containers := st.containers[orderNo]
	for i, c := range containers {
		if c.Code() == code {
			st.containers[orderNo] = append(containers[:i:i], containers[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("container", code)
}

// movementRepository implements ports.MovementRepository over the working state.
type movementRepository struct {
	uow *UnitOfWork
}

// Get retrieves the order's movement ledger, creating an empty one on
// first access.
func (r *movementRepository) Get(_ context.Context, orderNo string) (*movement.Ledger, error) {
	st := r.uow.state()
	l, ok := st.ledgers[orderNo]
	if !ok {
		l = movement.NewLedger()
		st.ledgers[orderNo] = l
	}
	return l, nil
}

// Update persists the order's movement ledger.
func (r *movementRepository) Update(_ context.Context, orderNo string, ledger *movement.Ledger) error {
	r.uow.state().ledgers[orderNo] = ledger
	return nil
}

// sequenceRepository implements ports.SequenceRepository over the working
// state. Sequence numbers advance inside the transaction, so a rolled back
// command does not burn a number, while a committed cancellation never
// frees one.
type sequenceRepository struct {
	uow *UnitOfWork
}

// Next returns the next sequence number for the key, starting at 1.
func (r *sequenceRepository) Next(_ context.Context, key string) (int, error) {
	st := r.uow.state()
	st.sequences[key]++
	return st.sequences[key], nil
}
