package repository

import (
	"github.com/garsabers/storefront/app/models"
	"github.com/garsabers/storefront/internal/pkg/store"
)

// orderRepository implements the OrderRepository interface
type orderRepository struct {
	st *store.Store
}

// NewOrderRepository creates a new order repository instance
func NewOrderRepository(st *store.Store) OrderRepository {
	return &orderRepository{st: st}
}

// Create prepends the new order so List returns newest first.
func (r *orderRepository) Create(order *models.Order) error {
	r.st.Update(func(d *store.Snapshot) {
		d.Orders = append([]models.Order{*order}, d.Orders...)
	})
	return nil
}

// GetByID retrieves an order by its id
func (r *orderRepository) GetByID(id string) (*models.Order, error) {
	var found *models.Order
	r.st.View(func(d *store.Snapshot) {
		for i := range d.Orders {
			if d.Orders[i].ID == id {
				o := d.Orders[i]
				found = &o
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// Update replaces the stored order with the same id
func (r *orderRepository) Update(order *models.Order) error {
	updated := false
	r.st.Update(func(d *store.Snapshot) {
		for i := range d.Orders {
			if d.Orders[i].ID == order.ID {
				d.Orders[i] = *order
				updated = true
				return
			}
		}
	})
	if !updated {
		return ErrNotFound
	}
	return nil
}

// List returns all orders, newest first (creation prepends)
func (r *orderRepository) List() ([]models.Order, error) {
	var out []models.Order
	r.st.View(func(d *store.Snapshot) {
		out = make([]models.Order, len(d.Orders))
		copy(out, d.Orders)
	})
	return out, nil
}

// Count returns the number of orders
func (r *orderRepository) Count() (int64, error) {
	var n int64
	r.st.View(func(d *store.Snapshot) {
		n = int64(len(d.Orders))
	})
	return n, nil
}
