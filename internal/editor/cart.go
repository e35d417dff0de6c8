package editor

import (
	"fmt"

	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/session"
)

// AddToCart appends a copy of entry to the cart.
func (e *Editor) AddToCart(entry model.CatalogEntry) {
	e.cart.Add(entry)
}

// AddCatalogItem adds the catalog entry with the given ID to the cart.
func (e *Editor) AddCatalogItem(id string) error {
	entry := e.catalog.FindByID(id)
	if entry == nil {
		return fmt.Errorf("catalog entry %q not found", id)
	}
	e.cart.Add(*entry)
	return nil
}

func (e *Editor) RemoveFromCart(i int) error { return e.cart.RemoveAt(i) }

func (e *Editor) ClearCart() { e.cart.Clear() }

// Cart returns the pending selection in insertion order.
func (e *Editor) Cart() []model.CatalogEntry { return e.cart.Items() }

// Capacity evaluates the current cart.
func (e *Editor) Capacity() session.CapacityState {
	return session.EvaluateCapacity(e.cart.Items(), e.settings)
}
