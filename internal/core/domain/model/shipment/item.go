package shipment

import (
	"errors"
	"math"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrProductIDIsRequired is returned when an item does not reference a
	// catalog product.
	ErrProductIDIsRequired = errs.NewValueIsRequiredError("product_id")
)

// Item is a line of a shipment: a reference to an external catalog product
// and the quantity being shipped. Items belong to exactly one shipment, are
// created together with it in the same transaction, and never change after
// creation. Deleting the shipment deletes its items.
type Item struct {
	// id is assigned by storage on first persist; zero until then
	id int64

	// productID references a product in the external catalog
	productID int64

	// quantity is the number of units shipped, at least 1
	quantity int

	// guard ensures the item was created via a constructor
	guard guard.ConstructorGuard
}

// NewItem creates a validated line item for a new shipment.
// The id stays zero until storage assigns one.
func NewItem(productID int64, quantity int) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistence, including its
// storage-assigned id.
func RestoreItem(id, productID int64, quantity int) (Item, error) {
	item, err := NewItem(productID, quantity)
	if err != nil {
		return Item{}, err
	}
	if id <= 0 {
		return Item{}, errs.NewValueIsRequiredError("item id")
	}

	item.id = id
	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the storage-assigned id, zero for unpersisted items.
func (i Item) ID() int64 {
	return i.id
}

// ProductID returns the referenced catalog product id.
func (i Item) ProductID() int64 {
	return i.productID
}

// Quantity returns the number of units shipped.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsRequired
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt)
	}
	i.quantity = quantity
	return nil
}
