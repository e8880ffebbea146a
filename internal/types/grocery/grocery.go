package grocery

import (
	"errors"
	"fmt"
)

var ErrInvalidItem = errors.New("invalid grocery item")

// Item - товар в корзине. Корзина хранит указатели на Item,
// поэтому изменение количества через один указатель видно всем его владельцам.
type Item struct {
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	UnitWeight float64 `json:"unit_weight"`
	Quantity   int     `json:"quantity"`
}

// NewItem создает товар с количеством 1
func NewItem(name string, unitPrice, unitWeight float64) *Item {
	return &Item{
		Name:       name,
		UnitPrice:  unitPrice,
		UnitWeight: unitWeight,
		Quantity:   1,
	}
}

func (i *Item) IncrementQuantity() {
	i.Quantity++
}

// DecrementQuantity уменьшает количество, но не ниже нуля
func (i *Item) DecrementQuantity() {
	if i.Quantity > 0 {
		i.Quantity--
	}
}

// TotalPrice стоимость всех единиц товара
func (i *Item) TotalPrice() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Equal товары равны, если совпадают названия
func (i *Item) Equal(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}

	return i.Name == other.Name
}

// Validate проверяет поля товара, пришедшего извне
func (i *Item) Validate() error {
	switch {
	case i.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidItem)
	case i.UnitPrice < 0:
		return fmt.Errorf("%w: negative unit price", ErrInvalidItem)
	case i.UnitWeight < 0:
		return fmt.Errorf("%w: negative unit weight", ErrInvalidItem)
	case i.Quantity < 0:
		return fmt.Errorf("%w: negative quantity", ErrInvalidItem)
	}

	return nil
}

// Clone копия товара, не связанная с исходным указателем
func (i *Item) Clone() *Item {
	c := *i
	return &c
}
