package shopping_cart

import (
	"grocery-cart/internal/bag"
	"grocery-cart/internal/types/grocery"
)

// DefaultWeightBudget грузоподъемность корзины по умолчанию
const DefaultWeightBudget = 100.0

// Cart - корзина покупок поверх сумки указателей на товары.
// Следит за суммарным весом и количеством каждого товара.
// Cart не потокобезопасна.
type Cart struct {
	items         *bag.Bag[*grocery.Item]
	weightBudget  float64
	currentWeight float64
}

func NewCart(capacity int, weightBudget float64) *Cart {
	return &Cart{
		items: bag.NewFunc(capacity, func(a, b *grocery.Item) bool {
			return a.Equal(b)
		}),
		weightBudget: weightBudget,
	}
}

// Add кладет в корзину одну единицу товара.
// Если такой товар уже лежит в корзине, увеличивается его количество.
// Возвращает false при превышении веса или вместимости.
func (c *Cart) Add(item *grocery.Item) bool {
	if item.UnitWeight+c.currentWeight > c.weightBudget {
		return false
	}

	if idx := c.items.IndexOf(item); idx != bag.NotFound {
		c.items.At(idx).IncrementQuantity()
	} else if !c.items.Add(item) {
		return false
	}

	c.currentWeight += item.UnitWeight

	return true
}

// Remove убирает из корзины одну единицу товара.
// Товары с нулевым количеством сразу выбрасываются из корзины.
func (c *Cart) Remove(item *grocery.Item) bool {
	idx := c.items.IndexOf(item)
	if idx == bag.NotFound {
		return false
	}

	c.items.At(idx).DecrementQuantity()
	c.currentWeight -= item.UnitWeight
	c.garbageClear()

	return true
}

// garbageClear удаляет товары с нулевым количеством.
// Обход с конца: на место удаленного встает уже проверенный элемент.
func (c *Cart) garbageClear() {
	for i := c.items.Size() - 1; i >= 0; i-- {
		if c.items.At(i).Quantity == 0 {
			c.items.RemoveAt(i)
		}
	}
}

// Checkout считает чек и опустошает корзину.
// Для пустой корзины возвращает пустой чек и false.
func (c *Cart) Checkout() (Receipt, bool) {
	if c.items.IsEmpty() {
		return Receipt{}, false
	}

	receipt := c.receipt()
	c.Clear()

	return receipt, true
}

func (c *Cart) receipt() Receipt {
	r := Receipt{Lines: make([]ReceiptLine, 0, c.items.Size())}
	for _, item := range c.items.Items() {
		line := ReceiptLine{
			Name:       item.Name,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice(),
		}
		r.Lines = append(r.Lines, line)
		r.Total += line.TotalPrice
	}

	return r
}

// Clear опустошает корзину и обнуляет вес
func (c *Cart) Clear() {
	c.items.Clear()
	c.currentWeight = 0
}

// Total стоимость содержимого без оформления заказа
func (c *Cart) Total() float64 {
	var total float64
	for i := 0; i < c.items.Size(); i++ {
		total += c.items.At(i).TotalPrice()
	}

	return total
}

func (c *Cart) CurrentWeight() float64 {
	return c.currentWeight
}

func (c *Cart) WeightBudget() float64 {
	return c.weightBudget
}

func (c *Cart) Capacity() int {
	return c.items.Capacity()
}

// Items указатели на товары в корзине, порядок не определен
func (c *Cart) Items() []*grocery.Item {
	return c.items.Items()
}

// Size число различных товаров
func (c *Cart) Size() int {
	return c.items.Size()
}

func (c *Cart) IsEmpty() bool {
	return c.items.IsEmpty()
}

func (c *Cart) Contains(item *grocery.Item) bool {
	return c.items.Contains(item)
}

// Greater корзина дороже other
func (c *Cart) Greater(other *Cart) bool {
	return c.Total() > other.Total()
}

// Less корзина дешевле other
func (c *Cart) Less(other *Cart) bool {
	return c.Total() < other.Total()
}
