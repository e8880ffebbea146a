package shopping_cart

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"grocery-cart/internal/types/grocery"
	myErr "grocery-cart/internal/types/errors"
)

// ShoppingCartRepository хранит корзины в памяти процесса.
// Все операции сериализуются одним мьютексом, сами Cart не потокобезопасны.
type ShoppingCartRepository struct {
	Logger       *zap.SugaredLogger
	capacity     int
	weightBudget float64

	mu    sync.Mutex
	carts map[string]*Cart
}

func NewShoppingCartRepository(logger *zap.SugaredLogger, capacity int, weightBudget float64) *ShoppingCartRepository {
	return &ShoppingCartRepository{
		Logger:       logger,
		capacity:     capacity,
		weightBudget: weightBudget,
		carts:        make(map[string]*Cart),
	}
}

// Create заводит новую пустую корзину
func (scr *ShoppingCartRepository) Create() string {
	id := uuid.New().String()

	scr.mu.Lock()
	scr.carts[id] = NewCart(scr.capacity, scr.weightBudget)
	scr.mu.Unlock()

	scr.Logger.Debugf("created cart %s", id)

	return id
}

// AddItem кладет в корзину одну единицу товара.
// Товар копируется: корзина не делит указатель с вызывающим кодом.
// Товар с тем же именем, но другой ценой или весом, не принимается,
// иначе вес корзины разойдется с весом лежащих в ней единиц.
func (scr *ShoppingCartRepository) AddItem(cartID string, item *grocery.Item) (*grocery.Item, error) {
	scr.mu.Lock()
	defer scr.mu.Unlock()

	cart, ok := scr.carts[cartID]
	if !ok {
		return nil, myErr.ErrNotFound
	}

	handle := findItem(cart, item.Name)
	if handle == nil {
		handle = item.Clone()
		handle.Quantity = 1
	} else if handle.UnitPrice != item.UnitPrice || handle.UnitWeight != item.UnitWeight {
		scr.Logger.Infof("cart %s: %s already added with price %.2f and weight %.2f",
			cartID, handle.Name, handle.UnitPrice, handle.UnitWeight)
		return nil, myErr.ErrItemMismatch
	}

	if !cart.Add(handle) {
		if cart.CurrentWeight()+handle.UnitWeight > cart.WeightBudget() {
			scr.Logger.Infof("cart %s: %s exceeds weight budget %.2f", cartID, handle.Name, cart.WeightBudget())
			return nil, myErr.ErrOverweight
		}

		scr.Logger.Infof("cart %s is full (%d items)", cartID, cart.Capacity())
		return nil, myErr.ErrCartFull
	}

	return handle.Clone(), nil
}

// RemoveItem убирает из корзины одну единицу товара
func (scr *ShoppingCartRepository) RemoveItem(cartID string, name string) error {
	scr.mu.Lock()
	defer scr.mu.Unlock()

	cart, ok := scr.carts[cartID]
	if !ok {
		return myErr.ErrNotFound
	}

	handle := findItem(cart, name)
	if handle == nil || !cart.Remove(handle) {
		return myErr.ErrItemNotInCart
	}

	return nil
}

// findItem лежащий в корзине указатель на товар или nil
func findItem(cart *Cart, name string) *grocery.Item {
	for _, stored := range cart.Items() {
		if stored.Name == name {
			return stored
		}
	}

	return nil
}

// Get получает снимок корзины
func (scr *ShoppingCartRepository) Get(cartID string) (View, error) {
	scr.mu.Lock()
	defer scr.mu.Unlock()

	cart, ok := scr.carts[cartID]
	if !ok {
		return View{}, myErr.ErrNotFound
	}

	items := cart.Items()
	for i, item := range items {
		items[i] = item.Clone()
	}

	return View{
		ID:            cartID,
		Items:         items,
		CurrentWeight: cart.CurrentWeight(),
		WeightBudget:  cart.WeightBudget(),
		Capacity:      cart.Capacity(),
		Total:         cart.Total(),
	}, nil
}

// Checkout оформляет заказ; для пустой корзины возвращает ErrEmptyCart
func (scr *ShoppingCartRepository) Checkout(cartID string) (Receipt, error) {
	scr.mu.Lock()
	defer scr.mu.Unlock()

	cart, ok := scr.carts[cartID]
	if !ok {
		return Receipt{}, myErr.ErrNotFound
	}

	receipt, ok := cart.Checkout()
	if !ok {
		return receipt, myErr.ErrEmptyCart
	}

	return receipt, nil
}

// Compare сравнивает корзины по стоимости
func (scr *ShoppingCartRepository) Compare(leftID string, rightID string) (int, error) {
	scr.mu.Lock()
	defer scr.mu.Unlock()

	left, ok := scr.carts[leftID]
	if !ok {
		return 0, myErr.ErrNotFound
	}
	right, ok := scr.carts[rightID]
	if !ok {
		return 0, myErr.ErrNotFound
	}

	switch {
	case left.Greater(right):
		return 1, nil
	case left.Less(right):
		return -1, nil
	default:
		return 0, nil
	}
}

// Delete удаляет корзину
func (scr *ShoppingCartRepository) Delete(cartID string) error {
	scr.mu.Lock()
	defer scr.mu.Unlock()

	if _, ok := scr.carts[cartID]; !ok {
		return myErr.ErrNotFound
	}
	delete(scr.carts, cartID)

	return nil
}
