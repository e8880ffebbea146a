package shopping_cart

import "grocery-cart/internal/types/grocery"

// View снимок состояния корзины для отдачи клиенту
type View struct {
	ID            string          `json:"id"`
	Items         []*grocery.Item `json:"items"`
	CurrentWeight float64         `json:"current_weight"`
	WeightBudget  float64         `json:"weight_budget"`
	Capacity      int             `json:"capacity"`
	Total         float64         `json:"total"`
}

// ShoppingCartRepo интерфейс для работы хранилища корзин покупок
//
//go:generate mockgen -source=shopping_cart.go -destination=../mocks/mock_shopping_cart_repo.go -package=mocks
type ShoppingCartRepo interface {
	// Create заводит новую пустую корзину и возвращает ее id
	Create() string
	// AddItem кладет в корзину одну единицу товара, возвращает копию товара из корзины
	AddItem(cartID string, item *grocery.Item) (*grocery.Item, error)
	// RemoveItem убирает из корзины одну единицу товара по названию
	RemoveItem(cartID string, name string) error
	// Get получает снимок корзины
	Get(cartID string) (View, error)
	// Checkout оформляет заказ и опустошает корзину
	Checkout(cartID string) (Receipt, error)
	// Compare сравнивает корзины по стоимости: 1, -1 или 0
	Compare(leftID string, rightID string) (int, error)
	// Delete удаляет корзину
	Delete(cartID string) error
}
