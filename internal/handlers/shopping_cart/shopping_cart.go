package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"grocery-cart/internal/kafka"
	"grocery-cart/internal/shopping_cart"
	"grocery-cart/internal/types/grocery"
	myErr "grocery-cart/internal/types/errors"
)

// ShoppingCartHandler ручки для хранилища корзин
type ShoppingCartHandler struct {
	Logger        *zap.SugaredLogger
	CartRepo      shopping_cart.ShoppingCartRepo
	EventProducer kafka.EventProducer
}

// NewShoppingCartHandler конструктор
func NewShoppingCartHandler(
	log *zap.SugaredLogger,
	cr shopping_cart.ShoppingCartRepo,
	ep kafka.EventProducer,
) *ShoppingCartHandler {
	return &ShoppingCartHandler{
		Logger:        log,
		CartRepo:      cr,
		EventProducer: ep,
	}
}

// AddItemForm - форма для добавления товара в корзину
type AddItemForm struct {
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	UnitWeight float64 `json:"unit_weight"`
}

// Register вешает ручки корзин на роутер
func (h *ShoppingCartHandler) Register(r *mux.Router) {
	r.HandleFunc("/cart", h.CreateCart).Methods(http.MethodPost)
	r.HandleFunc("/cart/{cartID}", h.GetCart).Methods(http.MethodGet)
	r.HandleFunc("/cart/{cartID}", h.DeleteCart).Methods(http.MethodDelete)
	r.HandleFunc("/cart/{cartID}/item", h.AddToShoppingCart).Methods(http.MethodPost)
	r.HandleFunc("/cart/{cartID}/item/{name}", h.DeleteFromShoppingCart).Methods(http.MethodDelete)
	r.HandleFunc("/cart/{cartID}/checkout", h.Checkout).Methods(http.MethodPost)
	r.HandleFunc("/cart/{cartID}/compare/{otherID}", h.Compare).Methods(http.MethodGet)
}

// CreateCart - POST /cart
func (h *ShoppingCartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	id := h.CartRepo.Create()

	h.Logger.Infof("created cart %s", id)
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetCart - GET /cart/{cartID}
func (h *ShoppingCartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r, "cartID")
	if !ok {
		return
	}

	view, err := h.CartRepo.Get(cartID)
	if err != nil {
		myErr.SendErrorTo(w, err, myErr.StatusCode(err), h.Logger)
		return
	}

	if view.Items == nil {
		view.Items = []*grocery.Item{}
	}

	h.writeJSON(w, http.StatusOK, view)
}

// DeleteCart - DELETE /cart/{cartID}
func (h *ShoppingCartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r, "cartID")
	if !ok {
		return
	}

	if err := h.CartRepo.Delete(cartID); err != nil {
		myErr.SendErrorTo(w, err, myErr.StatusCode(err), h.Logger)
		return
	}

	w.WriteHeader(http.StatusOK)
	h.Logger.Infof("deleted cart %s", cartID)
}

// AddToShoppingCart - POST /cart/{cartID}/item
// Тело запроса: {"name": "milk", "unit_price": 1.5, "unit_weight": 1}
func (h *ShoppingCartHandler) AddToShoppingCart(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r, "cartID")
	if !ok {
		return
	}

	var form AddItemForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	item := grocery.NewItem(form.Name, form.UnitPrice, form.UnitWeight)
	if err := item.Validate(); err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		return
	}

	stored, err := h.CartRepo.AddItem(cartID, item)
	if err != nil {
		myErr.SendErrorTo(w, err, myErr.StatusCode(err), h.Logger)
		return
	}

	h.sendEvent(r, kafka.Event{
		CartID:   cartID,
		Type:     kafka.EventTypeAdd,
		Item:     stored.Name,
		Quantity: stored.Quantity,
	})

	h.Logger.Infof("added %s to cart %s, quantity %d", stored.Name, cartID, stored.Quantity)
	h.writeJSON(w, http.StatusCreated, stored)
}

// DeleteFromShoppingCart - DELETE /cart/{cartID}/item/{name}
// Убирает одну единицу товара
func (h *ShoppingCartHandler) DeleteFromShoppingCart(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r, "cartID")
	if !ok {
		return
	}
	name := mux.Vars(r)["name"]

	if err := h.CartRepo.RemoveItem(cartID, name); err != nil {
		myErr.SendErrorTo(w, err, myErr.StatusCode(err), h.Logger)
		return
	}

	h.sendEvent(r, kafka.Event{
		CartID: cartID,
		Type:   kafka.EventTypeRemove,
		Item:   name,
	})

	w.WriteHeader(http.StatusOK)
	h.Logger.Infof("removed one %s from cart %s", name, cartID)
}

// Checkout - POST /cart/{cartID}/checkout
// Возвращает {"status": "success", "total": <сумма>, "items": [...]} и опустошает корзину.
// Для пустой корзины {"status": "empty", "total": 0}.
func (h *ShoppingCartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r, "cartID")
	if !ok {
		return
	}

	receipt, err := h.CartRepo.Checkout(cartID)
	if err != nil {
		if errors.Is(err, myErr.ErrEmptyCart) {
			h.Logger.Infof("checkout of empty cart %s", cartID)
			h.writeJSON(w, http.StatusOK, map[string]interface{}{
				"status": "empty",
				"total":  0,
			})
			return
		}
		myErr.SendErrorTo(w, err, myErr.StatusCode(err), h.Logger)
		return
	}

	h.sendEvent(r, kafka.Event{
		CartID: cartID,
		Type:   kafka.EventTypeCheckout,
		Total:  receipt.Total,
	})

	h.Logger.Infof("cart %s checked out:\n%s", cartID, receipt)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"total":  receipt.Total,
		"items":  receipt.Lines,
	})
}

// Compare - GET /cart/{cartID}/compare/{otherID}
func (h *ShoppingCartHandler) Compare(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r, "cartID")
	if !ok {
		return
	}
	otherID, ok := h.cartID(w, r, "otherID")
	if !ok {
		return
	}

	res, err := h.CartRepo.Compare(cartID, otherID)
	if err != nil {
		myErr.SendErrorTo(w, err, myErr.StatusCode(err), h.Logger)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]bool{
		"greater": res > 0,
		"less":    res < 0,
	})
}

func (h *ShoppingCartHandler) cartID(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	id := mux.Vars(r)[key]
	if _, err := uuid.Parse(id); err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return "", false
	}

	return id, true
}

// sendEvent отправка событий не должна ломать ответ клиенту
func (h *ShoppingCartHandler) sendEvent(r *http.Request, event kafka.Event) {
	event.Timestamp = time.Now()
	if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
		h.Logger.Warnf("failed to send %s event for cart %s: %v", event.Type, event.CartID, err)
	}
}

func (h *ShoppingCartHandler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
