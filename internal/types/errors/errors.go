package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	ErrNotFound = errors.New("cart not found")
	ErrBadID    = errors.New("bad id")

	ErrCartFull      = errors.New("cart is full")
	ErrOverweight    = errors.New("item exceeds cart weight budget")
	ErrItemNotInCart = errors.New("item is not in cart")
	ErrEmptyCart     = errors.New("your cart is empty")
	ErrItemMismatch  = errors.New("item already in cart with another price or weight")

	ErrInvalidJSONPayload = errors.New("invalid JSON payload")
)

type ErrorServer struct {
	Message string `json:"message"`
}

func (e *ErrorServer) Error() string {
	return e.Message
}

/*
NewErrorServer
Функция имеет возможность принимать "nil ошибку"
при получении nil наша функция понимает, что нам
просто надо отдать саксесс клиенту
*/
func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Message: "success",
		}
	}

	return ErrorServer{
		Message: err.Error(),
	}
}

// StatusCode подбирает HTTP статус для ошибки хранилища корзин
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrBadID), errors.Is(err, ErrInvalidJSONPayload):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrItemNotInCart):
		return http.StatusNotFound
	case errors.Is(err, ErrCartFull), errors.Is(err, ErrOverweight), errors.Is(err, ErrItemMismatch):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}
