package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	shopping_cart "grocery-cart/internal/shopping_cart"
	grocery "grocery-cart/internal/types/grocery"
)

// MockShoppingCartRepo is a mock of ShoppingCartRepo interface.
type MockShoppingCartRepo struct {
	ctrl     *gomock.Controller
	recorder *MockShoppingCartRepoMockRecorder
}

// MockShoppingCartRepoMockRecorder is the mock recorder for MockShoppingCartRepo.
type MockShoppingCartRepoMockRecorder struct {
	mock *MockShoppingCartRepo
}

// NewMockShoppingCartRepo creates a new mock instance.
func NewMockShoppingCartRepo(ctrl *gomock.Controller) *MockShoppingCartRepo {
	mock := &MockShoppingCartRepo{ctrl: ctrl}
	mock.recorder = &MockShoppingCartRepoMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockShoppingCartRepo) EXPECT() *MockShoppingCartRepoMockRecorder {
	return m.recorder
}

// AddItem mocks base method.
func (m *MockShoppingCartRepo) AddItem(cartID string, item *grocery.Item) (*grocery.Item, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddItem", cartID, item)
	ret0, _ := ret[0].(*grocery.Item)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddItem indicates an expected call of AddItem.
func (mr *MockShoppingCartRepoMockRecorder) AddItem(cartID, item interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddItem", reflect.TypeOf((*MockShoppingCartRepo)(nil).AddItem), cartID, item)
}

// Checkout mocks base method.
func (m *MockShoppingCartRepo) Checkout(cartID string) (shopping_cart.Receipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Checkout", cartID)
	ret0, _ := ret[0].(shopping_cart.Receipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Checkout indicates an expected call of Checkout.
func (mr *MockShoppingCartRepoMockRecorder) Checkout(cartID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Checkout", reflect.TypeOf((*MockShoppingCartRepo)(nil).Checkout), cartID)
}

// Compare mocks base method.
func (m *MockShoppingCartRepo) Compare(leftID, rightID string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Compare", leftID, rightID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Compare indicates an expected call of Compare.
func (mr *MockShoppingCartRepoMockRecorder) Compare(leftID, rightID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Compare", reflect.TypeOf((*MockShoppingCartRepo)(nil).Compare), leftID, rightID)
}

// Create mocks base method.
func (m *MockShoppingCartRepo) Create() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create")
	ret0, _ := ret[0].(string)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockShoppingCartRepoMockRecorder) Create() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockShoppingCartRepo)(nil).Create))
}

// Delete mocks base method.
func (m *MockShoppingCartRepo) Delete(cartID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", cartID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockShoppingCartRepoMockRecorder) Delete(cartID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockShoppingCartRepo)(nil).Delete), cartID)
}

// Get mocks base method.
func (m *MockShoppingCartRepo) Get(cartID string) (shopping_cart.View, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", cartID)
	ret0, _ := ret[0].(shopping_cart.View)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockShoppingCartRepoMockRecorder) Get(cartID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockShoppingCartRepo)(nil).Get), cartID)
}

// RemoveItem mocks base method.
func (m *MockShoppingCartRepo) RemoveItem(cartID, name string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveItem", cartID, name)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveItem indicates an expected call of RemoveItem.
func (mr *MockShoppingCartRepoMockRecorder) RemoveItem(cartID, name interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveItem", reflect.TypeOf((*MockShoppingCartRepo)(nil).RemoveItem), cartID, name)
}
