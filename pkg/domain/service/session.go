package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"coffeeshop/pkg/domain/model"
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNotAuthenticated     = errors.New("session is not authenticated")
	ErrAlreadyAuthenticated = errors.New("session is already authenticated")
	ErrSessionTerminated    = errors.New("session is terminated")
	ErrCartEmpty            = errors.New("no items in the cart to confirm")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
)

type SessionState int

const (
	Unauthenticated SessionState = iota
	Authenticated
	Terminated
)

func (s SessionState) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// ReceiptFunc is called by ConfirmOrder with the confirmed order and the live
// cart, after the order is built and before the cart is reset.
type ReceiptFunc func(order *model.Order, cart *model.Cart) error

// Session owns one login and one active cart. It is not safe for concurrent use.
type Session struct {
	id         uuid.UUID
	catalog    CatalogService
	accounts   AccountService
	dispatcher EventDispatcher

	state   SessionState
	account model.Account
	cart    *model.Cart
}

func NewSession(catalog CatalogService, accounts AccountService, dispatcher EventDispatcher) (*Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	return &Session{
		id:         id,
		catalog:    catalog,
		accounts:   accounts,
		dispatcher: dispatcher,
		state:      Unauthenticated,
		cart:       model.NewCart(),
	}, nil
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) State() SessionState { return s.state }

// Account returns the logged-in account; ok is false before a successful login.
func (s *Session) Account() (model.Account, bool) {
	return s.account, s.state == Authenticated
}

// Authenticate logs the session in. Only customer accounts are admitted: an
// employee match takes the same failure path as a wrong password, and any
// failure terminates the session.
func (s *Session) Authenticate(username, password string) (model.Account, error) {
	if s.state != Unauthenticated {
		return model.Account{}, s.stateError()
	}

	account, err := s.accounts.Authenticate(username, password)
	switch {
	case errors.Is(err, model.ErrAccountNotFound):
		return model.Account{}, s.failAuthentication(username, "invalid credentials")
	case err != nil:
		return model.Account{}, err
	case account.Role != model.Customer:
		return model.Account{}, s.failAuthentication(username, "role "+account.Role.String()+" is not allowed")
	}

	s.account = account
	s.state = Authenticated
	_ = s.dispatcher.Dispatch(model.UserAuthenticated{
		SessionID: s.id,
		AccountID: account.ID,
		Username:  account.Username,
		Role:      account.Role,
	})
	return account, nil
}

func (s *Session) Menu() ([]model.Item, error) {
	if err := s.requireAuthenticated(); err != nil {
		return nil, err
	}
	return s.catalog.ListItems()
}

// AddToCart appends a line for the item at the 1-based menu position.
func (s *Session) AddToCart(position, quantity int) (model.CartLine, error) {
	if err := s.requireAuthenticated(); err != nil {
		return model.CartLine{}, err
	}
	if quantity <= 0 {
		return model.CartLine{}, ErrInvalidQuantity
	}

	item, err := s.catalog.SelectItem(position)
	if err != nil {
		return model.CartLine{}, err
	}

	line := s.cart.AddLine(item, quantity)
	_ = s.dispatcher.Dispatch(model.ItemAddedToCart{
		SessionID: s.id,
		ItemID:    item.ID,
		Name:      item.Name,
		Quantity:  quantity,
		NewTotal:  s.cart.Total(),
	})
	return line, nil
}

func (s *Session) Cart() *model.Cart {
	return s.cart
}

// ConfirmOrder checks out the active cart with the given payment method and
// replaces it with an empty one. The receipt callback runs between the two;
// the cart is reset even when the callback fails.
func (s *Session) ConfirmOrder(method model.PaymentMethod, receipt ReceiptFunc) (*model.Order, error) {
	if err := s.requireAuthenticated(); err != nil {
		return nil, err
	}
	if s.cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	orderID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:          orderID,
		AccountID:   s.account.ID,
		Lines:       s.cart.Lines(),
		Total:       s.cart.Total(),
		Method:      method,
		ConfirmedAt: time.Now().UTC(),
	}

	_ = s.dispatcher.Dispatch(model.OrderConfirmed{
		SessionID: s.id,
		OrderID:   order.ID,
		AccountID: order.AccountID,
		Method:    method,
		Total:     order.Total,
		LineCount: len(order.Lines),
	})

	var receiptErr error
	if receipt != nil {
		receiptErr = receipt(order, s.cart)
	}

	s.cart = model.NewCart()
	_ = s.dispatcher.Dispatch(model.CartReset{SessionID: s.id})
	return order, receiptErr
}

func (s *Session) Exit() {
	if s.state == Terminated {
		return
	}
	s.state = Terminated
	_ = s.dispatcher.Dispatch(model.SessionTerminated{SessionID: s.id})
}

func (s *Session) failAuthentication(username, reason string) error {
	s.state = Terminated
	_ = s.dispatcher.Dispatch(model.AuthenticationFailed{
		SessionID: s.id,
		Username:  username,
		Reason:    reason,
	})
	return ErrAuthenticationFailed
}

func (s *Session) requireAuthenticated() error {
	if s.state != Authenticated {
		return s.stateError()
	}
	return nil
}

func (s *Session) stateError() error {
	switch s.state {
	case Terminated:
		return ErrSessionTerminated
	case Authenticated:
		return ErrAlreadyAuthenticated
	default:
		return ErrNotAuthenticated
	}
}
