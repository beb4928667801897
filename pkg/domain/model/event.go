package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserAuthenticated struct {
	SessionID uuid.UUID
	AccountID uuid.UUID
	Username  string
	Role      Role
}

func (e UserAuthenticated) Type() string { return "UserAuthenticated" }

type AuthenticationFailed struct {
	SessionID uuid.UUID
	Username  string
	Reason    string
}

func (e AuthenticationFailed) Type() string { return "AuthenticationFailed" }

type ItemAddedToCart struct {
	SessionID uuid.UUID
	ItemID    uuid.UUID
	Name      string
	Quantity  int
	NewTotal  decimal.Decimal
}

func (e ItemAddedToCart) Type() string { return "ItemAddedToCart" }

type OrderConfirmed struct {
	SessionID uuid.UUID
	OrderID   uuid.UUID
	AccountID uuid.UUID
	Method    PaymentMethod
	Total     decimal.Decimal
	LineCount int
}

func (e OrderConfirmed) Type() string { return "OrderConfirmed" }

type CartReset struct {
	SessionID uuid.UUID
}

func (e CartReset) Type() string { return "CartReset" }

type SessionTerminated struct {
	SessionID uuid.UUID
}

func (e SessionTerminated) Type() string { return "SessionTerminated" }

type ItemAddedToCatalog struct {
	ItemID uuid.UUID
	Name   string
	Price  decimal.Decimal
}

func (e ItemAddedToCatalog) Type() string { return "ItemAddedToCatalog" }

type AccountAdded struct {
	AccountID uuid.UUID
	Username  string
	Role      Role
}

func (e AccountAdded) Type() string { return "AccountAdded" }
