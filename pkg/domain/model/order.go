package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the result of a confirmed checkout. It is handed back to the caller
// and never stored.
type Order struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Lines       []CartLine
	Total       decimal.Decimal
	Method      PaymentMethod
	ConfirmedAt time.Time
}
