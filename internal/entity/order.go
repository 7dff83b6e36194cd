package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable snapshot of a cart taken at submission time. The item
// entries and total are copied, so later cart mutations never touch past
// orders. There is no status: an order is final the moment it exists.
type Order struct {
	ID        string          `json:"id"`
	UserID    int64           `json:"userId"`
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}
