package entity

import "github.com/shopspring/decimal"

// Item is a catalog entry. Items are immutable once created; price changes
// happen upstream in the catalog service and reach us as cache invalidations.
type Item struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}
