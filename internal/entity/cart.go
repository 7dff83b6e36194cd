package entity

import "github.com/shopspring/decimal"

// Cart stores one entry per unit: adding three units of an item appends three
// entries. List length therefore equals the number of units in the cart.
// Total is derived from the entries and must never be persisted stale.
type Cart struct {
	ID     int64           `json:"id"`
	UserID int64           `json:"userId"`
	Items  []Item          `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

func (c *Cart) AddItem(item Item, quantity int) {
	for i := 0; i < quantity; i++ {
		c.Items = append(c.Items, item)
	}
	c.RecomputeTotal()
}

// RemoveItem drops up to quantity entries matching the item ID. Entries match
// by ID, not by full value equality. Fewer matching entries than requested is
// not an error: whatever is present gets removed.
func (c *Cart) RemoveItem(itemID int64, quantity int) {
	removed := 0
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ID == itemID && removed < quantity {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	c.Items = kept
	c.RecomputeTotal()
}

func (c *Cart) RecomputeTotal() {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Price)
	}
	c.Total = total
}
