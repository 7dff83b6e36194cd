package usecase

// Published to RabbitMQ after an order is stored.
type OrderSubmittedMsg struct {
	OrderID string `json:"orderId"`
	UserID  int64  `json:"userId"`
	Total   string `json:"total"`
	Units   int    `json:"units"`
}

// Sent by the catalog service on Kafka when an item's price changes.
type ItemPriceChangedMsg struct {
	ItemID int64  `json:"itemId"`
	Price  string `json:"price"`
}
