package db_models

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// Order is the commercial record of one purchase. SubscriptionID is a
// direct reference to the subscription the purchase created; the legacy
// service joined the two through (user, pass) instead.
type Order struct {
	BaseModel
	AccountID      uuid.UUID `gorm:"type:uuid;index"`
	PassID         uuid.UUID `gorm:"type:uuid;index"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	AmountMinor int64
	TxHash      string      `gorm:"size:100"`
	Chain       string      `gorm:"size:50"`
	Status      OrderStatus `gorm:"type:varchar(20);index"`

	Account      Account      `gorm:"foreignKey:AccountID"`
	Pass         Pass         `gorm:"foreignKey:PassID"`
	Subscription Subscription `gorm:"foreignKey:SubscriptionID"`
}
