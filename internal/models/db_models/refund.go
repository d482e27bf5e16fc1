package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RefundReason string

const (
	RefundReasonUser       RefundReason = "user_refund"
	RefundReasonBankruptcy RefundReason = "bankruptcy"
)

// Refund is an immutable settlement record, appended exactly once per
// refund event and never updated. Metadata keeps the inputs the amount
// was computed from, for audit.
type Refund struct {
	BaseModel
	OrderID uuid.UUID `gorm:"type:uuid;index"`

	AmountMinor int64
	Reason      RefundReason   `gorm:"type:varchar(20)"`
	Metadata    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Order Order `gorm:"foreignKey:OrderID"`
}
