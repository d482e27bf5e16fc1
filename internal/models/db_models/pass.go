package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"blockpass/internal/refundpolicy"
)

type PassStatus string

const (
	PassStatusActive   PassStatus = "active"
	PassStatusInactive PassStatus = "inactive"
)

// Pass is a sellable entitlement offering. RefundSchedule holds the
// canonical normalized tier schedule (threshold minutes + percent,
// sorted); it is written once at creation and never updated. Changing
// terms means creating a new pass so past purchasers keep the schedule
// they bought under.
type Pass struct {
	BaseModel
	BusinessProfileID uuid.UUID  `gorm:"type:uuid;index"`
	FacilityID        *uuid.UUID `gorm:"type:uuid;index"`
	Title             string     `gorm:"size:100"`
	Terms             string     `gorm:"type:text"`
	PriceMinor        int64      // KRW has no decimals, still minor units
	DurationMinutes   int64
	RefundSchedule    datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	ContractAddress   string         `gorm:"size:100"`
	ContractChain     string         `gorm:"size:50"`
	Status            PassStatus     `gorm:"type:varchar(20);index"`

	Business BusinessProfile `gorm:"foreignKey:BusinessProfileID"`
	Facility *Facility       `gorm:"foreignKey:FacilityID"`
}

// Deployed reports whether the pass has an on-chain settlement target.
// Purchases are refused until one is recorded.
func (p *Pass) Deployed() bool {
	return p.ContractAddress != ""
}

// Schedule decodes the stored canonical refund schedule.
func (p *Pass) Schedule() (refundpolicy.Schedule, error) {
	return refundpolicy.Parse(p.RefundSchedule)
}
