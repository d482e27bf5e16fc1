package db_models

import (
	"github.com/google/uuid"

	"blockpass/pkg/utils"
)

type SubscriptionStatus string

const (
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusExpired   SubscriptionStatus = "expired"
	SubStatusCancelled SubscriptionStatus = "cancelled"
	SubStatusRefunded  SubscriptionStatus = "refunded"
)

// Subscription is one customer's entitlement window for one pass.
// At most one row per (account, pass) may be active at any time.
//
// Lifecycle: active → expired (observed lazily at the next purchase
// attempt), active/expired → cancelled or refunded. cancelled and
// refunded are terminal.
type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index:idx_account_pass"`
	PassID    uuid.UUID `gorm:"type:uuid;index:idx_account_pass"`

	StartsAt int64  `gorm:"not null"`
	EndsAt   *int64 // NULL means unbounded (legacy rows)
	Status   SubscriptionStatus `gorm:"type:varchar(20);index"`

	Account Account `gorm:"foreignKey:AccountID"`
	Pass    Pass    `gorm:"foreignKey:PassID"`
}

// WindowPassed reports whether the entitlement window has elapsed at
// now. Unbounded subscriptions never pass.
func (s *Subscription) WindowPassed(nowUnix int64) bool {
	return s.EndsAt != nil && *s.EndsAt <= nowUnix
}

// MarkExpired records the lazily observed expiry. Only an active
// subscription expires.
func (s *Subscription) MarkExpired() error {
	if s.Status != SubStatusActive {
		return utils.ErrInvalidSubscriptionState
	}
	s.Status = SubStatusExpired
	return nil
}

// MarkCancelled transitions to the terminal cancelled status; allowed
// from active or expired only.
func (s *Subscription) MarkCancelled() error {
	if s.Status != SubStatusActive && s.Status != SubStatusExpired {
		return utils.ErrInvalidSubscriptionState
	}
	s.Status = SubStatusCancelled
	return nil
}

// MarkRefunded transitions to the terminal refunded status; allowed
// from active or expired only, which is what makes a double refund
// impossible.
func (s *Subscription) MarkRefunded() error {
	if s.Status != SubStatusActive && s.Status != SubStatusExpired {
		return utils.ErrInvalidSubscriptionState
	}
	s.Status = SubStatusRefunded
	return nil
}
