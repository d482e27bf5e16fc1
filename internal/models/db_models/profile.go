package db_models

import "github.com/google/uuid"

// BusinessProfile is the business-side identity a facility or pass
// belongs to; one per business account.
type BusinessProfile struct {
	BaseModel
	AccountID          uuid.UUID `gorm:"type:uuid;index"`
	BusinessName       string    `gorm:"size:100"`
	RegistrationNumber string    `gorm:"size:50"`

	Account Account `gorm:"foreignKey:AccountID"`
}

type CustomerProfile struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`

	Account Account `gorm:"foreignKey:AccountID"`
}
