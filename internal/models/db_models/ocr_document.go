package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OCRStatus string

const (
	OCRStatusPending   OCRStatus = "pending"
	OCRStatusCompleted OCRStatus = "completed"
	OCRStatusFailed    OCRStatus = "failed"
)

// OCRDocument keeps an uploaded contract image and, once extraction
// succeeded, the structured result. Exactly one of the two profile ids
// is set, depending on who uploaded it.
type OCRDocument struct {
	BaseModel
	CustomerProfileID *uuid.UUID `gorm:"type:uuid;index"`
	BusinessProfileID *uuid.UUID `gorm:"type:uuid;index"`

	ImagePNG []byte         `gorm:"type:bytea"`
	Result   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Status   OCRStatus      `gorm:"type:varchar(20);index"`

	CustomerProfile *CustomerProfile `gorm:"foreignKey:CustomerProfileID"`
	BusinessProfile *BusinessProfile `gorm:"foreignKey:BusinessProfileID"`
}
