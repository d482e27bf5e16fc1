package db_models

import "github.com/google/uuid"

type Facility struct {
	BaseModel
	BusinessProfileID *uuid.UUID `gorm:"type:uuid;index"` // nil for seeded demo facilities
	Name              string     `gorm:"size:100"`
	Category          string     `gorm:"size:50"` // gym | studyroom | etc
	Address           string     `gorm:"size:255"`
	Lat               float64
	Lng               float64

	Business *BusinessProfile `gorm:"foreignKey:BusinessProfileID"`
}
