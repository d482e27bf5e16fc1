package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blockpass/internal/models/db_models"
)

// FacilityWithMinPrice is the listing row: a facility plus its cheapest
// active pass, when one exists.
type FacilityWithMinPrice struct {
	Facility  db_models.Facility
	MinPassID string
	MinPrice  *int64
}

type FacilityRepository interface {
	Create(ctx context.Context, facility *db_models.Facility) error
	Any(ctx context.Context) (bool, error)
	ListWithMinPrice(ctx context.Context) ([]FacilityWithMinPrice, error)
}

type facilityRepository struct {
	db *gorm.DB
}

func NewFacilityRepository(db *gorm.DB) FacilityRepository {
	return &facilityRepository{db: db}
}

func (f *facilityRepository) Create(ctx context.Context, facility *db_models.Facility) error {
	return f.db.WithContext(ctx).Create(facility).Error
}

func (f *facilityRepository) Any(ctx context.Context) (bool, error) {
	var count int64
	if err := f.db.WithContext(ctx).Model(&db_models.Facility{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (f *facilityRepository) ListWithMinPrice(ctx context.Context) ([]FacilityWithMinPrice, error) {
	var facilities []db_models.Facility
	if err := f.db.WithContext(ctx).Order("created_at DESC").Find(&facilities).Error; err != nil {
		return nil, err
	}

	rows := make([]FacilityWithMinPrice, 0, len(facilities))
	for _, facility := range facilities {
		row := FacilityWithMinPrice{Facility: facility}

		var cheapest db_models.Pass
		err := f.db.WithContext(ctx).
			Where("facility_id = ? AND status = ?", facility.ID, db_models.PassStatusActive).
			Order("price_minor ASC").
			First(&cheapest).Error
		if err == nil {
			row.MinPassID = cheapest.ID.String()
			price := cheapest.PriceMinor
			row.MinPrice = &price
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}
