package services

import (
	"context"
	"log"
	"strconv"

	"blockpass/internal/models/db_models"
	"blockpass/internal/models/response_models"
	"blockpass/internal/repositories"
	"blockpass/pkg/utils"
)

type FacilityServiceInterface interface {
	List(ctx context.Context) ([]response_models.FacilityResponse, error)
	SeedIfEmpty(ctx context.Context) error
}

type FacilityService struct {
	facilityRepo repositories.FacilityRepository
}

func NewFacilityService(facilityRepo repositories.FacilityRepository) FacilityServiceInterface {
	return &FacilityService{facilityRepo: facilityRepo}
}

func (f *FacilityService) List(ctx context.Context) ([]response_models.FacilityResponse, error) {
	rows, err := f.facilityRepo.ListWithMinPrice(ctx)
	if err != nil {
		log.Printf("Facility list failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.FacilityResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, response_models.FacilityResponse{
			ID:           row.Facility.ID.String(),
			Name:         row.Facility.Name,
			Category:     row.Facility.Category,
			Address:      row.Facility.Address,
			Lat:          row.Facility.Lat,
			Lng:          row.Facility.Lng,
			MinPassID:    row.MinPassID,
			MinPrice:     row.MinPrice,
			PriceDisplay: priceDisplay(row.MinPrice),
		})
	}
	return responses, nil
}

func priceDisplay(minPrice *int64) string {
	if minPrice == nil {
		return "준비중"
	}
	return strconv.FormatInt(*minPrice, 10) + "원~"
}

// SeedIfEmpty inserts demo facilities on a fresh database so the map
// view has something to show before any business registers.
func (f *FacilityService) SeedIfEmpty(ctx context.Context) error {
	exists, err := f.facilityRepo.Any(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	seeds := []db_models.Facility{
		{Name: "강남 피트니스", Category: "gym", Address: "서울 강남구 테헤란로 123", Lat: 37.4979, Lng: 127.0276},
		{Name: "한강 필라테스", Category: "pilates", Address: "서울 용산구 이촌로 45", Lat: 37.5219, Lng: 126.9895},
		{Name: "홍대 클라이밍", Category: "climbing", Address: "서울 마포구 와우산로 21", Lat: 37.5532, Lng: 126.9220},
	}
	for i := range seeds {
		if err := f.facilityRepo.Create(ctx, &seeds[i]); err != nil {
			return err
		}
	}
	return nil
}
