package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockpass/internal/models/db_models"
	"blockpass/internal/repositories"
)

func TestSeedIfEmptyRunsOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewFacilityService(repositories.NewFacilityRepository(db))

	require.NoError(t, svc.SeedIfEmpty(context.Background()))

	var count int64
	require.NoError(t, db.Model(&db_models.Facility{}).Count(&count).Error)
	assert.Greater(t, count, int64(0))

	require.NoError(t, svc.SeedIfEmpty(context.Background()))

	var again int64
	require.NoError(t, db.Model(&db_models.Facility{}).Count(&again).Error)
	assert.Equal(t, count, again)
}

func TestListShowsCheapestActivePass(t *testing.T) {
	db := newTestDB(t)
	svc := NewFacilityService(repositories.NewFacilityRepository(db))
	_, profile := createBusinessProfile(t, db)

	facility := db_models.Facility{
		BusinessProfileID: &profile.ID,
		Name:              "테스트 짐",
		Category:          "gym",
	}
	require.NoError(t, db.Create(&facility).Error)

	for _, pass := range []db_models.Pass{
		{BusinessProfileID: profile.ID, FacilityID: &facility.ID, Title: "비싼 것", PriceMinor: 90000, Status: db_models.PassStatusActive},
		{BusinessProfileID: profile.ID, FacilityID: &facility.ID, Title: "싼 것", PriceMinor: 30000, Status: db_models.PassStatusActive},
		{BusinessProfileID: profile.ID, FacilityID: &facility.ID, Title: "내려간 것", PriceMinor: 1000, Status: db_models.PassStatusInactive},
	} {
		p := pass
		require.NoError(t, db.Create(&p).Error)
	}

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NotNil(t, rows[0].MinPrice)
	assert.Equal(t, int64(30000), *rows[0].MinPrice)
	assert.Equal(t, "30000원~", rows[0].PriceDisplay)
	assert.NotEmpty(t, rows[0].MinPassID)
}

func TestListFacilityWithoutPasses(t *testing.T) {
	db := newTestDB(t)
	svc := NewFacilityService(repositories.NewFacilityRepository(db))

	facility := db_models.Facility{Name: "빈 시설", Category: "studyroom"}
	require.NoError(t, db.Create(&facility).Error)

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Nil(t, rows[0].MinPrice)
	assert.Equal(t, "준비중", rows[0].PriceDisplay)
}
