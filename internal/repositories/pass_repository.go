package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blockpass/internal/models/db_models"
)

type PassRepository interface {
	Create(ctx context.Context, pass *db_models.Pass) error
	GetById(ctx context.Context, id uuid.UUID) (*db_models.Pass, error)
	ListByBusiness(ctx context.Context, businessProfileID uuid.UUID) ([]db_models.Pass, error)
	MarkDeployed(ctx context.Context, id uuid.UUID, contractAddress, contractChain string) error
}

type passRepository struct {
	db *gorm.DB
}

func NewPassRepository(db *gorm.DB) PassRepository {
	return &passRepository{db: db}
}

func (p *passRepository) Create(ctx context.Context, pass *db_models.Pass) error {
	return p.db.WithContext(ctx).Create(pass).Error
}

func (p *passRepository) GetById(ctx context.Context, id uuid.UUID) (*db_models.Pass, error) {
	var pass db_models.Pass
	err := p.db.WithContext(ctx).First(&pass, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &pass, nil
}

func (p *passRepository) ListByBusiness(ctx context.Context, businessProfileID uuid.UUID) ([]db_models.Pass, error) {
	var passes []db_models.Pass
	err := p.db.WithContext(ctx).
		Where("business_profile_id = ?", businessProfileID).
		Order("created_at DESC").
		Find(&passes).Error

	if err != nil {
		return nil, err
	}

	return passes, nil
}

func (p *passRepository) MarkDeployed(ctx context.Context, id uuid.UUID, contractAddress, contractChain string) error {
	return p.db.WithContext(ctx).Model(&db_models.Pass{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"contract_address": contractAddress,
			"contract_chain":   contractChain,
		}).Error
}
