package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blockpass/internal/models/db_models"
)

type OCRRepository interface {
	CreateDocument(ctx context.Context, doc *db_models.OCRDocument) error
	GetById(ctx context.Context, id uuid.UUID) (*db_models.OCRDocument, error)
	SetResult(ctx context.Context, id uuid.UUID, status db_models.OCRStatus, result []byte) error
	ListByCustomerProfile(ctx context.Context, profileID uuid.UUID) ([]db_models.OCRDocument, error)
	ListByBusinessProfile(ctx context.Context, profileID uuid.UUID) ([]db_models.OCRDocument, error)
}

type ocrRepository struct {
	db *gorm.DB
}

func NewOCRRepository(db *gorm.DB) OCRRepository {
	return &ocrRepository{db: db}
}

func (o *ocrRepository) CreateDocument(ctx context.Context, doc *db_models.OCRDocument) error {
	return o.db.WithContext(ctx).Create(doc).Error
}

func (o *ocrRepository) GetById(ctx context.Context, id uuid.UUID) (*db_models.OCRDocument, error) {
	var doc db_models.OCRDocument
	err := o.db.WithContext(ctx).First(&doc, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &doc, nil
}

func (o *ocrRepository) SetResult(ctx context.Context, id uuid.UUID, status db_models.OCRStatus, result []byte) error {
	updates := map[string]interface{}{"status": status}
	if result != nil {
		updates["result"] = result
	}
	return o.db.WithContext(ctx).Model(&db_models.OCRDocument{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (o *ocrRepository) ListByCustomerProfile(ctx context.Context, profileID uuid.UUID) ([]db_models.OCRDocument, error) {
	var docs []db_models.OCRDocument
	err := o.db.WithContext(ctx).
		Select("id", "status", "created_at", "result").
		Where("customer_profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (o *ocrRepository) ListByBusinessProfile(ctx context.Context, profileID uuid.UUID) ([]db_models.OCRDocument, error) {
	var docs []db_models.OCRDocument
	err := o.db.WithContext(ctx).
		Select("id", "status", "created_at", "result").
		Where("business_profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}
