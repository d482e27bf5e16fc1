package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blockpass/internal/models/db_models"
)

type AccountRepository interface {
	CreateWithProfile(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	BusinessProfileOf(ctx context.Context, accountID uuid.UUID) (*db_models.BusinessProfile, error)
	CustomerProfileOf(ctx context.Context, accountID uuid.UUID) (*db_models.CustomerProfile, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// CreateWithProfile inserts the account together with its role-specific
// profile row; either both land or neither does.
func (a *accountRepository) CreateWithProfile(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		if account.Role == db_models.RoleBusiness {
			profile := &db_models.BusinessProfile{
				AccountID:    account.ID,
				BusinessName: account.Name + "의 시설",
			}
			return tx.Create(profile).Error
		}
		profile := &db_models.CustomerProfile{AccountID: account.ID}
		return tx.Create(profile).Error
	})
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) BusinessProfileOf(ctx context.Context, accountID uuid.UUID) (*db_models.BusinessProfile, error) {
	var profile db_models.BusinessProfile
	err := a.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (a *accountRepository) CustomerProfileOf(ctx context.Context, accountID uuid.UUID) (*db_models.CustomerProfile, error) {
	var profile db_models.CustomerProfile
	err := a.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}
