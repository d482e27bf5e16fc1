package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockpass/internal/models/db_models"
	"blockpass/internal/models/request_models"
	"blockpass/internal/repositories"
	"blockpass/pkg/utils"
)

func TestCreateAccountAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repositories.NewAccountRepository(db))

	registered, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:       "owner@gym.kr",
		Password:    "secret1",
		DisplayName: "사장님",
		Role:        "business",
	})
	require.NoError(t, err)
	assert.Equal(t, "사장님", registered.Name)

	// Business signup provisions a business profile.
	var profile db_models.BusinessProfile
	require.NoError(t, db.First(&profile, "account_id = ?", registered.UserID).Error)
	assert.NotEmpty(t, profile.BusinessName)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "owner@gym.kr",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, "business", token.Role)
	assert.NotEmpty(t, token.AccessToken)

	claims, err := utils.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, claims.UserID)
	assert.Equal(t, "business", claims.Role)
}

func TestCreateCustomerProvisionsProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repositories.NewAccountRepository(db))

	registered, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:       "user@test.kr",
		Password:    "secret1",
		DisplayName: "회원",
		Role:        "customer",
	})
	require.NoError(t, err)

	var profile db_models.CustomerProfile
	require.NoError(t, db.First(&profile, "account_id = ?", registered.UserID).Error)
}

func TestMe(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repositories.NewAccountRepository(db))

	registered, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:       "me@test.kr",
		Password:    "secret1",
		DisplayName: "나",
		Role:        "customer",
	})
	require.NoError(t, err)

	me, err := svc.Me(context.Background(), uuid.MustParse(registered.UserID))
	require.NoError(t, err)
	assert.Equal(t, "me@test.kr", me.Email)
	assert.Equal(t, "customer", me.Role)

	_, err = svc.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repositories.NewAccountRepository(db))

	req := request_models.SignUpRequest{
		Email:       "dup@test.kr",
		Password:    "secret1",
		DisplayName: "first",
		Role:        "customer",
	}
	_, err := svc.CreateAccount(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateAccount(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginRejections(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repositories.NewAccountRepository(db))

	_, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:       "known@test.kr",
		Password:    "secret1",
		DisplayName: "known",
		Role:        "customer",
	})
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), request_models.LoginRequest{
			Email:    "nobody@test.kr",
			Password: "secret1",
		})
		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), request_models.LoginRequest{
			Email:    "known@test.kr",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})
}
