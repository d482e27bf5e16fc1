package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"blockpass/internal/models/db_models"
	"blockpass/internal/models/request_models"
	"blockpass/internal/models/response_models"
	"blockpass/internal/repositories"
	"blockpass/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.TokenResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.RegisterResponse, error)
	Me(ctx context.Context, accountID uuid.UUID) (*response_models.MeResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.TokenResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("Login: lookup failed for %s: %v", request.Email, err)
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, string(account.Role))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        string(account.Role),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.RegisterResponse, error) {
	role := db_models.Role(request.Role)
	if !role.Valid() {
		return nil, utils.ErrPermissionDenied
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := a.accountRepo.CreateWithProfile(ctx, newAccount); err != nil {
		log.Printf("CreateAccount: insert failed for %s: %v", request.Email, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.RegisterResponse{
		UserID: newAccount.ID.String(),
		Name:   newAccount.Name,
	}, nil
}

func (a *AccountService) Me(ctx context.Context, accountID uuid.UUID) (*response_models.MeResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.MeResponse{
		UserID:        account.ID.String(),
		Email:         account.Email,
		Name:          account.Name,
		Role:          string(account.Role),
		WalletAddress: account.WalletAddress,
	}, nil
}
