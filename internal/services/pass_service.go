package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"blockpass/internal/models/db_models"
	"blockpass/internal/models/request_models"
	"blockpass/internal/models/response_models"
	"blockpass/internal/refundpolicy"
	"blockpass/internal/repositories"
	"blockpass/pkg/utils"
)

type PassServiceInterface interface {
	CreatePass(ctx context.Context, accountID uuid.UUID, request request_models.CreatePassRequest) (*response_models.PassResponse, error)
	ListMyPasses(ctx context.Context, accountID uuid.UUID) ([]response_models.PassResponse, error)
	MarkDeployed(ctx context.Context, accountID, passID uuid.UUID, request request_models.DeployPassRequest) error
}

type PassService struct {
	passRepo    repositories.PassRepository
	accountRepo repositories.AccountRepository
}

func NewPassService(passRepo repositories.PassRepository, accountRepo repositories.AccountRepository) PassServiceInterface {
	return &PassService{
		passRepo:    passRepo,
		accountRepo: accountRepo,
	}
}

// resolveDurationMinutes applies the legacy conversion: minute durations
// win, day durations convert via days*1440.
func resolveDurationMinutes(minutes, days *int64) (int64, error) {
	var resolved int64
	switch {
	case minutes != nil:
		resolved = *minutes
	case days != nil:
		resolved = *days * 1440
	}
	if resolved < 0 {
		return 0, utils.ErrInvalidDuration
	}
	return resolved, nil
}

func (p *PassService) CreatePass(ctx context.Context, accountID uuid.UUID, request request_models.CreatePassRequest) (*response_models.PassResponse, error) {
	profile, err := p.accountRepo.BusinessProfileOf(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	durationMinutes, err := resolveDurationMinutes(request.DurationMinutes, request.DurationDays)
	if err != nil {
		return nil, err
	}

	// Normalize once; everything downstream, including the generated
	// contract, reads this canonical schedule.
	schedule, err := refundpolicy.Normalize(request.RefundRules)
	if err != nil {
		return nil, err
	}
	encoded, err := schedule.Encode()
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	pass := &db_models.Pass{
		BusinessProfileID: profile.ID,
		Title:             request.Title,
		Terms:             request.Terms,
		PriceMinor:        request.PriceMinor,
		DurationMinutes:   durationMinutes,
		RefundSchedule:    encoded,
		ContractAddress:   request.ContractAddress,
		ContractChain:     request.ContractChain,
		Status:            db_models.PassStatusActive,
	}

	if err := p.passRepo.Create(ctx, pass); err != nil {
		log.Printf("CreatePass: insert failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return passToResponse(pass, schedule), nil
}

func (p *PassService) ListMyPasses(ctx context.Context, accountID uuid.UUID) ([]response_models.PassResponse, error) {
	profile, err := p.accountRepo.BusinessProfileOf(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	passes, err := p.passRepo.ListByBusiness(ctx, profile.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PassResponse, 0, len(passes))
	for i := range passes {
		schedule, err := passes[i].Schedule()
		if err != nil {
			log.Printf("ListMyPasses: bad stored schedule on pass %s: %v", passes[i].ID, err)
			schedule = refundpolicy.Schedule{}
		}
		responses = append(responses, *passToResponse(&passes[i], schedule))
	}
	return responses, nil
}

func (p *PassService) MarkDeployed(ctx context.Context, accountID, passID uuid.UUID, request request_models.DeployPassRequest) error {
	profile, err := p.accountRepo.BusinessProfileOf(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if profile == nil {
		return utils.ErrProfileNotFound
	}

	pass, err := p.passRepo.GetById(ctx, passID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if pass == nil {
		return utils.ErrPassNotFound
	}
	if pass.BusinessProfileID != profile.ID {
		return utils.ErrPermissionDenied
	}

	address := request.ContractAddress
	if address == "" {
		// Mock deployment target, same shape the legacy service minted.
		hexPart, err := utils.GenerateSecureToken(20)
		if err != nil {
			return utils.ErrDatabaseError
		}
		address = "0x" + hexPart
	}
	chain := request.ContractChain
	if chain == "" {
		chain = "Polygon"
	}

	if err := p.passRepo.MarkDeployed(ctx, passID, address, chain); err != nil {
		log.Printf("MarkDeployed: update failed for pass %s: %v", passID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func passToResponse(pass *db_models.Pass, schedule refundpolicy.Schedule) *response_models.PassResponse {
	return &response_models.PassResponse{
		ID:              pass.ID.String(),
		Title:           pass.Title,
		Terms:           pass.Terms,
		PriceMinor:      pass.PriceMinor,
		DurationMinutes: pass.DurationMinutes,
		RefundSchedule:  schedule,
		ContractAddress: pass.ContractAddress,
		ContractChain:   pass.ContractChain,
		Status:          string(pass.Status),
		CreatedAt:       pass.CreatedAt,
	}
}
