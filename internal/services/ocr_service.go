package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blockpass/internal/models/db_models"
	"blockpass/internal/models/request_models"
	"blockpass/internal/models/response_models"
	"blockpass/internal/refundpolicy"
	"blockpass/internal/repositories"
	"blockpass/pkg/utils"
)

const (
	defaultMaxImageBytes  = 10 * 1024 * 1024
	systemBusinessEmail   = "ocr-system@local"
	defaultDurationDays   = 30
	fallbackContractTitle = "OCR 계약"
)

type OCRServiceInterface interface {
	Upload(ctx context.Context, accountID uuid.UUID, role db_models.Role, imagePNG []byte, companyType string) (*response_models.OCRUploadResponse, error)
	ListMyDocuments(ctx context.Context, accountID uuid.UUID, role db_models.Role) ([]response_models.OCRDocumentResponse, error)
	GetResult(ctx context.Context, accountID uuid.UUID, role db_models.Role, documentID uuid.UUID) (*response_models.OCRDocumentResponse, error)
	GetImage(ctx context.Context, documentID uuid.UUID) ([]byte, error)
	CreateContract(ctx context.Context, accountID uuid.UUID, request request_models.OcrContractRequest) (*response_models.OcrContractResponse, error)
}

type OCRService struct {
	db            *gorm.DB
	ocrRepo       repositories.OCRRepository
	accountRepo   repositories.AccountRepository
	extractor     utils.ContractExtractorInterface
	maxImageBytes int
}

// NewOCRService: extractor may be nil, in which case uploads are stored
// without analysis (saved_only).
func NewOCRService(db *gorm.DB, ocrRepo repositories.OCRRepository, accountRepo repositories.AccountRepository, extractor utils.ContractExtractorInterface, maxImageBytes int) OCRServiceInterface {
	if maxImageBytes <= 0 {
		maxImageBytes = defaultMaxImageBytes
	}
	return &OCRService{
		db:            db,
		ocrRepo:       ocrRepo,
		accountRepo:   accountRepo,
		extractor:     extractor,
		maxImageBytes: maxImageBytes,
	}
}

func (o *OCRService) profileIDs(ctx context.Context, accountID uuid.UUID, role db_models.Role) (customerID, businessID *uuid.UUID, err error) {
	if role == db_models.RoleBusiness {
		profile, err := o.accountRepo.BusinessProfileOf(ctx, accountID)
		if err != nil {
			return nil, nil, utils.ErrDatabaseError
		}
		if profile == nil {
			return nil, nil, utils.ErrProfileNotFound
		}
		return nil, &profile.ID, nil
	}

	profile, err := o.accountRepo.CustomerProfileOf(ctx, accountID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, nil, utils.ErrProfileNotFound
	}
	return &profile.ID, nil, nil
}

func (o *OCRService) Upload(ctx context.Context, accountID uuid.UUID, role db_models.Role, imagePNG []byte, companyType string) (*response_models.OCRUploadResponse, error) {
	if len(imagePNG) > o.maxImageBytes {
		return nil, utils.ErrDocumentTooLarge
	}

	customerID, businessID, err := o.profileIDs(ctx, accountID, role)
	if err != nil {
		return nil, err
	}

	doc := &db_models.OCRDocument{
		CustomerProfileID: customerID,
		BusinessProfileID: businessID,
		ImagePNG:          imagePNG,
		Status:            db_models.OCRStatusPending,
	}
	if err := o.ocrRepo.CreateDocument(ctx, doc); err != nil {
		log.Printf("OCR upload: insert failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if o.extractor == nil {
		return &response_models.OCRUploadResponse{
			DocumentID: doc.ID.String(),
			Status:     "saved_only",
		}, nil
	}

	extracted, err := o.extractor.ExtractContract(ctx, imagePNG, companyType)
	if err != nil {
		log.Printf("OCR upload: extraction failed for %s: %v", doc.ID, err)
		// Keep the row; the image can be re-analyzed later.
		if dbErr := o.ocrRepo.SetResult(ctx, doc.ID, db_models.OCRStatusFailed, nil); dbErr != nil {
			return nil, utils.ErrDatabaseError
		}
		return &response_models.OCRUploadResponse{
			DocumentID: doc.ID.String(),
			Status:     string(db_models.OCRStatusFailed),
			Error:      err.Error(),
		}, nil
	}

	result, err := json.Marshal(extracted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if err := o.ocrRepo.SetResult(ctx, doc.ID, db_models.OCRStatusCompleted, result); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.OCRUploadResponse{
		DocumentID: doc.ID.String(),
		Status:     string(db_models.OCRStatusCompleted),
		Result:     result,
	}, nil
}

func (o *OCRService) ListMyDocuments(ctx context.Context, accountID uuid.UUID, role db_models.Role) ([]response_models.OCRDocumentResponse, error) {
	customerID, businessID, err := o.profileIDs(ctx, accountID, role)
	if err != nil {
		return nil, err
	}

	var docs []db_models.OCRDocument
	if businessID != nil {
		docs, err = o.ocrRepo.ListByBusinessProfile(ctx, *businessID)
	} else {
		docs, err = o.ocrRepo.ListByCustomerProfile(ctx, *customerID)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.OCRDocumentResponse, 0, len(docs))
	for i := range docs {
		responses = append(responses, response_models.OCRDocumentResponse{
			DocumentID: docs[i].ID.String(),
			Status:     string(docs[i].Status),
			CreatedAt:  docs[i].CreatedAt,
			ParsedData: json.RawMessage(docs[i].Result),
		})
	}
	return responses, nil
}

func (o *OCRService) GetResult(ctx context.Context, accountID uuid.UUID, role db_models.Role, documentID uuid.UUID) (*response_models.OCRDocumentResponse, error) {
	customerID, businessID, err := o.profileIDs(ctx, accountID, role)
	if err != nil {
		return nil, err
	}

	doc, err := o.ocrRepo.GetById(ctx, documentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if doc == nil {
		return nil, utils.ErrDocumentNotFound
	}

	owned := (customerID != nil && doc.CustomerProfileID != nil && *doc.CustomerProfileID == *customerID) ||
		(businessID != nil && doc.BusinessProfileID != nil && *doc.BusinessProfileID == *businessID)
	if !owned {
		return nil, utils.ErrDocumentNotFound
	}

	return &response_models.OCRDocumentResponse{
		DocumentID: doc.ID.String(),
		Status:     string(doc.Status),
		CreatedAt:  doc.CreatedAt,
		ParsedData: json.RawMessage(doc.Result),
	}, nil
}

func (o *OCRService) GetImage(ctx context.Context, documentID uuid.UUID) ([]byte, error) {
	doc, err := o.ocrRepo.GetById(ctx, documentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if doc == nil || len(doc.ImagePNG) == 0 {
		return nil, utils.ErrDocumentNotFound
	}
	return doc.ImagePNG, nil
}

// CreateContract materializes a completed OCR document into a pass, a
// paid order and an active subscription in one transaction. It is the
// off-chain twin of a purchase against a deployed pass.
func (o *OCRService) CreateContract(ctx context.Context, accountID uuid.UUID, request request_models.OcrContractRequest) (*response_models.OcrContractResponse, error) {
	profile, err := o.accountRepo.CustomerProfileOf(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	documentID, err := uuid.Parse(request.DocumentID)
	if err != nil {
		return nil, utils.ErrDocumentNotFound
	}
	doc, err := o.ocrRepo.GetById(ctx, documentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if doc == nil {
		return nil, utils.ErrDocumentNotFound
	}
	if doc.CustomerProfileID == nil || *doc.CustomerProfileID != profile.ID {
		return nil, utils.ErrPermissionDenied
	}
	if doc.Status != db_models.OCRStatusCompleted {
		return nil, utils.ErrDocumentNotReady
	}

	var extracted utils.ExtractedContract
	if err := json.Unmarshal(doc.Result, &extracted); err != nil {
		return nil, utils.ErrDocumentNotReady
	}

	durationDays := extracted.DurationDays
	if request.DurationDays != nil {
		durationDays = *request.DurationDays
	}
	if durationDays <= 0 {
		durationDays = defaultDurationDays
	}
	durationMinutes := durationDays * 1440

	amountKRW := extracted.AmountKRW
	if request.AmountKRW != nil {
		amountKRW = *request.AmountKRW
	}
	if amountKRW < 0 {
		amountKRW = 0
	}

	rawRules := make([]refundpolicy.RawRule, 0, len(extracted.RefundRules))
	for _, rule := range extracted.RefundRules {
		rawRules = append(rawRules, refundpolicy.RawRule{
			Period:        rule.Days,
			Unit:          "일",
			RefundPercent: rule.Percent,
		})
	}
	schedule, err := refundpolicy.Normalize(rawRules)
	if err != nil {
		return nil, err
	}
	encodedSchedule, err := schedule.Encode()
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	title := request.Title
	if title == "" {
		title = inferContractTitle(&extracted)
	}

	startsAt := utils.NowUnixSeconds()
	if request.StartAt != nil {
		startsAt = *request.StartAt
	}
	var endsAt *int64
	if durationMinutes > 0 {
		ends := startsAt + durationMinutes*60
		endsAt = &ends
	}

	var resp *response_models.OcrContractResponse
	err = o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		businessProfileID := doc.BusinessProfileID
		if businessProfileID == nil {
			id, err := o.ensureSystemBusiness(tx, extracted.BusinessName)
			if err != nil {
				return err
			}
			businessProfileID = &id
			if err := tx.Model(&db_models.OCRDocument{}).
				Where("id = ?", doc.ID).
				Update("business_profile_id", id).Error; err != nil {
				return err
			}
		}

		pass := db_models.Pass{
			BusinessProfileID: *businessProfileID,
			Title:             title,
			Terms:             extracted.Terms,
			PriceMinor:        amountKRW,
			DurationMinutes:   durationMinutes,
			RefundSchedule:    encodedSchedule,
			ContractChain:     "offchain",
			Status:            db_models.PassStatusActive,
		}
		if err := tx.Create(&pass).Error; err != nil {
			return err
		}

		sub := db_models.Subscription{
			AccountID: accountID,
			PassID:    pass.ID,
			StartsAt:  startsAt,
			EndsAt:    endsAt,
			Status:    db_models.SubStatusActive,
		}
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}

		order := db_models.Order{
			AccountID:      accountID,
			PassID:         pass.ID,
			SubscriptionID: sub.ID,
			AmountMinor:    amountKRW,
			Chain:          "offchain",
			Status:         db_models.OrderStatusPaid,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		resp = &response_models.OcrContractResponse{
			DocumentID:     doc.ID.String(),
			PassID:         pass.ID.String(),
			OrderID:        order.ID.String(),
			SubscriptionID: sub.ID.String(),
			StartsAt:       startsAt,
			EndsAt:         endsAt,
			DurationDays:   durationDays,
		}
		return nil
	})
	if err != nil {
		log.Printf("OCR contract: settlement failed for document %s: %v", doc.ID, err)
		return nil, utils.ErrDatabaseError
	}
	return resp, nil
}

// ensureSystemBusiness finds or creates the shared business identity
// ownerless OCR contracts attach to.
func (o *OCRService) ensureSystemBusiness(tx *gorm.DB, nameHint string) (uuid.UUID, error) {
	var account db_models.Account
	err := tx.First(&account, "email = ?", systemBusinessEmail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		account = db_models.Account{
			Email: systemBusinessEmail,
			Name:  "OCR System",
			Role:  db_models.RoleBusiness,
		}
		if err := tx.Create(&account).Error; err != nil {
			return uuid.Nil, err
		}
	} else if err != nil {
		return uuid.Nil, err
	}

	var profile db_models.BusinessProfile
	err = tx.First(&profile, "account_id = ?", account.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		businessName := nameHint
		if businessName == "" {
			businessName = "OCR Business"
		}
		profile = db_models.BusinessProfile{
			AccountID:    account.ID,
			BusinessName: businessName,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return uuid.Nil, err
		}
	} else if err != nil {
		return uuid.Nil, err
	}

	return profile.ID, nil
}

func inferContractTitle(extracted *utils.ExtractedContract) string {
	name := extracted.BusinessName
	if name == "" {
		name = extracted.ServiceType
	}
	if name == "" {
		return fallbackContractTitle
	}
	return name + " " + fallbackContractTitle
}
