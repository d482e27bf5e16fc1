package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blockpass/internal/models/db_models"
	"blockpass/internal/models/request_models"
	"blockpass/internal/repositories"
	"blockpass/pkg/utils"
)

// fakeExtractor returns a canned contract, or an error when failWith is
// set.
type fakeExtractor struct {
	contract *utils.ExtractedContract
	failWith error
}

func (f *fakeExtractor) ExtractContract(ctx context.Context, imagePNG []byte, companyType string) (*utils.ExtractedContract, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.contract, nil
}

func (f *fakeExtractor) Close() error { return nil }

func gymContract() *utils.ExtractedContract {
	return &utils.ExtractedContract{
		BusinessName: "강남 헬스",
		ServiceType:  "gym",
		AmountKRW:    300000,
		DurationDays: 90,
		RefundRules: []utils.ExtractedRefundRule{
			{Days: 7, Percent: 100},
			{Days: 30, Percent: 50},
		},
		Terms: "환불 규정",
	}
}

func newOCRServiceForTest(db *gorm.DB, extractor utils.ContractExtractorInterface) OCRServiceInterface {
	return NewOCRService(db, repositories.NewOCRRepository(db), repositories.NewAccountRepository(db), extractor, 0)
}

func createCustomerProfile(t *testing.T, db *gorm.DB) (db_models.Account, db_models.CustomerProfile) {
	t.Helper()

	account := createAccount(t, db, db_models.RoleCustomer)
	profile := db_models.CustomerProfile{AccountID: account.ID}
	require.NoError(t, db.Create(&profile).Error)
	return account, profile
}

func TestUploadExtractsAndStoresResult(t *testing.T) {
	db := newTestDB(t)
	svc := newOCRServiceForTest(db, &fakeExtractor{contract: gymContract()})
	customer, profile := createCustomerProfile(t, db)

	resp, err := svc.Upload(context.Background(), customer.ID, customer.Role, []byte("png-bytes"), "gym")
	require.NoError(t, err)
	assert.Equal(t, string(db_models.OCRStatusCompleted), resp.Status)
	assert.NotEmpty(t, resp.Result)

	var doc db_models.OCRDocument
	require.NoError(t, db.First(&doc, "id = ?", resp.DocumentID).Error)
	assert.Equal(t, db_models.OCRStatusCompleted, doc.Status)
	require.NotNil(t, doc.CustomerProfileID)
	assert.Equal(t, profile.ID, *doc.CustomerProfileID)
	assert.Equal(t, []byte("png-bytes"), doc.ImagePNG)
}

func TestUploadWithoutExtractorSavesOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newOCRServiceForTest(db, nil)
	customer, _ := createCustomerProfile(t, db)

	resp, err := svc.Upload(context.Background(), customer.ID, customer.Role, []byte("png"), "")
	require.NoError(t, err)
	assert.Equal(t, "saved_only", resp.Status)

	var doc db_models.OCRDocument
	require.NoError(t, db.First(&doc, "id = ?", resp.DocumentID).Error)
	assert.Equal(t, db_models.OCRStatusPending, doc.Status)
}

func TestUploadExtractionFailureKeepsDocument(t *testing.T) {
	db := newTestDB(t)
	svc := newOCRServiceForTest(db, &fakeExtractor{failWith: errors.New("model timeout")})
	customer, _ := createCustomerProfile(t, db)

	resp, err := svc.Upload(context.Background(), customer.ID, customer.Role, []byte("png"), "")
	require.NoError(t, err)
	assert.Equal(t, string(db_models.OCRStatusFailed), resp.Status)
	assert.NotEmpty(t, resp.Error)

	var doc db_models.OCRDocument
	require.NoError(t, db.First(&doc, "id = ?", resp.DocumentID).Error)
	assert.Equal(t, db_models.OCRStatusFailed, doc.Status)
}

func TestUploadRejectsOversizedImage(t *testing.T) {
	db := newTestDB(t)
	svc := NewOCRService(db, repositories.NewOCRRepository(db), repositories.NewAccountRepository(db), nil, 16)
	customer, _ := createCustomerProfile(t, db)

	_, err := svc.Upload(context.Background(), customer.ID, customer.Role, make([]byte, 17), "")
	assert.ErrorIs(t, err, utils.ErrDocumentTooLarge)
}

func TestGetResultEnforcesOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newOCRServiceForTest(db, &fakeExtractor{contract: gymContract()})
	customer, _ := createCustomerProfile(t, db)
	other, _ := createCustomerProfile(t, db)

	resp, err := svc.Upload(context.Background(), customer.ID, customer.Role, []byte("png"), "")
	require.NoError(t, err)
	docID := uuid.MustParse(resp.DocumentID)

	doc, err := svc.GetResult(context.Background(), customer.ID, customer.Role, docID)
	require.NoError(t, err)
	assert.Equal(t, resp.DocumentID, doc.DocumentID)

	_, err = svc.GetResult(context.Background(), other.ID, other.Role, docID)
	assert.ErrorIs(t, err, utils.ErrDocumentNotFound)
}

func TestListMyDocumentsScopedToProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newOCRServiceForTest(db, nil)
	customer, _ := createCustomerProfile(t, db)
	other, _ := createCustomerProfile(t, db)

	_, err := svc.Upload(context.Background(), customer.ID, customer.Role, []byte("png"), "")
	require.NoError(t, err)

	mine, err := svc.ListMyDocuments(context.Background(), customer.ID, customer.Role)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := svc.ListMyDocuments(context.Background(), other.ID, other.Role)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestCreateContractFromCompletedDocument(t *testing.T) {
	db := newTestDB(t)
	svc := newOCRServiceForTest(db, &fakeExtractor{contract: gymContract()})
	customer, _ := createCustomerProfile(t, db)

	uploaded, err := svc.Upload(context.Background(), customer.ID, customer.Role, []byte("png"), "gym")
	require.NoError(t, err)

	resp, err := svc.CreateContract(context.Background(), customer.ID, request_models.OcrContractRequest{
		DocumentID: uploaded.DocumentID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(90), resp.DurationDays)
	require.NotNil(t, resp.EndsAt)
	assert.Equal(t, resp.StartsAt+90*1440*60, *resp.EndsAt)

	var pass db_models.Pass
	require.NoError(t, db.First(&pass, "id = ?", resp.PassID).Error)
	assert.Equal(t, "offchain", pass.ContractChain)
	assert.Equal(t, int64(300000), pass.PriceMinor)
	schedule, err := pass.Schedule()
	require.NoError(t, err)
	require.Len(t, schedule, 2)
	assert.Equal(t, int64(7*1440), schedule[0].ThresholdMinutes)
	assert.Equal(t, int64(30*1440), schedule[1].ThresholdMinutes)

	var order db_models.Order
	require.NoError(t, db.First(&order, "id = ?", resp.OrderID).Error)
	assert.Equal(t, db_models.OrderStatusPaid, order.Status)
	assert.Equal(t, int64(300000), order.AmountMinor)

	var sub db_models.Subscription
	require.NoError(t, db.First(&sub, "id = ?", resp.SubscriptionID).Error)
	assert.Equal(t, db_models.SubStatusActive, sub.Status)

	// The ownerless document was attached to the shared system business.
	var account db_models.Account
	require.NoError(t, db.First(&account, "email = ?", "ocr-system@local").Error)
	var doc db_models.OCRDocument
	require.NoError(t, db.First(&doc, "id = ?", uploaded.DocumentID).Error)
	require.NotNil(t, doc.BusinessProfileID)
}

func TestCreateContractOverrides(t *testing.T) {
	db := newTestDB(t)
	svc := newOCRServiceForTest(db, &fakeExtractor{contract: gymContract()})
	customer, _ := createCustomerProfile(t, db)

	uploaded, err := svc.Upload(context.Background(), customer.ID, customer.Role, []byte("png"), "gym")
	require.NoError(t, err)

	resp, err := svc.CreateContract(context.Background(), customer.ID, request_models.OcrContractRequest{
		DocumentID:   uploaded.DocumentID,
		Title:        "직접 입력한 계약",
		AmountKRW:    int64Ptr(250000),
		DurationDays: int64Ptr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.DurationDays)

	var pass db_models.Pass
	require.NoError(t, db.First(&pass, "id = ?", resp.PassID).Error)
	assert.Equal(t, "직접 입력한 계약", pass.Title)
	assert.Equal(t, int64(250000), pass.PriceMinor)
	assert.Equal(t, int64(10*1440), pass.DurationMinutes)
}

func TestCreateContractGuards(t *testing.T) {
	db := newTestDB(t)
	svc := newOCRServiceForTest(db, nil)
	customer, _ := createCustomerProfile(t, db)
	other, _ := createCustomerProfile(t, db)

	uploaded, err := svc.Upload(context.Background(), customer.ID, customer.Role, []byte("png"), "")
	require.NoError(t, err)

	t.Run("pending document", func(t *testing.T) {
		_, err := svc.CreateContract(context.Background(), customer.ID, request_models.OcrContractRequest{
			DocumentID: uploaded.DocumentID,
		})
		assert.ErrorIs(t, err, utils.ErrDocumentNotReady)
	})

	t.Run("unknown document", func(t *testing.T) {
		_, err := svc.CreateContract(context.Background(), customer.ID, request_models.OcrContractRequest{
			DocumentID: uuid.New().String(),
		})
		assert.ErrorIs(t, err, utils.ErrDocumentNotFound)
	})

	t.Run("not the uploader", func(t *testing.T) {
		_, err := svc.CreateContract(context.Background(), other.ID, request_models.OcrContractRequest{
			DocumentID: uploaded.DocumentID,
		})
		assert.ErrorIs(t, err, utils.ErrPermissionDenied)
	})
}
