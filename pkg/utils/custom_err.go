package utils

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("profile not found")

	ErrPassNotFound     = errors.New("pass not found")
	ErrPassNotDeployed  = errors.New("pass has no deployed contract")
	ErrInvalidTierRule  = errors.New("invalid refund tier rule")
	ErrInvalidDuration  = errors.New("invalid pass duration")
	ErrPermissionDenied = errors.New("permission denied")

	ErrOrderNotFound            = errors.New("order not found")
	ErrActiveSubscriptionExists = errors.New("active subscription already exists")
	ErrInvalidSubscriptionState = errors.New("subscription state does not allow this operation")
	ErrInvalidRefundAmount      = errors.New("refund amount must not be negative")

	ErrDocumentNotFound    = errors.New("ocr document not found")
	ErrDocumentNotReady    = errors.New("ocr document is not completed")
	ErrDocumentTooLarge    = errors.New("ocr image too large")
	ErrExtractionFailed    = errors.New("contract extraction failed")
	ErrInvalidContractSpec = errors.New("invalid contract specification")

	ErrDatabaseError = errors.New("database error")
)
