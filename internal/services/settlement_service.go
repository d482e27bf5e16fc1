package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blockpass/internal/models/db_models"
	"blockpass/internal/models/response_models"
	"blockpass/internal/refundpolicy"
	"blockpass/pkg/utils"
)

// SettlementService coordinates the purchase / cancel / refund
// lifecycle. Every operation is one database transaction: either the
// whole settlement lands or none of it does.
type SettlementService interface {
	Purchase(ctx context.Context, accountID, passID uuid.UUID) (*response_models.PurchaseResponse, error)
	Cancel(ctx context.Context, orderID, accountID uuid.UUID) error
	Refund(ctx context.Context, orderID, accountID uuid.UUID, reason db_models.RefundReason) (*response_models.RefundResponse, error)
	MyOrders(ctx context.Context, accountID uuid.UUID) ([]response_models.MyOrderResponse, error)
}

type settlementService struct {
	db *gorm.DB
}

func NewSettlementService(db *gorm.DB) SettlementService {
	return &settlementService{db: db}
}

// knownErr keeps sentinel errors intact across the transaction boundary
// while folding storage failures into one opaque kind.
func knownErr(err error) error {
	for _, sentinel := range []error{
		utils.ErrAccountNotFound,
		utils.ErrPassNotFound,
		utils.ErrPassNotDeployed,
		utils.ErrPermissionDenied,
		utils.ErrOrderNotFound,
		utils.ErrActiveSubscriptionExists,
		utils.ErrInvalidSubscriptionState,
		utils.ErrInvalidRefundAmount,
		utils.ErrInvalidDuration,
		utils.ErrInvalidTierRule,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	log.Printf("settlement: storage failure: %v", err)
	return utils.ErrDatabaseError
}

// lockSubscriptions serializes the read-check-write on the (account,
// pass) subscription set so two concurrent purchases cannot both
// observe "no active subscription".
func lockSubscriptions(tx *gorm.DB) *gorm.DB {
	// sqlite (tests) has no FOR UPDATE; its writer lock serializes anyway
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func (s *settlementService) Purchase(ctx context.Context, accountID, passID uuid.UUID) (*response_models.PurchaseResponse, error) {
	var account db_models.Account
	if err := s.db.WithContext(ctx).First(&account, "id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, knownErr(err)
	}
	if account.Role != db_models.RoleCustomer {
		return nil, utils.ErrPermissionDenied
	}

	var pass db_models.Pass
	if err := s.db.WithContext(ctx).First(&pass, "id = ?", passID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrPassNotFound
		}
		return nil, knownErr(err)
	}
	if pass.Status != db_models.PassStatusActive {
		return nil, utils.ErrPermissionDenied
	}
	if !pass.Deployed() {
		return nil, utils.ErrPassNotDeployed
	}
	if pass.DurationMinutes < 0 {
		return nil, utils.ErrInvalidDuration
	}

	now := utils.NowUnixSeconds()
	var resp *response_models.PurchaseResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []db_models.Subscription
		if err := lockSubscriptions(tx).
			Where("account_id = ? AND pass_id = ? AND status = ?", accountID, passID, db_models.SubStatusActive).
			Find(&existing).Error; err != nil {
			return err
		}

		for i := range existing {
			sub := &existing[i]
			// Unbounded windows never expire, so they always conflict.
			if sub.EndsAt == nil || !sub.WindowPassed(now) {
				return utils.ErrActiveSubscriptionExists
			}
			if err := sub.MarkExpired(); err != nil {
				return err
			}
			if err := tx.Model(sub).Update("status", sub.Status).Error; err != nil {
				return err
			}
		}

		endsAt := now + pass.DurationMinutes*60
		sub := db_models.Subscription{
			AccountID: accountID,
			PassID:    passID,
			StartsAt:  now,
			EndsAt:    &endsAt,
			Status:    db_models.SubStatusActive,
		}
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}

		hexPart, err := utils.GenerateSecureToken(32)
		if err != nil {
			return err
		}
		chain := pass.ContractChain
		if chain == "" {
			chain = "Polygon"
		}
		order := db_models.Order{
			AccountID:      accountID,
			PassID:         passID,
			SubscriptionID: sub.ID,
			AmountMinor:    pass.PriceMinor,
			TxHash:         "0x" + hexPart,
			Chain:          chain,
			Status:         db_models.OrderStatusPaid,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		resp = &response_models.PurchaseResponse{
			OrderID:         order.ID.String(),
			SubscriptionID:  sub.ID.String(),
			ContractAddress: pass.ContractAddress,
			AmountMinor:     order.AmountMinor,
			StartsAt:        sub.StartsAt,
			EndsAt:          endsAt,
		}
		return nil
	})
	if err != nil {
		return nil, knownErr(err)
	}
	return resp, nil
}

func (s *settlementService) Cancel(ctx context.Context, orderID, accountID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order db_models.Order
		if err := tx.First(&order, "id = ? AND account_id = ?", orderID, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrOrderNotFound
			}
			return err
		}

		var sub db_models.Subscription
		if err := lockSubscriptions(tx).First(&sub, "id = ?", order.SubscriptionID).Error; err != nil {
			return err
		}

		// Re-cancelling is harmless; leaving refunded is not.
		if sub.Status != db_models.SubStatusCancelled {
			if err := sub.MarkCancelled(); err != nil {
				return err
			}
		}

		if err := tx.Model(&sub).Update("status", db_models.SubStatusCancelled).Error; err != nil {
			return err
		}
		return tx.Model(&order).Update("status", db_models.OrderStatusCancelled).Error
	})
	if err != nil {
		return knownErr(err)
	}
	return nil
}

func (s *settlementService) Refund(ctx context.Context, orderID, accountID uuid.UUID, reason db_models.RefundReason) (*response_models.RefundResponse, error) {
	if reason == "" {
		reason = db_models.RefundReasonUser
	}

	now := utils.NowUnixSeconds()
	var resp *response_models.RefundResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order db_models.Order
		if err := tx.First(&order, "id = ? AND account_id = ?", orderID, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrOrderNotFound
			}
			return err
		}
		if order.AmountMinor < 0 {
			return utils.ErrInvalidRefundAmount
		}

		var sub db_models.Subscription
		if err := lockSubscriptions(tx).First(&sub, "id = ?", order.SubscriptionID).Error; err != nil {
			return err
		}

		var pass db_models.Pass
		if err := tx.First(&pass, "id = ?", order.PassID).Error; err != nil {
			return err
		}
		schedule, err := pass.Schedule()
		if err != nil {
			return err
		}

		elapsed := utils.ElapsedMinutes(sub.StartsAt, now)
		percent := refundpolicy.Percent(schedule, elapsed)
		amount := refundpolicy.Amount(schedule, elapsed, order.AmountMinor)

		if err := sub.MarkRefunded(); err != nil {
			return err
		}
		if err := tx.Model(&sub).Update("status", sub.Status).Error; err != nil {
			return err
		}
		if err := tx.Model(&order).Update("status", db_models.OrderStatusRefunded).Error; err != nil {
			return err
		}

		refund := db_models.Refund{
			OrderID:     order.ID,
			AmountMinor: amount,
			Reason:      reason,
			Metadata: jsonRaw(map[string]any{
				"elapsed_minutes": elapsed,
				"refund_percent":  percent,
				"paid_minor":      order.AmountMinor,
			}),
		}
		if err := tx.Create(&refund).Error; err != nil {
			return err
		}

		resp = &response_models.RefundResponse{
			RefundID:       refund.ID.String(),
			OrderID:        order.ID.String(),
			AmountMinor:    amount,
			Reason:         string(reason),
			ElapsedMinutes: elapsed,
			RefundPercent:  percent,
		}
		return nil
	})
	if err != nil {
		return nil, knownErr(err)
	}
	return resp, nil
}

func (s *settlementService) MyOrders(ctx context.Context, accountID uuid.UUID) ([]response_models.MyOrderResponse, error) {
	var orders []db_models.Order
	err := s.db.WithContext(ctx).
		Preload("Pass").
		Preload("Subscription").
		Where("account_id = ? AND status <> ?", accountID, db_models.OrderStatusCancelled).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, knownErr(err)
	}

	rows := make([]response_models.MyOrderResponse, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		if order.Subscription.Status == db_models.SubStatusCancelled {
			continue
		}
		rows = append(rows, response_models.MyOrderResponse{
			OrderID:         order.ID.String(),
			PassTitle:       order.Pass.Title,
			AmountMinor:     order.AmountMinor,
			DurationMinutes: order.Pass.DurationMinutes,
			ContractAddress: order.Pass.ContractAddress,
			StartsAt:        order.Subscription.StartsAt,
			EndsAt:          order.Subscription.EndsAt,
			OrderStatus:     string(order.Status),
			SubStatus:       string(order.Subscription.Status),
		})
	}
	return rows, nil
}

func jsonRaw(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
