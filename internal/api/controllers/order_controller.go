package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blockpass/internal/models/db_models"
	"blockpass/internal/models/request_models"
	"blockpass/internal/services"
	mem "blockpass/pkg/memcache"
	"blockpass/pkg/utils"
)

const idempotencyTTL = 10 * time.Minute

type OrderController struct {
	settlementService services.SettlementService
	idempotencyKeys   mem.IdempotencyStore
}

func NewOrderController(settlementService services.SettlementService, idempotencyKeys mem.IdempotencyStore) *OrderController {
	return &OrderController{
		settlementService: settlementService,
		idempotencyKeys:   idempotencyKeys,
	}
}

// Purchase godoc
// @Summary Purchase a pass, creating a subscription and a paid order
// @Tags Orders
// @Produce json
// @Param passId path string true "Pass ID"
// @Param Idempotency-Key header string false "Retry-safe request key"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/purchase/{passId} [post]
func (o *OrderController) Purchase(c *gin.Context) {

	passId, err := uuid.Parse(c.Param("passId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pass id")
		return
	}

	userid := c.GetString("user_id")
	if userid == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	userId, _ := uuid.Parse(userid)

	// A retried request with the same key replays the first outcome
	// instead of opening a second subscription window.
	idemKey := c.GetHeader("Idempotency-Key")
	if idemKey != "" {
		idemKey = userid + ":" + idemKey
		if cached, ok := o.idempotencyKeys.Get(idemKey); ok {
			utils.RespondSuccess(c, cached, "Purchase already processed")
			return
		}
	}

	purchase, err := o.settlementService.Purchase(c.Request.Context(), userId, passId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if idemKey != "" {
		o.idempotencyKeys.Set(idemKey, purchase, idempotencyTTL)
	}

	utils.RespondSuccess(c, purchase, "Purchase completed successfully")
}

// Cancel godoc
// @Summary Cancel an order and its subscription without any payout
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/cancel/{id} [post]
func (o *OrderController) Cancel(c *gin.Context) {

	orderId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	userid := c.GetString("user_id")
	if userid == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	userId, _ := uuid.Parse(userid)

	if err := o.settlementService.Cancel(c.Request.Context(), orderId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"order_id": orderId.String()}, "Order cancelled successfully")
}

// Refund godoc
// @Summary Settle a refund for an order under the pass's tier schedule
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body request_models.RefundOrderRequest false "Refund Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/refund/{id} [post]
func (o *OrderController) Refund(c *gin.Context) {

	orderId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	var request request_models.RefundOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil && err.Error() != "EOF" {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userid := c.GetString("user_id")
	if userid == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	userId, _ := uuid.Parse(userid)

	refund, err := o.settlementService.Refund(c.Request.Context(), orderId, userId, db_models.RefundReason(request.Reason))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, refund, "Refund settled successfully")
}

// MyOrders godoc
// @Summary List the authenticated account's orders
// @Tags Orders
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/my [get]
func (o *OrderController) MyOrders(c *gin.Context) {

	userid := c.GetString("user_id")
	if userid == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	userId, _ := uuid.Parse(userid)

	orders, err := o.settlementService.MyOrders(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "Orders fetched successfully")
}
