package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blockpass/internal/models/request_models"
	"blockpass/internal/services"
	"blockpass/pkg/utils"
)

type PassController struct {
	passService services.PassServiceInterface
}

func NewPassController(passService services.PassServiceInterface) *PassController {
	return &PassController{
		passService: passService,
	}
}

// CreatePass godoc
// @Summary Create a pass with a tiered refund schedule
// @Tags Passes
// @Accept json
// @Produce json
// @Param request body request_models.CreatePassRequest true "Create Pass Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /business/passes [post]
func (p *PassController) CreatePass(c *gin.Context) {

	var request request_models.CreatePassRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userid := c.GetString("user_id")
	if userid == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	userId, _ := uuid.Parse(userid)

	pass, err := p.passService.CreatePass(c.Request.Context(), userId, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pass, "Pass created successfully")
}

// ListMyPasses godoc
// @Summary List the authenticated business's passes
// @Tags Passes
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /business/passes [get]
func (p *PassController) ListMyPasses(c *gin.Context) {

	userid := c.GetString("user_id")
	if userid == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	userId, _ := uuid.Parse(userid)

	passes, err := p.passService.ListMyPasses(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, passes, "Passes fetched successfully")
}

// DeployPass godoc
// @Summary Record the on-chain deployment of a pass contract
// @Tags Passes
// @Accept json
// @Produce json
// @Param id path string true "Pass ID"
// @Param request body request_models.DeployPassRequest true "Deploy Pass Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /business/passes/{id}/deploy [post]
func (p *PassController) DeployPass(c *gin.Context) {

	passId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pass id")
		return
	}

	var request request_models.DeployPassRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userid := c.GetString("user_id")
	if userid == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	userId, _ := uuid.Parse(userid)

	if err := p.passService.MarkDeployed(c.Request.Context(), userId, passId, request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"pass_id": passId.String()}, "Pass marked as deployed")
}
