package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blockpass/internal/models/request_models"
	"blockpass/internal/services"
	"blockpass/pkg/utils"
)

type ContractController struct {
	contractService services.ContractServiceInterface
}

func NewContractController(contractService services.ContractServiceInterface) *ContractController {
	return &ContractController{
		contractService: contractService,
	}
}

// GenerateSolidity godoc
// @Summary Render Solidity source for a pass's refund schedule
// @Tags Contracts
// @Accept json
// @Produce json
// @Param request body request_models.SolidityRequest true "Solidity Request"
// @Success 200 {object} utils.APIResponse
// @Router /contracts/solidity [post]
func (ct *ContractController) GenerateSolidity(c *gin.Context) {

	var request request_models.SolidityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	contract, err := ct.contractService.GenerateSolidity(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contract, "Contract generated successfully")
}
