package controllers

import (
	"github.com/gin-gonic/gin"

	"blockpass/internal/services"
	"blockpass/pkg/utils"
)

type FacilityController struct {
	facilityService services.FacilityServiceInterface
}

func NewFacilityController(facilityService services.FacilityServiceInterface) *FacilityController {
	return &FacilityController{
		facilityService: facilityService,
	}
}

// ListFacilities godoc
// @Summary List facilities with their cheapest active pass
// @Tags Facilities
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /facilities [get]
func (f *FacilityController) ListFacilities(c *gin.Context) {

	facilities, err := f.facilityService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, facilities, "Facilities fetched successfully")
}

// Seed godoc
// @Summary Insert demo facilities when the table is empty
// @Tags Facilities
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /facilities/seed [post]
func (f *FacilityController) Seed(c *gin.Context) {

	if err := f.facilityService.SeedIfEmpty(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Facilities seeded")
}
