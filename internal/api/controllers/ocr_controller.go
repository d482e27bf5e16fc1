package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blockpass/internal/models/db_models"
	"blockpass/internal/models/request_models"
	"blockpass/internal/services"
	"blockpass/pkg/utils"
)

type OCRController struct {
	ocrService services.OCRServiceInterface
}

func NewOCRController(ocrService services.OCRServiceInterface) *OCRController {
	return &OCRController{
		ocrService: ocrService,
	}
}

func authIdentity(c *gin.Context) (uuid.UUID, db_models.Role, bool) {
	userid := c.GetString("user_id")
	if userid == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return uuid.Nil, "", false
	}
	userId, _ := uuid.Parse(userid)
	return userId, db_models.Role(c.GetString("Role")), true
}

// Upload godoc
// @Summary Upload a contract image for OCR analysis
// @Tags OCR
// @Accept mpfd
// @Produce json
// @Param image formData file true "Contract image (PNG)"
// @Param company_type formData string false "Business category hint"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ocr/upload [post]
func (o *OCRController) Upload(c *gin.Context) {

	userId, role, ok := authIdentity(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "image file is required")
		return
	}

	opened, err := file.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "image file could not be read")
		return
	}
	defer opened.Close()

	imagePNG, err := io.ReadAll(opened)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "image file could not be read")
		return
	}

	result, err := o.ocrService.Upload(c.Request.Context(), userId, role, imagePNG, c.PostForm("company_type"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Document processed")
}

// ListMyDocuments godoc
// @Summary List the authenticated account's OCR documents
// @Tags OCR
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ocr/documents [get]
func (o *OCRController) ListMyDocuments(c *gin.Context) {

	userId, role, ok := authIdentity(c)
	if !ok {
		return
	}

	documents, err := o.ocrService.ListMyDocuments(c.Request.Context(), userId, role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, documents, "Documents fetched successfully")
}

// GetDocument godoc
// @Summary Fetch one OCR document's status and parsed result
// @Tags OCR
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ocr/documents/{id} [get]
func (o *OCRController) GetDocument(c *gin.Context) {

	documentId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid document id")
		return
	}

	userId, role, ok := authIdentity(c)
	if !ok {
		return
	}

	document, err := o.ocrService.GetResult(c.Request.Context(), userId, role, documentId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, document, "Document fetched successfully")
}

// GetImage godoc
// @Summary Serve the stored contract image
// @Tags OCR
// @Produce png
// @Param id path string true "Document ID"
// @Success 200 {file} binary
// @Router /ocr/documents/{id}/image [get]
func (o *OCRController) GetImage(c *gin.Context) {

	documentId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid document id")
		return
	}

	imagePNG, err := o.ocrService.GetImage(c.Request.Context(), documentId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", imagePNG)
}

// CreateContract godoc
// @Summary Turn a completed OCR document into a pass, order and subscription
// @Tags OCR
// @Accept json
// @Produce json
// @Param request body request_models.OcrContractRequest true "Create Contract Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ocr/contracts [post]
func (o *OCRController) CreateContract(c *gin.Context) {

	var request request_models.OcrContractRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userId, _, ok := authIdentity(c)
	if !ok {
		return
	}

	contract, err := o.ocrService.CreateContract(c.Request.Context(), userId, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contract, "Contract created successfully")
}
