package ocr_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"blockpass/internal/api/controllers"
	"blockpass/internal/repositories"
	"blockpass/internal/services"
	"blockpass/pkg/utils"
)

var Module = fx.Provide(
	provideOCRRepo, provideExtractor, provideOCRService, provideOCRController)

func provideOCRRepo(db *gorm.DB) repositories.OCRRepository {
	return repositories.NewOCRRepository(db)
}

func provideExtractor() utils.ContractExtractorInterface {
	apiKey := os.Getenv("OCR_API_KEY")
	if apiKey == "" {
		log.Println("OCR_API_KEY not set, uploads are stored without analysis")
		return nil
	}

	provider := os.Getenv("OCR_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	extractor, err := utils.NewContractExtractor(provider, apiKey, os.Getenv("OCR_MODEL"))
	if err != nil {
		log.Printf("Error initializing contract extractor: %v", err)
		return nil
	}
	return extractor
}

func provideOCRService(db *gorm.DB, ocrRepo repositories.OCRRepository, accountRepo repositories.AccountRepository, extractor utils.ContractExtractorInterface) services.OCRServiceInterface {
	maxBytes, _ := strconv.Atoi(os.Getenv("MAX_IMAGE_BYTES"))
	return services.NewOCRService(db, ocrRepo, accountRepo, extractor, maxBytes)
}

func provideOCRController(ocrService services.OCRServiceInterface) *controllers.OCRController {
	return controllers.NewOCRController(ocrService)
}
