package controller

import (
	"errors"
	"net/http"

	"github.com/contaflux/fiscal-engine/internal/adapter/api/dto"
	"github.com/contaflux/fiscal-engine/internal/domain/classification"
	"github.com/contaflux/fiscal-engine/internal/domain/document"
	"github.com/contaflux/fiscal-engine/pkg/logger"
	"github.com/contaflux/fiscal-engine/pkg/tenant"
	"github.com/gin-gonic/gin"
)

// ClassificationController manipula as requisições de classificação de
// documentos
type ClassificationController struct {
	service *classification.Service
	logger  logger.Logger
}

// NewClassificationController cria uma nova instância de ClassificationController
func NewClassificationController(service *classification.Service, logger logger.Logger) *ClassificationController {
	return &ClassificationController{
		service: service,
		logger:  logger,
	}
}

// @Summary Classificar documento
// @Description Classifica um documento fiscal em um lançamento contábil usando o motor de regras com fallback heurístico
// @Tags Classificação
// @Accept json
// @Produce json
// @Param tenant-id header string false "Tenant ID"
// @Param request body dto.ClassifyRequest true "Documento a classificar"
// @Success 200 {object} dto.ClassifyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /classification/classify [post]
func (c *ClassificationController) Classify(ctx *gin.Context) {
	var req dto.ClassifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	// o tenant do corpo prevalece; sem ele, o do cabeçalho
	tenantID := req.TenantID
	if tenantID == "" {
		tenantID = tenant.GetTenantID(ctx)
	}

	out, err := c.service.Classify(ctx.Request.Context(), &req.Document, tenantID)
	if err != nil {
		var validation *document.ValidationError
		if errors.As(err, &validation) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "documento inválido", err.Error()))
			return
		}
		c.logger.Error("falha ao classificar documento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao classificar documento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewClassifyResponse(out))
}
