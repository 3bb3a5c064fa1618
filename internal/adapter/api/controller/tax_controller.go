package controller

import (
	"errors"
	"net/http"

	"github.com/contaflux/fiscal-engine/internal/adapter/api/dto"
	"github.com/contaflux/fiscal-engine/internal/domain/document"
	"github.com/contaflux/fiscal-engine/internal/domain/tax"
	"github.com/contaflux/fiscal-engine/pkg/logger"
	"github.com/gin-gonic/gin"
)

// TaxController manipula as requisições de cálculo de impostos
type TaxController struct {
	calculator *tax.Calculator
	logger     logger.Logger
}

// NewTaxController cria uma nova instância de TaxController
func NewTaxController(calculator *tax.Calculator, logger logger.Logger) *TaxController {
	return &TaxController{
		calculator: calculator,
		logger:     logger,
	}
}

// @Summary Calcular impostos
// @Description Calcula todos os tributos aplicáveis a um documento fiscal e consolida o relatório com alertas consultivos
// @Tags Impostos
// @Accept json
// @Produce json
// @Param request body dto.TaxComputeRequest true "Documento e opções de cálculo"
// @Success 200 {object} dto.TaxComputeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tax/compute [post]
func (c *TaxController) Compute(ctx *gin.Context) {
	var req dto.TaxComputeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	report, err := c.calculator.Compute(&req.Document, req.ToOptions())
	if err != nil {
		var validation *document.ValidationError
		if errors.As(err, &validation) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "documento inválido", err.Error()))
			return
		}
		c.logger.Error("falha ao calcular impostos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular impostos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewTaxComputeResponse(report))
}
