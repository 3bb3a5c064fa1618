package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/contaflux/fiscal-engine/internal/adapter/api/dto"
	"github.com/contaflux/fiscal-engine/internal/domain/classification"
	"github.com/contaflux/fiscal-engine/pkg/logger"
	"github.com/contaflux/fiscal-engine/pkg/tenant"
	"github.com/gin-gonic/gin"
)

// RuleController manipula as requisições de administração de regras de
// classificação
type RuleController struct {
	ruleRepo classification.Repository
	logger   logger.Logger
}

// NewRuleController cria uma nova instância de RuleController
func NewRuleController(ruleRepo classification.Repository, logger logger.Logger) *RuleController {
	return &RuleController{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

// @Summary Criar regra de classificação
// @Description Cria uma nova regra de classificação para o tenant
// @Tags Regras
// @Accept json
// @Produce json
// @Param tenant-id header string true "Tenant ID"
// @Param rule body dto.RuleRequest true "Dados da regra"
// @Success 201 {object} dto.RuleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /rules [post]
func (c *RuleController) Create(ctx *gin.Context) {
	var req dto.RuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	tenantID := tenant.GetTenantID(ctx)

	rule, err := classification.NewRule(req.Name, tenantID, req.ToConditions(), req.ToResultTemplate(), req.Priority)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar regra", err.Error()))
		return
	}

	if err := c.ruleRepo.Create(ctx.Request.Context(), rule); err != nil {
		c.logger.Error("falha ao persistir regra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar regra", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewRuleResponse(rule))
}

// @Summary Listar regras
// @Description Lista as regras de classificação do tenant com paginação
// @Tags Regras
// @Produce json
// @Param tenant-id header string true "Tenant ID"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.RuleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /rules [get]
func (c *RuleController) List(ctx *gin.Context) {
	tenantID := tenant.GetTenantID(ctx)

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	rules, err := c.ruleRepo.List(ctx.Request.Context(), tenantID, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("falha ao listar regras", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar regras", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewRuleListResponse(rules))
}

// @Summary Buscar regra
// @Description Busca uma regra de classificação pelo ID
// @Tags Regras
// @Produce json
// @Param tenant-id header string true "Tenant ID"
// @Param id path string true "ID da regra"
// @Success 200 {object} dto.RuleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /rules/{id} [get]
func (c *RuleController) GetByID(ctx *gin.Context) {
	rule, err := c.ruleRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, classification.ErrRuleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "regra não encontrada", err.Error()))
			return
		}
		c.logger.Error("falha ao buscar regra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar regra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewRuleResponse(rule))
}

// @Summary Atualizar regra
// @Description Atualiza os dados de uma regra de classificação
// @Tags Regras
// @Accept json
// @Produce json
// @Param tenant-id header string true "Tenant ID"
// @Param id path string true "ID da regra"
// @Param rule body dto.RuleRequest true "Dados da regra"
// @Success 200 {object} dto.RuleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /rules/{id} [put]
func (c *RuleController) Update(ctx *gin.Context) {
	var req dto.RuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	rule, err := c.ruleRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, classification.ErrRuleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "regra não encontrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar regra", err.Error()))
		return
	}

	rule.Name = req.Name
	rule.Conditions = req.ToConditions()
	rule.Result = req.ToResultTemplate()
	rule.Priority = req.Priority

	if err := c.ruleRepo.Update(ctx.Request.Context(), rule); err != nil {
		c.logger.Error("falha ao atualizar regra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar regra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewRuleResponse(rule))
}

// @Summary Ativar/desativar regra
// @Description Atualiza o status de uma regra de classificação
// @Tags Regras
// @Produce json
// @Param tenant-id header string true "Tenant ID"
// @Param id path string true "ID da regra"
// @Param status path string true "Status (active|inactive)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /rules/{id}/status/{status} [patch]
func (c *RuleController) UpdateStatus(ctx *gin.Context) {
	status := ctx.Param("status")
	if status != "active" && status != "inactive" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", "use 'active' ou 'inactive'"))
		return
	}

	if err := c.ruleRepo.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), status == "active"); err != nil {
		if errors.Is(err, classification.ErrRuleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "regra não encontrada", err.Error()))
			return
		}
		c.logger.Error("falha ao atualizar status da regra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar status", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("status atualizado", nil))
}

// @Summary Remover regra
// @Description Remove uma regra de classificação
// @Tags Regras
// @Produce json
// @Param tenant-id header string true "Tenant ID"
// @Param id path string true "ID da regra"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /rules/{id} [delete]
func (c *RuleController) Delete(ctx *gin.Context) {
	if err := c.ruleRepo.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, classification.ErrRuleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "regra não encontrada", err.Error()))
			return
		}
		c.logger.Error("falha ao remover regra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover regra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("regra removida", nil))
}
