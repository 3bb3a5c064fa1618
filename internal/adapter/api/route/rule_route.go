package route

import (
	"github.com/contaflux/fiscal-engine/internal/adapter/api/controller"
	"github.com/contaflux/fiscal-engine/pkg/tenant"
	"github.com/gin-gonic/gin"
)

// SetupRuleRoutes configura as rotas de administração de regras de
// classificação; todas exigem o cabeçalho de tenant
func SetupRuleRoutes(router *gin.RouterGroup, ruleController *controller.RuleController) {
	ruleRouter := router.Group("/rules")
	ruleRouter.Use(tenant.RequireTenant())
	{
		ruleRouter.POST("", ruleController.Create)
		ruleRouter.GET("", ruleController.List)
		ruleRouter.GET("/:id", ruleController.GetByID)
		ruleRouter.PUT("/:id", ruleController.Update)
		ruleRouter.PATCH("/:id/status/:status", ruleController.UpdateStatus)
		ruleRouter.DELETE("/:id", ruleController.Delete)
	}
}
