package route

import (
	"github.com/contaflux/fiscal-engine/internal/adapter/api/controller"
	"github.com/gin-gonic/gin"
)

// SetupTaxRoutes configura as rotas do módulo de impostos
func SetupTaxRoutes(router *gin.RouterGroup, taxController *controller.TaxController) {
	taxRouter := router.Group("/tax")
	{
		taxRouter.POST("/compute", taxController.Compute)
	}
}
