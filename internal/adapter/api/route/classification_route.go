package route

import (
	"github.com/contaflux/fiscal-engine/internal/adapter/api/controller"
	"github.com/gin-gonic/gin"
)

// SetupClassificationRoutes configura as rotas do módulo de classificação
func SetupClassificationRoutes(router *gin.RouterGroup, classificationController *controller.ClassificationController) {
	classificationRouter := router.Group("/classification")
	{
		classificationRouter.POST("/classify", classificationController.Classify)
	}
}
