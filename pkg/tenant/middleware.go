package tenant

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeaderName é o cabeçalho que identifica o tenant da requisição
const HeaderName = "tenant-id"

// Middleware extrai o tenant ID do cabeçalho da requisição e o propaga pelo
// contexto. O tenant é opcional: sem cabeçalho, apenas as regras globais se
// aplicam ao documento.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetHeader(HeaderName)
		if tenantID != "" {
			c.Set("tenant_id", tenantID)
			c.Request = c.Request.WithContext(SetTenantIDContext(c.Request.Context(), tenantID))
		}
		c.Next()
	}
}

// RequireTenant exige o cabeçalho de tenant; usado nas rotas de administração
// de regras, onde toda operação é escopada a um tenant
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetHeader(HeaderName)
		if tenantID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    http.StatusBadRequest,
				"message": "Tenant ID não fornecido",
				"details": "O cabeçalho 'tenant-id' é obrigatório para esta operação",
			})
			return
		}
		c.Set("tenant_id", tenantID)
		c.Request = c.Request.WithContext(SetTenantIDContext(c.Request.Context(), tenantID))
		c.Next()
	}
}
