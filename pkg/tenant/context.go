package tenant

import "context"

type contextKey string

const tenantIDKey contextKey = "tenant_id"

// SetTenantIDContext define o tenant ID no contexto da requisição
func SetTenantIDContext(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// GetTenantIDFromContext obtém o tenant ID do contexto; retorna vazio quando
// a requisição não identifica um tenant
func GetTenantIDFromContext(ctx context.Context) string {
	if tenantID, ok := ctx.Value(tenantIDKey).(string); ok {
		return tenantID
	}
	return ""
}

// GetTenantID obtém o tenant ID de um contexto do Gin, sem acoplar este
// pacote ao gin
func GetTenantID(c interface{ GetString(string) string }) string {
	return c.GetString("tenant_id")
}
