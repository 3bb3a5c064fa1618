package classification

import (
	"context"
	"errors"
)

// ErrRuleNotFound ocorre quando uma regra não é encontrada
var ErrRuleNotFound = errors.New("regra de classificação não encontrada")

// Repository define a interface para operações de repositório de regras de
// classificação
type Repository interface {
	// Create cria uma nova regra
	Create(ctx context.Context, rule *Rule) error

	// FindByID busca uma regra pelo ID
	FindByID(ctx context.Context, id string) (*Rule, error)

	// ListForTenant retorna, em ordem canônica (criação), as regras globais
	// e as regras do tenant informado; tenant vazio retorna só as globais
	ListForTenant(ctx context.Context, tenantID string) ([]*Rule, error)

	// List lista as regras de um tenant com paginação
	List(ctx context.Context, tenantID string, limit, offset int) ([]*Rule, error)

	// Update atualiza os dados de uma regra existente
	Update(ctx context.Context, rule *Rule) error

	// UpdateStatus ativa ou desativa uma regra
	UpdateStatus(ctx context.Context, id string, active bool) error

	// Delete remove uma regra
	Delete(ctx context.Context, id string) error
}
