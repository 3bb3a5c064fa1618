package repository

import (
	"context"
	"sync"

	"github.com/contaflux/fiscal-engine/internal/domain/classification"
)

// MemoryRuleRepository implementa classification.Repository em memória; é
// usado nos testes e quando o serviço roda sem banco de dados configurado
type MemoryRuleRepository struct {
	mu    sync.RWMutex
	rules []*classification.Rule
}

// NewMemoryRuleRepository cria um repositório em memória, opcionalmente
// semeado com regras iniciais
func NewMemoryRuleRepository(seed ...*classification.Rule) *MemoryRuleRepository {
	return &MemoryRuleRepository{rules: seed}
}

// Create cria uma nova regra
func (r *MemoryRuleRepository) Create(ctx context.Context, rule *classification.Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule)
	return nil
}

// FindByID busca uma regra pelo ID
func (r *MemoryRuleRepository) FindByID(ctx context.Context, id string) (*classification.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rule := range r.rules {
		if rule.ID == id {
			return rule, nil
		}
	}
	return nil, classification.ErrRuleNotFound
}

// ListForTenant retorna as regras globais e as do tenant na ordem de criação
func (r *MemoryRuleRepository) ListForTenant(ctx context.Context, tenantID string) ([]*classification.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*classification.Rule
	for _, rule := range r.rules {
		if rule.AppliesTo(tenantID) {
			result = append(result, rule)
		}
	}
	return result, nil
}

// List lista as regras de um tenant com paginação
func (r *MemoryRuleRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*classification.Rule, error) {
	applicable, _ := r.ListForTenant(ctx, tenantID)
	if offset >= len(applicable) {
		return nil, nil
	}
	end := offset + limit
	if end > len(applicable) {
		end = len(applicable)
	}
	return applicable[offset:end], nil
}

// Update atualiza uma regra existente
func (r *MemoryRuleRepository) Update(ctx context.Context, rule *classification.Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.rules {
		if existing.ID == rule.ID {
			r.rules[i] = rule
			return nil
		}
	}
	return classification.ErrRuleNotFound
}

// UpdateStatus ativa ou desativa uma regra
func (r *MemoryRuleRepository) UpdateStatus(ctx context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rule := range r.rules {
		if rule.ID == id {
			if active {
				rule.Activate()
			} else {
				rule.Deactivate()
			}
			return nil
		}
	}
	return classification.ErrRuleNotFound
}

// Delete remove uma regra
func (r *MemoryRuleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rule := range r.rules {
		if rule.ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return nil
		}
	}
	return classification.ErrRuleNotFound
}
