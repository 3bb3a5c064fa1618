package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/contaflux/fiscal-engine/internal/domain/classification"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRuleRepository implementa a interface classification.Repository
// sobre o PostgreSQL
type PostgresRuleRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRuleRepository cria uma nova instância de PostgresRuleRepository
func NewPostgresRuleRepository(db *pgxpool.Pool) classification.Repository {
	return &PostgresRuleRepository{db: db}
}

// Create cria uma nova regra de classificação
func (r *PostgresRuleRepository) Create(ctx context.Context, rule *classification.Rule) error {
	conditions, result, err := marshalRule(rule)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO classification_rules
			(id, tenant_id, name, conditions, result, priority, active, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9)`,
		rule.ID, rule.TenantID, rule.Name, conditions, result,
		rule.Priority, rule.Active, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir regra: %w", err)
	}
	return nil
}

// FindByID busca uma regra pelo ID
func (r *PostgresRuleRepository) FindByID(ctx context.Context, id string) (*classification.Rule, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, COALESCE(tenant_id, ''), name, conditions, result, priority, active, created_at, updated_at
		FROM classification_rules
		WHERE id = $1`, id)

	rule, err := scanRule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, classification.ErrRuleNotFound
		}
		return nil, fmt.Errorf("falha ao buscar regra: %w", err)
	}
	return rule, nil
}

// ListForTenant retorna as regras globais e as do tenant em ordem canônica
// de criação; essa ordem é o critério de desempate do motor de regras
func (r *PostgresRuleRepository) ListForTenant(ctx context.Context, tenantID string) ([]*classification.Rule, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, COALESCE(tenant_id, ''), name, conditions, result, priority, active, created_at, updated_at
		FROM classification_rules
		WHERE tenant_id IS NULL OR tenant_id = $1
		ORDER BY created_at, id`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar regras: %w", err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// List lista as regras de um tenant com paginação
func (r *PostgresRuleRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*classification.Rule, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, COALESCE(tenant_id, ''), name, conditions, result, priority, active, created_at, updated_at
		FROM classification_rules
		WHERE tenant_id IS NULL OR tenant_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar regras: %w", err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// Update atualiza os dados de uma regra existente
func (r *PostgresRuleRepository) Update(ctx context.Context, rule *classification.Rule) error {
	conditions, result, err := marshalRule(rule)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE classification_rules
		SET name = $2, conditions = $3, result = $4, priority = $5, active = $6, updated_at = $7
		WHERE id = $1`,
		rule.ID, rule.Name, conditions, result, rule.Priority, rule.Active, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar regra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return classification.ErrRuleNotFound
	}
	return nil
}

// UpdateStatus ativa ou desativa uma regra
func (r *PostgresRuleRepository) UpdateStatus(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE classification_rules SET active = $2, updated_at = $3 WHERE id = $1`,
		id, active, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status da regra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return classification.ErrRuleNotFound
	}
	return nil
}

// Delete remove uma regra
func (r *PostgresRuleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM classification_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("falha ao remover regra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return classification.ErrRuleNotFound
	}
	return nil
}

func marshalRule(rule *classification.Rule) (conditions, result []byte, err error) {
	conditions, err = json.Marshal(rule.Conditions)
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao serializar condições: %w", err)
	}
	result, err = json.Marshal(rule.Result)
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao serializar resultado: %w", err)
	}
	return conditions, result, nil
}

func scanRule(row pgx.Row) (*classification.Rule, error) {
	var rule classification.Rule
	var conditions, result []byte

	err := row.Scan(&rule.ID, &rule.TenantID, &rule.Name, &conditions, &result,
		&rule.Priority, &rule.Active, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(conditions, &rule.Conditions); err != nil {
		return nil, fmt.Errorf("falha ao desserializar condições: %w", err)
	}
	if err := json.Unmarshal(result, &rule.Result); err != nil {
		return nil, fmt.Errorf("falha ao desserializar resultado: %w", err)
	}
	return &rule, nil
}

func scanRules(rows pgx.Rows) ([]*classification.Rule, error) {
	var rules []*classification.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer regras: %w", err)
	}
	return rules, nil
}
