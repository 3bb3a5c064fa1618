package classification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Operator define o operador de comparação de uma condição
type Operator string

const (
	OpEquals     Operator = "equals"
	OpContains   Operator = "contains"
	OpStartsWith Operator = "startsWith"
	OpEndsWith   Operator = "endsWith"
	OpGreater    Operator = "greater"
	OpLess       Operator = "less"
	OpBetween    Operator = "between"
)

// Condition é uma condição de uma regra de classificação. Value carrega o
// operando (texto ou número conforme o operador) e ValueEnd o limite superior
// do operador between.
type Condition struct {
	FieldPath string   `json:"fieldPath"`
	Operator  Operator `json:"operator"`
	Value     any      `json:"value"`
	ValueEnd  any      `json:"valueEnd,omitempty"`
}

// EntryType define a natureza do lançamento contábil
type EntryType string

const (
	EntryRevenue EntryType = "revenue"
	EntryExpense EntryType = "expense"
)

// ResultTemplate é o lançamento contábil alvo de uma regra. O memo pode conter
// o marcador {{issuerName}}, substituído na materialização do resultado.
type ResultTemplate struct {
	AccountCode   string    `json:"accountCode"`
	DebitAccount  string    `json:"debitAccount"`
	CreditAccount string    `json:"creditAccount"`
	CostCenter    string    `json:"costCenter,omitempty"`
	Memo          string    `json:"memo,omitempty"`
	EntryType     EntryType `json:"entryType"`
}

// Rule é uma regra de classificação contábil. TenantID vazio indica uma regra
// global, aplicável a todos os tenants.
type Rule struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	TenantID   string         `json:"tenantId,omitempty"`
	Conditions []Condition    `json:"conditions"`
	Result     ResultTemplate `json:"result"`
	Priority   int            `json:"priority"`
	Active     bool           `json:"active"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// NewRule cria uma nova regra de classificação
func NewRule(name, tenantID string, conditions []Condition, result ResultTemplate, priority int) (*Rule, error) {
	if name == "" {
		return nil, errors.New("nome da regra é obrigatório")
	}
	if len(conditions) == 0 {
		return nil, errors.New("regra deve possuir ao menos uma condição")
	}
	if result.AccountCode == "" {
		return nil, errors.New("conta contábil do resultado é obrigatória")
	}

	now := time.Now()
	return &Rule{
		ID:         uuid.New().String(),
		Name:       name,
		TenantID:   tenantID,
		Conditions: conditions,
		Result:     result,
		Priority:   priority,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Activate marca a regra como ativa
func (r *Rule) Activate() {
	r.Active = true
	r.UpdatedAt = time.Now()
}

// Deactivate marca a regra como inativa; regras inativas nunca casam
func (r *Rule) Deactivate() {
	r.Active = false
	r.UpdatedAt = time.Now()
}

// AppliesTo informa se a regra é visível para o tenant informado
func (r *Rule) AppliesTo(tenantID string) bool {
	return r.TenantID == "" || r.TenantID == tenantID
}
