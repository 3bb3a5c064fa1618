package dto

import (
	"time"

	"github.com/contaflux/fiscal-engine/internal/domain/classification"
)

// ConditionRequest representa uma condição de regra de classificação
type ConditionRequest struct {
	FieldPath string `json:"fieldPath" binding:"required"`
	Operator  string `json:"operator" binding:"required"`
	Value     any    `json:"value"`
	ValueEnd  any    `json:"valueEnd,omitempty"`
}

// RuleResultRequest representa o lançamento contábil alvo da regra
type RuleResultRequest struct {
	AccountCode   string `json:"accountCode" binding:"required"`
	DebitAccount  string `json:"debitAccount,omitempty"`
	CreditAccount string `json:"creditAccount,omitempty"`
	CostCenter    string `json:"costCenter,omitempty"`
	Memo          string `json:"memo,omitempty"`
	EntryType     string `json:"entryType" binding:"required,oneof=revenue expense"`
}

// RuleRequest representa os dados para criar/atualizar uma regra
type RuleRequest struct {
	Name       string             `json:"name" binding:"required"`
	Conditions []ConditionRequest `json:"conditions" binding:"required,min=1"`
	Result     RuleResultRequest  `json:"result" binding:"required"`
	Priority   int                `json:"priority"`
}

// ToConditions converte as condições da requisição para o domínio
func (r *RuleRequest) ToConditions() []classification.Condition {
	conditions := make([]classification.Condition, 0, len(r.Conditions))
	for _, cond := range r.Conditions {
		conditions = append(conditions, classification.Condition{
			FieldPath: cond.FieldPath,
			Operator:  classification.Operator(cond.Operator),
			Value:     cond.Value,
			ValueEnd:  cond.ValueEnd,
		})
	}
	return conditions
}

// ToResultTemplate converte o lançamento alvo da requisição para o domínio
func (r *RuleRequest) ToResultTemplate() classification.ResultTemplate {
	return classification.ResultTemplate{
		AccountCode:   r.Result.AccountCode,
		DebitAccount:  r.Result.DebitAccount,
		CreditAccount: r.Result.CreditAccount,
		CostCenter:    r.Result.CostCenter,
		Memo:          r.Result.Memo,
		EntryType:     classification.EntryType(r.Result.EntryType),
	}
}

// RuleResponse representa a resposta com dados de uma regra
type RuleResponse struct {
	ID         string                        `json:"id"`
	Name       string                        `json:"name"`
	TenantID   string                        `json:"tenantId,omitempty"`
	Conditions []classification.Condition    `json:"conditions"`
	Result     classification.ResultTemplate `json:"result"`
	Priority   int                           `json:"priority"`
	Active     bool                          `json:"active"`
	CreatedAt  time.Time                     `json:"createdAt"`
	UpdatedAt  time.Time                     `json:"updatedAt"`
}

// NewRuleResponse converte uma regra do domínio em resposta da API
func NewRuleResponse(rule *classification.Rule) RuleResponse {
	return RuleResponse{
		ID:         rule.ID,
		Name:       rule.Name,
		TenantID:   rule.TenantID,
		Conditions: rule.Conditions,
		Result:     rule.Result,
		Priority:   rule.Priority,
		Active:     rule.Active,
		CreatedAt:  rule.CreatedAt,
		UpdatedAt:  rule.UpdatedAt,
	}
}

// NewRuleListResponse converte uma lista de regras em respostas da API
func NewRuleListResponse(rules []*classification.Rule) []RuleResponse {
	responses := make([]RuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, NewRuleResponse(rule))
	}
	return responses
}
