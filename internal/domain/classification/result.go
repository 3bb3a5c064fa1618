package classification

import "strings"

// Result é o lançamento contábil produzido pela classificação. Confidence é
// um escore bruto: para regras vale 0.85 + prioridade/100 e pode ultrapassar
// 1.0 em regras de prioridade alta; o valor não é limitado de propósito.
type Result struct {
	AccountCode   string    `json:"accountCode"`
	DebitAccount  string    `json:"debitAccount,omitempty"`
	CreditAccount string    `json:"creditAccount,omitempty"`
	CostCenter    string    `json:"costCenter,omitempty"`
	Memo          string    `json:"memo,omitempty"`
	EntryType     EntryType `json:"entryType,omitempty"`
	Confidence    float64   `json:"confidence"`
	Sources       []string  `json:"sources"`
	Alternatives  []Result  `json:"alternatives,omitempty"`
}

// ruleConfidence calcula o escore de confiança de uma regra vencedora
func ruleConfidence(priority int) float64 {
	return 0.85 + float64(priority)/100
}

// materializeRule constrói o resultado a partir do template da regra,
// substituindo o marcador {{issuerName}} pelo nome do emitente
func materializeRule(rule *Rule, issuerName string) Result {
	return Result{
		AccountCode:   rule.Result.AccountCode,
		DebitAccount:  rule.Result.DebitAccount,
		CreditAccount: rule.Result.CreditAccount,
		CostCenter:    rule.Result.CostCenter,
		Memo:          strings.ReplaceAll(rule.Result.Memo, "{{issuerName}}", issuerName),
		EntryType:     rule.Result.EntryType,
		Confidence:    ruleConfidence(rule.Priority),
		Sources:       []string{rule.Name},
	}
}
