package classification

import (
	"sort"

	"github.com/contaflux/fiscal-engine/internal/domain/document"
)

// Engine mantém o conjunto canônico de regras de classificação. A ordem da
// lista é o critério de desempate entre regras de mesma prioridade.
type Engine struct {
	rules []*Rule
}

// NewEngine cria um motor de regras sobre a lista canônica informada
func NewEngine(rules []*Rule) *Engine {
	return &Engine{rules: rules}
}

// Match filtra as regras ativas, visíveis ao tenant e cujas condições são
// todas verdadeiras para o documento, ordenadas por prioridade decrescente.
// A ordenação é estável: empate de prioridade preserva a ordem canônica.
// Uma regra sem condições nunca casa.
func (e *Engine) Match(doc *document.Document, tenantID string) []*Rule {
	fields := doc.Fields()

	var matches []*Rule
	for _, rule := range e.rules {
		if !rule.Active || !rule.AppliesTo(tenantID) || len(rule.Conditions) == 0 {
			continue
		}
		if matchesAll(fields, rule.Conditions) {
			matches = append(matches, rule)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Priority > matches[j].Priority
	})
	return matches
}

// Classify retorna a regra vencedora (maior prioridade) e as demais
// candidatas em ordem; vencedora nil indica que nenhuma regra casou
func (e *Engine) Classify(doc *document.Document, tenantID string) (winner *Rule, candidates []*Rule) {
	matches := e.Match(doc, tenantID)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], matches[1:]
}

func matchesAll(fields map[string]any, conditions []Condition) bool {
	for _, cond := range conditions {
		if !EvaluateCondition(fields, cond) {
			return false
		}
	}
	return true
}
