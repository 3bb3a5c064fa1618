package classification

import (
	"context"
	"fmt"

	"github.com/contaflux/fiscal-engine/internal/domain/document"
	"github.com/contaflux/fiscal-engine/pkg/logger"
)

const maxAlternatives = 3

// Output é a saída completa da classificação de um documento
type Output struct {
	Classification Result          `json:"classification"`
	Confidence     float64         `json:"confidence"`
	RulesApplied   []string        `json:"rulesApplied"`
	Heuristic      HeuristicResult `json:"heuristic"`
	Alternatives   []Result        `json:"alternatives"`
}

// Service orquestra o motor de regras, o classificador heurístico e o
// sugeridor de contas
type Service struct {
	rules     Repository
	heuristic HeuristicClassifier
	suggester *Suggester
	logger    logger.Logger
}

// NewService cria o serviço de classificação
func NewService(rules Repository, heuristic HeuristicClassifier, suggester *Suggester, log logger.Logger) *Service {
	return &Service{
		rules:     rules,
		heuristic: heuristic,
		suggester: suggester,
		logger:    log,
	}
}

// Classify classifica um documento: o motor de regras decide primeiro e a
// heurística entra como fallback e como fonte de alternativas. A computação é
// tudo-ou-nada: qualquer pânico interno vira erro genérico, nunca um
// resultado parcial.
func (s *Service) Classify(ctx context.Context, doc *document.Document, tenantID string) (out *Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("falha inesperada na classificação", "panic", r)
			out = nil
			err = fmt.Errorf("falha interna ao classificar o documento")
		}
	}()

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	rules, err := s.rules.ListForTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar regras de classificação: %w", err)
	}

	engine := NewEngine(rules)
	winner, candidates := engine.Classify(doc, tenantID)
	heuristic := s.heuristic.Classify(doc)

	if winner == nil {
		result := s.suggester.suggestResult(heuristic.Label, doc.Issuer.Name, heuristic.Confidence)
		result.Alternatives = s.heuristicAlternatives(heuristic, doc.Issuer.Name, maxAlternatives)
		return &Output{
			Classification: result,
			Confidence:     result.Confidence,
			RulesApplied:   []string{},
			Heuristic:      heuristic,
			Alternatives:   result.Alternatives,
		}, nil
	}

	result := materializeRule(winner, doc.Issuer.Name)

	// até 2 regras vice-campeãs, completadas com alternativas heurísticas
	// quando não somam 3
	var alternatives []Result
	for i, candidate := range candidates {
		if i == 2 {
			break
		}
		alternatives = append(alternatives, materializeRule(candidate, doc.Issuer.Name))
	}
	if len(alternatives) < maxAlternatives {
		alternatives = append(alternatives,
			s.heuristicAlternatives(heuristic, doc.Issuer.Name, maxAlternatives-len(alternatives))...)
	}
	result.Alternatives = alternatives

	return &Output{
		Classification: result,
		Confidence:     result.Confidence,
		RulesApplied:   []string{winner.Name},
		Heuristic:      heuristic,
		Alternatives:   alternatives,
	}, nil
}

func (s *Service) heuristicAlternatives(heuristic HeuristicResult, issuerName string, limit int) []Result {
	var results []Result
	for _, alt := range heuristic.Alternatives {
		if len(results) == limit {
			break
		}
		results = append(results, s.suggester.suggestResult(alt.Label, issuerName, alt.Confidence))
	}
	return results
}
