package classification

import (
	"context"
	"testing"

	"github.com/contaflux/fiscal-engine/internal/domain/document"
	"github.com/contaflux/fiscal-engine/pkg/logger"
)

// fakeRuleRepository devolve uma lista canônica fixa de regras
type fakeRuleRepository struct {
	rules []*Rule
	err   error
}

func (f *fakeRuleRepository) Create(ctx context.Context, rule *Rule) error  { return nil }
func (f *fakeRuleRepository) FindByID(ctx context.Context, id string) (*Rule, error) {
	return nil, ErrRuleNotFound
}
func (f *fakeRuleRepository) ListForTenant(ctx context.Context, tenantID string) ([]*Rule, error) {
	return f.rules, f.err
}
func (f *fakeRuleRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*Rule, error) {
	return f.rules, nil
}
func (f *fakeRuleRepository) Update(ctx context.Context, rule *Rule) error { return nil }
func (f *fakeRuleRepository) UpdateStatus(ctx context.Context, id string, active bool) error {
	return nil
}
func (f *fakeRuleRepository) Delete(ctx context.Context, id string) error { return nil }

func newTestService(rules ...*Rule) *Service {
	return NewService(
		&fakeRuleRepository{rules: rules},
		NewKeywordClassifier(DefaultHeuristicConfig()),
		NewSuggester(),
		logger.NewLogger(),
	)
}

func TestServiceClassify(t *testing.T) {
	ctx := context.Background()
	fuelCond := Condition{FieldPath: "issuer.name", Operator: OpContains, Value: "posto|gasolina"}

	t.Run("Regra vencedora domina a classificação", func(t *testing.T) {
		rule := mustRule(t, "combustivel-posto", "", 10, fuelCond)

		out, err := newTestService(rule).Classify(ctx, fuelDocument(), "")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if out.Classification.AccountCode != "3.1.2.05" {
			t.Fatalf("conta esperada 3.1.2.05, obtida %s", out.Classification.AccountCode)
		}
		if out.Confidence != 0.95 {
			t.Fatalf("confiança esperada 0.95, obtida %v", out.Confidence)
		}
		if len(out.RulesApplied) != 1 || out.RulesApplied[0] != "combustivel-posto" {
			t.Fatalf("rulesApplied incorreto: %v", out.RulesApplied)
		}
		if out.Classification.Memo != "Compra de combustível - Posto Estrela LTDA" {
			t.Fatalf("memo não interpolado: %q", out.Classification.Memo)
		}
	})

	t.Run("Alternativas são completadas com heurística até o máximo de 3", func(t *testing.T) {
		winner := mustRule(t, "vencedora", "", 10, fuelCond)
		runnerUp := mustRule(t, "vice", "", 5, fuelCond)

		out, err := newTestService(winner, runnerUp).Classify(ctx, fuelDocument(), "")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(out.Alternatives) != 3 {
			t.Fatalf("esperadas 3 alternativas, obtidas %d", len(out.Alternatives))
		}
		if out.Alternatives[0].Sources[0] != "vice" {
			t.Fatalf("primeira alternativa deveria ser a regra vice, obtida %v", out.Alternatives[0].Sources)
		}
		if out.Alternatives[1].Sources[0] != "heuristic:frete" {
			t.Fatalf("alternativa heurística esperada, obtida %v", out.Alternatives[1].Sources)
		}
	})

	t.Run("Sem regra casando a heurística classifica", func(t *testing.T) {
		out, err := newTestService().Classify(ctx, fuelDocument(), "")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(out.RulesApplied) != 0 {
			t.Fatalf("nenhuma regra deveria ter sido aplicada: %v", out.RulesApplied)
		}
		if out.Classification.Sources[0] != "heuristic:combustivel" {
			t.Fatalf("origem heurística esperada, obtida %v", out.Classification.Sources)
		}
		if out.Classification.Confidence != 0.92 {
			t.Fatalf("confiança heurística esperada 0.92, obtida %v", out.Classification.Confidence)
		}
	})

	t.Run("Documento inválido é rejeitado antes da computação", func(t *testing.T) {
		doc := &document.Document{Type: document.Invoice}
		_, err := newTestService().Classify(ctx, doc, "")
		if err == nil {
			t.Fatal("esperado erro de validação")
		}
		if _, ok := err.(*document.ValidationError); !ok {
			t.Fatalf("esperado *document.ValidationError, obtido %T", err)
		}
	})
}
