package classification

import (
	"testing"

	"github.com/contaflux/fiscal-engine/internal/domain/document"
)

func fuelDocument() *document.Document {
	return &document.Document{
		Type: document.Invoice,
		Issuer: document.Party{
			Name:    "Posto Estrela LTDA",
			TaxID:   "12345678000190",
			Address: &document.Address{UF: "SP"},
		},
		LineItems: []document.LineItem{
			{Description: "Gasolina comum", Quantity: 50, UnitPrice: 6, Total: 300},
		},
		Amounts: document.Amounts{Gross: 300, Net: 300},
	}
}

func mustRule(t *testing.T, name, tenantID string, priority int, conditions ...Condition) *Rule {
	t.Helper()
	rule, err := NewRule(name, tenantID, conditions, ResultTemplate{
		AccountCode:  "3.1.2.05",
		DebitAccount: "3.1.2.05",
		Memo:         "Compra de combustível - {{issuerName}}",
		EntryType:    EntryExpense,
	}, priority)
	if err != nil {
		t.Fatalf("falha ao criar regra %s: %v", name, err)
	}
	return rule
}

func TestEngineClassify(t *testing.T) {
	fuelCond := Condition{FieldPath: "issuer.name", Operator: OpContains, Value: "posto|combustivel"}
	amountCond := Condition{FieldPath: "amounts.net", Operator: OpGreater, Value: 100}

	t.Run("Deve vencer a regra de maior prioridade", func(t *testing.T) {
		low := mustRule(t, "combustivel-generica", "", 1, fuelCond)
		high := mustRule(t, "combustivel-acima-100", "", 10, fuelCond, amountCond)

		engine := NewEngine([]*Rule{low, high})
		winner, candidates := engine.Classify(fuelDocument(), "")
		if winner == nil || winner.Name != "combustivel-acima-100" {
			t.Fatalf("vencedora esperada combustivel-acima-100, obtida %+v", winner)
		}
		if len(candidates) != 1 || candidates[0].Name != "combustivel-generica" {
			t.Fatalf("candidatas incorretas: %+v", candidates)
		}
	})

	t.Run("Empate de prioridade preserva a ordem canônica", func(t *testing.T) {
		first := mustRule(t, "primeira", "", 5, fuelCond)
		second := mustRule(t, "segunda", "", 5, fuelCond)

		engine := NewEngine([]*Rule{first, second})
		winner, _ := engine.Classify(fuelDocument(), "")
		if winner.Name != "primeira" {
			t.Fatalf("empate deveria manter a primeira da lista canônica, obtida %s", winner.Name)
		}
	})

	t.Run("Resultado independe da ordem de iteração das regras", func(t *testing.T) {
		a := mustRule(t, "a", "", 3, fuelCond)
		b := mustRule(t, "b", "", 7, fuelCond)
		c := mustRule(t, "c", "", 5, fuelCond)

		for _, rules := range [][]*Rule{{a, b, c}, {c, a, b}, {b, c, a}} {
			winner, _ := NewEngine(rules).Classify(fuelDocument(), "")
			if winner.Name != "b" {
				t.Fatalf("vencedora deveria ser sempre b, obtida %s", winner.Name)
			}
		}
	})

	t.Run("Regra inativa nunca casa", func(t *testing.T) {
		rule := mustRule(t, "inativa", "", 10, fuelCond)
		rule.Deactivate()

		winner, _ := NewEngine([]*Rule{rule}).Classify(fuelDocument(), "")
		if winner != nil {
			t.Fatalf("regra inativa não deveria vencer: %+v", winner)
		}
	})

	t.Run("Regra de outro tenant não se aplica", func(t *testing.T) {
		global := mustRule(t, "global", "", 1, fuelCond)
		other := mustRule(t, "tenant-b", "tenant-b", 10, fuelCond)

		winner, _ := NewEngine([]*Rule{global, other}).Classify(fuelDocument(), "tenant-a")
		if winner == nil || winner.Name != "global" {
			t.Fatalf("apenas a regra global deveria se aplicar, obtida %+v", winner)
		}
	})

	t.Run("Regra sem condições nunca casa", func(t *testing.T) {
		rule := mustRule(t, "vazia", "", 10, fuelCond)
		rule.Conditions = nil

		winner, _ := NewEngine([]*Rule{rule}).Classify(fuelDocument(), "")
		if winner != nil {
			t.Fatal("regra sem condições não deveria casar")
		}
	})
}

func TestRuleConfidence(t *testing.T) {
	// escore bruto, não probabilidade: prioridade alta ultrapassa 1.0 e o
	// valor não é limitado
	if got := ruleConfidence(10); got != 0.95 {
		t.Fatalf("confiança esperada 0.95, obtida %v", got)
	}
	if got := ruleConfidence(20); got != 1.05 {
		t.Fatalf("confiança esperada 1.05 (sem clamp), obtida %v", got)
	}
}

func TestMaterializeRuleMemo(t *testing.T) {
	rule := mustRule(t, "memo", "", 1, Condition{FieldPath: "type", Operator: OpEquals, Value: "nfe"})
	result := materializeRule(rule, "Posto Estrela LTDA")
	want := "Compra de combustível - Posto Estrela LTDA"
	if result.Memo != want {
		t.Fatalf("memo esperado %q, obtido %q", want, result.Memo)
	}
}
