package classification

import "strings"

// AccountSuggestion é a sugestão de conta contábil derivada de um rótulo
// heurístico
type AccountSuggestion struct {
	Account    string  `json:"account"`
	Confidence float64 `json:"confidence"`
	Memo       string  `json:"memo"`
}

type accountEntry struct {
	account    string
	confidence float64
	memo       string
	entryType  EntryType
}

// Suggester mapeia rótulos heurísticos para contas contábeis sugeridas
type Suggester struct {
	table map[string]accountEntry
}

// NewSuggester cria um sugeridor com a tabela embutida de contas
func NewSuggester() *Suggester {
	return &Suggester{table: map[string]accountEntry{
		"combustivel": {
			account:    "3.1.2.05",
			confidence: 0.90,
			memo:       "Combustíveis e lubrificantes - {{issuerName}}",
			entryType:  EntryExpense,
		},
		"energia_eletrica": {
			account:    "3.1.2.10",
			confidence: 0.90,
			memo:       "Energia elétrica - {{issuerName}}",
			entryType:  EntryExpense,
		},
		"telecomunicacoes": {
			account:    "3.1.2.11",
			confidence: 0.88,
			memo:       "Telefonia e internet - {{issuerName}}",
			entryType:  EntryExpense,
		},
		"aluguel": {
			account:    "3.1.2.01",
			confidence: 0.88,
			memo:       "Aluguéis e condomínios - {{issuerName}}",
			entryType:  EntryExpense,
		},
		"frete": {
			account:    "3.1.2.07",
			confidence: 0.85,
			memo:       "Fretes e carretos - {{issuerName}}",
			entryType:  EntryExpense,
		},
		"material_escritorio": {
			account:    "3.1.2.09",
			confidence: 0.82,
			memo:       "Material de expediente - {{issuerName}}",
			entryType:  EntryExpense,
		},
		"servicos_profissionais": {
			account:    "3.1.2.03",
			confidence: 0.85,
			memo:       "Serviços profissionais - {{issuerName}}",
			entryType:  EntryExpense,
		},
	}}
}

// Suggest retorna a conta sugerida para o rótulo; rótulo desconhecido cai na
// conta "unclassified" com confiança baixa
func (s *Suggester) Suggest(label, issuerName string) AccountSuggestion {
	entry, ok := s.table[label]
	if !ok {
		return AccountSuggestion{
			Account:    "unclassified",
			Confidence: 0.30,
			Memo:       "Despesa não classificada - " + issuerName,
		}
	}
	return AccountSuggestion{
		Account:    entry.account,
		Confidence: entry.confidence,
		Memo:       strings.ReplaceAll(entry.memo, "{{issuerName}}", issuerName),
	}
}

// suggestResult materializa a sugestão como um resultado de classificação
// com origem heurística
func (s *Suggester) suggestResult(label, issuerName string, confidence float64) Result {
	suggestion := s.Suggest(label, issuerName)
	entryType := EntryExpense
	if entry, ok := s.table[label]; ok {
		entryType = entry.entryType
	}
	if confidence == 0 {
		confidence = suggestion.Confidence
	}
	return Result{
		AccountCode: suggestion.Account,
		Memo:        suggestion.Memo,
		EntryType:   entryType,
		Confidence:  confidence,
		Sources:     []string{"heuristic:" + label},
	}
}
