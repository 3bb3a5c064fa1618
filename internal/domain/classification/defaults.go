package classification

// DefaultRules retorna o conjunto embutido de regras globais, usado para
// semear o repositório em memória quando o serviço roda sem banco de dados
func DefaultRules() []*Rule {
	seeds := []struct {
		name       string
		priority   int
		conditions []Condition
		result     ResultTemplate
	}{
		{
			name:     "venda-de-mercadorias",
			priority: 5,
			conditions: []Condition{
				{FieldPath: "type", Operator: OpEquals, Value: "nfe"},
				{FieldPath: "amounts.net", Operator: OpGreater, Value: 0},
			},
			result: ResultTemplate{
				AccountCode:   "1.1.1.01",
				DebitAccount:  "1.1.2.01",
				CreditAccount: "3.1.1.01",
				Memo:          "Venda de mercadorias - {{issuerName}}",
				EntryType:     EntryRevenue,
			},
		},
		{
			name:     "compra-de-combustivel",
			priority: 10,
			conditions: []Condition{
				{FieldPath: "lineItems.description", Operator: OpContains, Value: "combustivel|combustível|gasolina|etanol|diesel"},
			},
			result: ResultTemplate{
				AccountCode:   "3.1.2.05",
				DebitAccount:  "3.1.2.05",
				CreditAccount: "1.1.1.01",
				Memo:          "Compra de combustível - {{issuerName}}",
				EntryType:     EntryExpense,
			},
		},
		{
			name:     "servicos-tomados",
			priority: 8,
			conditions: []Condition{
				{FieldPath: "type", Operator: OpEquals, Value: "nfse"},
			},
			result: ResultTemplate{
				AccountCode:   "3.1.2.03",
				DebitAccount:  "3.1.2.03",
				CreditAccount: "1.1.1.01",
				Memo:          "Serviços tomados - {{issuerName}}",
				EntryType:     EntryExpense,
			},
		},
	}

	rules := make([]*Rule, 0, len(seeds))
	for _, seed := range seeds {
		rule, err := NewRule(seed.name, "", seed.conditions, seed.result, seed.priority)
		if err != nil {
			// regras embutidas são sempre válidas
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}
