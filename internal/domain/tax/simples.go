package tax

import "fmt"

// SimplesResult é o resultado do cálculo do Simples Nacional de um mês
type SimplesResult struct {
	Bracket     int       `json:"bracket"`
	NominalRate float64   `json:"nominalRate"`
	TotalAmount float64   `json:"totalAmount"`
	Lines       []TaxLine `json:"lines"`
}

// SimplesBracket determina a faixa de faturamento: o índice do primeiro
// limite que a receita acumulada de 12 meses não excede. Receita acima do
// último limite permanece na última faixa.
func SimplesBracket(trailing12MonthRevenue float64, rt *RateTable) int {
	for i, threshold := range rt.SimplesThresholds {
		if trailing12MonthRevenue <= threshold {
			return i
		}
	}
	return len(rt.SimplesThresholds) - 1
}

// CalculateSimples calcula o valor unificado do Simples Nacional sobre a
// receita do mês e o redistribui entre os tributos constituintes conforme os
// pesos fixos da atividade. Cada parcela é arredondada individualmente; a
// soma das parcelas difere do total em no máximo um centavo.
func CalculateSimples(monthRevenue, trailing12MonthRevenue float64, activity Activity, rt *RateTable) (*SimplesResult, error) {
	rates, ok := rt.SimplesRates[activity]
	if !ok {
		return nil, fmt.Errorf("atividade desconhecida para o Simples Nacional: %q", activity)
	}

	bracket := SimplesBracket(trailing12MonthRevenue, rt)
	nominalRate := rates[bracket]
	totalAmount := lineAmount(monthRevenue, nominalRate)

	weights := rt.SimplesWeights[activity]
	lines := make([]TaxLine, 0, len(weights))
	for _, weight := range weights {
		lines = append(lines, TaxLine{
			Kind:        weight.Kind,
			Base:        monthRevenue,
			Rate:        nominalRate * weight.Fraction,
			Amount:      Round2(totalAmount * weight.Fraction),
			CSOSN:       "101",
			Description: fmt.Sprintf("Simples Nacional %s (faixa %d)", weight.Kind, bracket+1),
		})
	}

	return &SimplesResult{
		Bracket:     bracket,
		NominalRate: nominalRate,
		TotalAmount: totalAmount,
		Lines:       lines,
	}, nil
}
