package tax

// CalculatePISCOFINS calcula PIS e COFINS sobre a base. No regime cumulativo
// as alíquotas incidem sobre a base cheia; no não-cumulativo a base é
// reduzida pelos custos dedutíveis, com piso em zero.
func CalculatePISCOFINS(base, deductibleCosts float64, cumulative bool, rt *RateTable) []TaxLine {
	effectiveBase := base
	regime := "regime cumulativo"
	if !cumulative {
		effectiveBase = base - deductibleCosts
		if effectiveBase < 0 {
			effectiveBase = 0
		}
		regime = "regime não-cumulativo"
	}

	return []TaxLine{
		{
			Kind:        PIS,
			Base:        effectiveBase,
			Rate:        rt.PISRate,
			Amount:      lineAmount(effectiveBase, rt.PISRate),
			Description: "PIS " + regime,
		},
		{
			Kind:        COFINS,
			Base:        effectiveBase,
			Rate:        rt.COFINSRate,
			Amount:      lineAmount(effectiveBase, rt.COFINSRate),
			Description: "COFINS " + regime,
		},
	}
}
