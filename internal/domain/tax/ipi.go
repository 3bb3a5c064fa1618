package tax

// CalculateIPI calcula o IPI de um item pelo código NCM. Código ausente da
// tabela significa ausência de linha (nil), não alíquota zero.
func CalculateIPI(base float64, ncm string, rt *RateTable) *TaxLine {
	rate, ok := rt.IPIByNCM[ncm]
	if !ok {
		return nil
	}

	return &TaxLine{
		Kind:        IPI,
		Base:        base,
		Rate:        rate,
		Amount:      lineAmount(base, rate),
		Description: "IPI NCM " + ncm,
	}
}
