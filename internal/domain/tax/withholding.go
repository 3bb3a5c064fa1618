package tax

// CalculateWithholdings calcula as retenções de IRRF e INSS pela categoria
// de serviço. Categoria desconhecida significa ausência de linhas (nil), não
// retenção zero.
func CalculateWithholdings(base float64, serviceCategory string, rt *RateTable) []TaxLine {
	rates, ok := rt.Withholding[serviceCategory]
	if !ok {
		return nil
	}

	return []TaxLine{
		{
			Kind:        IRRF,
			Base:        base,
			Rate:        rates.IRRF,
			Amount:      lineAmount(base, rates.IRRF),
			Description: "IRRF retido " + serviceCategory,
		},
		{
			Kind:        INSS,
			Base:        base,
			Rate:        rates.INSS,
			Amount:      lineAmount(base, rates.INSS),
			Description: "INSS retido " + serviceCategory,
		},
	}
}
