package tax

// CalculateICMS calcula o ICMS de uma base. Operação interna usa a alíquota
// da UF (padrão 18% quando ausente da tabela); interestadual usa 12% quando a
// origem pertence ao conjunto de estados de alta industrialização, senão 7%.
func CalculateICMS(base float64, originUF, destUF string, rt *RateTable) TaxLine {
	var rate float64
	var description string

	if destUF == "" || originUF == destUF {
		rate = rt.ICMSIntraRate(originUF)
		description = "ICMS operação interna"
	} else {
		rate = rt.ICMSInterRate(originUF)
		description = "ICMS operação interestadual"
	}

	return TaxLine{
		Kind:        ICMS,
		Base:        base,
		Rate:        rate,
		Amount:      lineAmount(base, rate),
		CST:         "00",
		Description: description,
	}
}

// CalculateDIFAL calcula o diferencial de alíquota e o FCP de uma venda
// interestadual a consumidor final. A alíquota do DIFAL é a diferença entre
// a alíquota interna do destino e a interestadual da origem; o FCP é fixo e
// incide sobre a mesma base.
func CalculateDIFAL(base float64, originUF, destUF string, rt *RateTable) []TaxLine {
	difalRate := rt.ICMSIntraRate(destUF) - rt.ICMSInterRate(originUF)

	return []TaxLine{
		{
			Kind:        ICMSDifal,
			Base:        base,
			Rate:        difalRate,
			Amount:      lineAmount(base, difalRate),
			Description: "DIFAL venda interestadual a consumidor final",
		},
		{
			Kind:        FCP,
			Base:        base,
			Rate:        rt.FCPRate,
			Amount:      lineAmount(base, rt.FCPRate),
			Description: "Fundo de Combate à Pobreza",
		},
	}
}
