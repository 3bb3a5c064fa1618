package tax

// CalculateISS calcula o ISS de um documento de serviço. A alíquota vem do
// município (padrão 5% quando ausente), mas o código de serviço, quando
// presente na tabela de exceções, sobrepõe a alíquota municipal
// incondicionalmente.
func CalculateISS(base float64, municipalityCode, serviceCode string, rt *RateTable) TaxLine {
	rate, ok := rt.ISSMunicipal[municipalityCode]
	if !ok {
		rate = rt.ISSDefault
	}
	if override, ok := rt.ISSServiceOverride[serviceCode]; ok {
		rate = override
	}

	line := TaxLine{
		Kind:        ISS,
		Base:        base,
		Rate:        rate,
		Amount:      lineAmount(base, rate),
		Description: "ISS sobre serviços",
	}
	if serviceCode != "" {
		line.Description = "ISS serviço " + serviceCode
	}
	return line
}
