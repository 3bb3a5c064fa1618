package tax

// Activity define a atividade econômica para fins de Simples Nacional
type Activity string

const (
	ActivityCommerce Activity = "comercio"
	ActivityIndustry Activity = "industria"
	ActivityServices Activity = "servicos"
)

// WithholdingRates agrupa as alíquotas de retenção de uma categoria de serviço
type WithholdingRates struct {
	IRRF float64 `yaml:"irrf"`
	INSS float64 `yaml:"inss"`
}

// SimplesWeight é a fração de redistribuição de um tributo constituinte do
// Simples Nacional; as frações de uma atividade somam 1.0
type SimplesWeight struct {
	Kind     Kind
	Fraction float64
}

// RateTable agrupa todas as tabelas de alíquotas. É carregada uma única vez
// na inicialização e nunca é modificada depois; todo cálculo é função pura de
// (documento, tabelas, opções).
type RateTable struct {
	// ICMS
	ICMSIntra        map[string]float64
	ICMSIntraDefault float64
	ICMSInterHigh    float64
	ICMSInterLow     float64
	HighDevStates    map[string]bool
	FCPRate          float64

	// PIS/COFINS
	PISRate    float64
	COFINSRate float64

	// ISS
	ISSMunicipal       map[string]float64
	ISSDefault         float64
	ISSServiceOverride map[string]float64

	// IPI por NCM
	IPIByNCM map[string]float64

	// Retenções por categoria de serviço
	Withholding map[string]WithholdingRates

	// Simples Nacional
	SimplesThresholds []float64
	SimplesRates      map[Activity][]float64
	SimplesWeights    map[Activity][]SimplesWeight
}

// DefaultRateTable retorna as tabelas embutidas de alíquotas
func DefaultRateTable() *RateTable {
	return &RateTable{
		ICMSIntra: map[string]float64{
			"SP": 18, "RJ": 20, "MG": 18, "RS": 18,
			"PR": 19, "SC": 17, "BA": 19, "PE": 18,
		},
		ICMSIntraDefault: 18,
		ICMSInterHigh:    12,
		ICMSInterLow:     7,
		HighDevStates: map[string]bool{
			"SP": true, "RJ": true, "MG": true,
			"PR": true, "RS": true, "SC": true,
		},
		FCPRate: 1,

		PISRate:    1.65,
		COFINSRate: 7.6,

		ISSMunicipal: map[string]float64{
			"3550308": 5,   // São Paulo
			"3304557": 5,   // Rio de Janeiro
			"3106200": 5,   // Belo Horizonte
			"4106902": 4,   // Curitiba
			"4314902": 4.5, // Porto Alegre
		},
		ISSDefault: 5,
		ISSServiceOverride: map[string]float64{
			"14.01": 2,   // serviços advocatícios
			"4.01":  3,   // serviços médicos
			"7.01":  2.5, // serviços de engenharia
		},

		IPIByNCM: map[string]float64{
			"22030000": 6,   // cervejas
			"87032310": 25,  // automóveis
			"33030010": 42,  // perfumes
			"24022000": 300, // cigarros
			"39269090": 15,  // plásticos diversos
		},

		Withholding: map[string]WithholdingRates{
			"servicos_profissionais": {IRRF: 1.5, INSS: 11},
			"limpeza_conservacao":    {IRRF: 1.0, INSS: 11},
			"vigilancia":             {IRRF: 1.0, INSS: 11},
			"transporte_cargas":      {IRRF: 1.5, INSS: 11},
		},

		SimplesThresholds: []float64{
			180000, 360000, 720000, 1080000,
			1800000, 2400000, 3600000, 4800000,
		},
		SimplesRates: map[Activity][]float64{
			ActivityCommerce: {4.0, 7.3, 9.5, 10.7, 14.3, 19.0, 21.0, 33.0},
			ActivityIndustry: {4.5, 7.8, 10.0, 11.2, 14.7, 19.5, 22.0, 30.0},
			ActivityServices: {6.0, 11.2, 13.5, 16.0, 21.0, 22.0, 23.0, 30.5},
		},
		SimplesWeights: map[Activity][]SimplesWeight{
			ActivityCommerce: {
				{Kind: IRPJ, Fraction: 0.25},
				{Kind: CSLL, Fraction: 0.15},
				{Kind: PIS, Fraction: 0.15},
				{Kind: COFINS, Fraction: 0.15},
				{Kind: ICMS, Fraction: 0.30},
			},
			ActivityIndustry: {
				{Kind: IRPJ, Fraction: 0.20},
				{Kind: CSLL, Fraction: 0.15},
				{Kind: PIS, Fraction: 0.10},
				{Kind: COFINS, Fraction: 0.15},
				{Kind: ICMS, Fraction: 0.25},
				{Kind: IPI, Fraction: 0.15},
			},
			ActivityServices: {
				{Kind: IRPJ, Fraction: 0.20},
				{Kind: CSLL, Fraction: 0.15},
				{Kind: PIS, Fraction: 0.15},
				{Kind: COFINS, Fraction: 0.20},
				{Kind: ISS, Fraction: 0.30},
			},
		},
	}
}

// ICMSIntraRate retorna a alíquota interna da UF, com a alíquota padrão
// quando a UF não está na tabela
func (rt *RateTable) ICMSIntraRate(uf string) float64 {
	if rate, ok := rt.ICMSIntra[uf]; ok {
		return rate
	}
	return rt.ICMSIntraDefault
}

// ICMSInterRate retorna a alíquota interestadual conforme a UF de origem
func (rt *RateTable) ICMSInterRate(originUF string) float64 {
	if rt.HighDevStates[originUF] {
		return rt.ICMSInterHigh
	}
	return rt.ICMSInterLow
}
