package tax

// Kind identifica o tributo de uma linha de imposto
type Kind string

const (
	ICMS      Kind = "ICMS"
	ICMSDifal Kind = "ICMS_DIFAL"
	FCP       Kind = "FCP"
	IPI       Kind = "IPI"
	PIS       Kind = "PIS"
	COFINS    Kind = "COFINS"
	ISS       Kind = "ISS"
	IRRF      Kind = "IRRF"
	INSS      Kind = "INSS"
	IRPJ      Kind = "IRPJ"
	CSLL      Kind = "CSLL"
)

// TaxLine é uma linha de imposto calculada: amount = round2(base*rate/100),
// com arredondamento aplicado uma única vez para evitar deriva
type TaxLine struct {
	Kind        Kind    `json:"kind"`
	Base        float64 `json:"base"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
	CST         string  `json:"cst,omitempty"`
	CSOSN       string  `json:"csosn,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Aggregate acumula as linhas de um mesmo tributo
type Aggregate struct {
	Kind    Kind      `json:"kind"`
	Amount  float64   `json:"amount"`
	Details []TaxLine `json:"details"`
}

// Report é o relatório consolidado de impostos de um documento
type Report struct {
	ID          string      `json:"id"`
	Taxes       []Aggregate `json:"taxes"`
	TotalTax    float64     `json:"totalTax"`
	NetAmount   float64     `json:"netAmount"`
	BurdenRatio *float64    `json:"burdenRatio,omitempty"`
	Regime      string      `json:"regime,omitempty"`
	Alerts      []string    `json:"alerts"`
}

// Regimes tributários reconhecidos pelo agregador
const (
	RegimeSimplesNacional = "simples_nacional"
	RegimeLucroPresumido  = "lucro_presumido"
	RegimeLucroReal       = "lucro_real"
)

// Options configura o cálculo de impostos de um documento
type Options struct {
	CalculateICMS          bool
	CalculatePISCOFINS     bool
	CumulativeRegime       bool
	DeductibleCosts        float64
	CalculateWithholdings  bool
	WithholdingCategory    string
	Regime                 string
	Trailing12MonthRevenue float64
	Activity               Activity
	ServiceCode            string
}

// DefaultOptions retorna as opções padrão: ICMS e PIS/COFINS habilitados,
// demais cálculos desligados
func DefaultOptions() Options {
	return Options{
		CalculateICMS:      true,
		CalculatePISCOFINS: true,
	}
}
