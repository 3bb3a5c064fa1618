package tax

import (
	"fmt"

	"github.com/contaflux/fiscal-engine/internal/domain/document"
	"github.com/contaflux/fiscal-engine/pkg/logger"
	"github.com/google/uuid"
)

// kindOrder fixa a ordem de apresentação dos tributos no relatório
var kindOrder = []Kind{ICMS, ICMSDifal, FCP, IPI, PIS, COFINS, ISS, IRRF, INSS, IRPJ, CSLL}

// Calculator agrega os cálculos de todos os tributos de um documento sobre
// uma tabela de alíquotas imutável
type Calculator struct {
	rates  *RateTable
	logger logger.Logger
}

// NewCalculator cria o agregador de impostos
func NewCalculator(rates *RateTable, log logger.Logger) *Calculator {
	return &Calculator{rates: rates, logger: log}
}

// Compute calcula todos os tributos aplicáveis ao documento e consolida o
// relatório. A computação é tudo-ou-nada: pânico interno vira erro genérico
// e nenhum relatório parcial é retornado.
func (c *Calculator) Compute(doc *document.Document, opts Options) (report *Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("falha inesperada no cálculo de impostos", "panic", r)
			report = nil
			err = fmt.Errorf("falha interna ao calcular os impostos do documento")
		}
	}()

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	acc := newAccumulator()
	netAmount := doc.TaxableBase()

	deductibleShares := c.deductibleShares(doc, opts)
	for i, item := range doc.LineItems {
		base := itemBase(item)
		if base == 0 {
			continue
		}

		if opts.CalculateICMS && !doc.IsService() {
			acc.add(CalculateICMS(base, doc.IssuerUF(), doc.RecipientUF(), c.rates))
			if doc.Interstate() && doc.FinalConsumer {
				acc.addAll(CalculateDIFAL(base, doc.IssuerUF(), doc.RecipientUF(), c.rates))
			}
		}

		if opts.CalculatePISCOFINS {
			acc.addAll(CalculatePISCOFINS(base, deductibleShares[i], opts.CumulativeRegime, c.rates))
		}

		if item.NCM != "" {
			if line := CalculateIPI(base, item.NCM, c.rates); line != nil {
				acc.add(*line)
			}
		}
	}

	// ISS incide uma única vez sobre o valor líquido do documento de serviço
	if doc.IsService() {
		serviceCode := opts.ServiceCode
		if serviceCode == "" {
			serviceCode = doc.ServiceCode
		}
		acc.add(CalculateISS(netAmount, issuerMunicipality(doc), serviceCode, c.rates))
	}

	if opts.CalculateWithholdings {
		acc.addAll(CalculateWithholdings(netAmount, opts.WithholdingCategory, c.rates))
	}

	simplesApplied := false
	if opts.Regime == RegimeSimplesNacional {
		activity := opts.Activity
		if activity == "" {
			activity = ActivityCommerce
		}
		simples, err := CalculateSimples(netAmount, opts.Trailing12MonthRevenue, activity, c.rates)
		if err != nil {
			return nil, err
		}
		// o Simples substitui as linhas já acumuladas dos mesmos tributos;
		// nunca soma a elas
		for _, line := range simples.Lines {
			acc.replace(line)
		}
		simplesApplied = true
	}

	report = &Report{
		ID:        uuid.New().String(),
		Taxes:     acc.aggregates(),
		NetAmount: netAmount,
		Regime:    opts.Regime,
	}
	// total recalculado após eventuais substituições do Simples
	for _, agg := range report.Taxes {
		report.TotalTax = Round2(report.TotalTax + agg.Amount)
	}
	if netAmount > 0 {
		ratio := report.TotalTax / netAmount
		report.BurdenRatio = &ratio
	}
	report.Alerts = EvaluateAlerts(report, doc, opts, simplesApplied)

	return report, nil
}

// deductibleShares rateia os custos dedutíveis do regime não-cumulativo
// entre os itens, proporcionalmente às suas bases
func (c *Calculator) deductibleShares(doc *document.Document, opts Options) []float64 {
	shares := make([]float64, len(doc.LineItems))
	if opts.CumulativeRegime || opts.DeductibleCosts <= 0 {
		return shares
	}

	var total float64
	for _, item := range doc.LineItems {
		total += itemBase(item)
	}
	if total == 0 {
		return shares
	}
	for i, item := range doc.LineItems {
		shares[i] = opts.DeductibleCosts * itemBase(item) / total
	}
	return shares
}

func itemBase(item document.LineItem) float64 {
	if item.Total > 0 {
		return item.Total
	}
	return item.Quantity * item.UnitPrice
}

func issuerMunicipality(doc *document.Document) string {
	if doc.Issuer.Address == nil {
		return ""
	}
	return doc.Issuer.Address.MunicipalityCode
}

// accumulator dobra linhas de imposto por tributo preservando a ordem fixa
// de apresentação
type accumulator struct {
	byKind map[Kind]*Aggregate
}

func newAccumulator() *accumulator {
	return &accumulator{byKind: make(map[Kind]*Aggregate)}
}

func (a *accumulator) add(line TaxLine) {
	agg, ok := a.byKind[line.Kind]
	if !ok {
		agg = &Aggregate{Kind: line.Kind}
		a.byKind[line.Kind] = agg
	}
	agg.Amount = Round2(agg.Amount + line.Amount)
	agg.Details = append(agg.Details, line)
}

func (a *accumulator) addAll(lines []TaxLine) {
	for _, line := range lines {
		a.add(line)
	}
}

// replace descarta o acumulado do tributo e assume a linha informada
func (a *accumulator) replace(line TaxLine) {
	a.byKind[line.Kind] = &Aggregate{
		Kind:    line.Kind,
		Amount:  line.Amount,
		Details: []TaxLine{line},
	}
}

func (a *accumulator) aggregates() []Aggregate {
	result := make([]Aggregate, 0, len(a.byKind))
	for _, kind := range kindOrder {
		if agg, ok := a.byKind[kind]; ok {
			result = append(result, *agg)
		}
	}
	return result
}
