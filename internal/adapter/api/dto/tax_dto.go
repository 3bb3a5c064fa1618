package dto

import (
	"github.com/contaflux/fiscal-engine/internal/domain/document"
	"github.com/contaflux/fiscal-engine/internal/domain/tax"
)

// TaxOptionsRequest representa as opções de cálculo de impostos. Os campos
// booleanos de ICMS e PIS/COFINS são ponteiros para distinguir "ausente"
// (padrão ligado) de "explicitamente desligado".
type TaxOptionsRequest struct {
	CalculateICMS                 *bool   `json:"calculateICMS,omitempty"`
	CalculatePisCofins            *bool   `json:"calculatePisCofins,omitempty"`
	CumulativeRegime              bool    `json:"cumulativeRegime,omitempty"`
	DeductibleCosts               float64 `json:"deductibleCosts,omitempty"`
	CalculateWithholdings         bool    `json:"calculateWithholdings,omitempty"`
	ServiceCategoryForWithholding string  `json:"serviceCategoryForWithholding,omitempty"`
	Regime                        string  `json:"regime,omitempty"`
	Trailing12MonthRevenue        float64 `json:"trailing12MonthRevenue,omitempty"`
	ActivityType                  string  `json:"activityType,omitempty"`
	ServiceCode                   string  `json:"serviceCode,omitempty"`
}

// TaxComputeRequest representa os dados para cálculo de impostos de um
// documento
type TaxComputeRequest struct {
	Document document.Document  `json:"document" binding:"required"`
	Options  *TaxOptionsRequest `json:"options,omitempty"`
}

// ToOptions converte a requisição em opções do domínio, aplicando os padrões
func (r *TaxComputeRequest) ToOptions() tax.Options {
	opts := tax.DefaultOptions()
	if r.Options == nil {
		return opts
	}

	if r.Options.CalculateICMS != nil {
		opts.CalculateICMS = *r.Options.CalculateICMS
	}
	if r.Options.CalculatePisCofins != nil {
		opts.CalculatePISCOFINS = *r.Options.CalculatePisCofins
	}
	opts.CumulativeRegime = r.Options.CumulativeRegime
	opts.DeductibleCosts = r.Options.DeductibleCosts
	opts.CalculateWithholdings = r.Options.CalculateWithholdings
	opts.WithholdingCategory = r.Options.ServiceCategoryForWithholding
	opts.Regime = r.Options.Regime
	opts.Trailing12MonthRevenue = r.Options.Trailing12MonthRevenue
	opts.Activity = tax.Activity(r.Options.ActivityType)
	opts.ServiceCode = r.Options.ServiceCode
	return opts
}

// TaxBreakdown resume os valores consolidados do cálculo
type TaxBreakdown struct {
	BurdenRatio *float64 `json:"burdenRatio,omitempty"`
	NetAmount   float64  `json:"netAmount"`
	TotalTax    float64  `json:"totalTax"`
}

// TaxComputeResponse representa a resposta do cálculo de impostos
type TaxComputeResponse struct {
	ID        string          `json:"id"`
	Taxes     []tax.Aggregate `json:"taxes"`
	TotalTax  float64         `json:"totalTax"`
	Alerts    []string        `json:"alerts"`
	Breakdown TaxBreakdown    `json:"breakdown"`
}

// NewTaxComputeResponse converte o relatório do domínio em resposta da API
func NewTaxComputeResponse(report *tax.Report) TaxComputeResponse {
	return TaxComputeResponse{
		ID:       report.ID,
		Taxes:    report.Taxes,
		TotalTax: report.TotalTax,
		Alerts:   report.Alerts,
		Breakdown: TaxBreakdown{
			BurdenRatio: report.BurdenRatio,
			NetAmount:   report.NetAmount,
			TotalTax:    report.TotalTax,
		},
	}
}
