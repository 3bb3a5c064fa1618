package tax

import (
	"fmt"

	"github.com/contaflux/fiscal-engine/internal/domain/document"
)

// Limites dos alertas consultivos
const (
	highBurdenRatio    = 0.35
	regimeReviewAmount = 10000
)

// EvaluateAlerts deriva os alertas consultivos do relatório consolidado.
// Alertas nunca bloqueiam o resultado.
func EvaluateAlerts(report *Report, doc *document.Document, opts Options, simplesApplied bool) []string {
	alerts := []string{}

	if report.BurdenRatio != nil && *report.BurdenRatio > highBurdenRatio {
		alerts = append(alerts, fmt.Sprintf(
			"Carga tributária elevada: %.1f%% do valor líquido do documento", *report.BurdenRatio*100))
	}

	if doc.TaxableBase() > regimeReviewAmount && opts.Regime == "" {
		alerts = append(alerts,
			"Documento com valor líquido acima de R$ 10.000,00 sem regime tributário configurado; considere revisar o enquadramento")
	}

	if simplesApplied {
		alerts = append(alerts, "Cálculo realizado com base no Simples Nacional")
	}

	return alerts
}
