package tax

import (
	"strings"
	"testing"

	"github.com/contaflux/fiscal-engine/internal/domain/document"
	"github.com/contaflux/fiscal-engine/pkg/logger"
)

func newTestCalculator() *Calculator {
	return NewCalculator(DefaultRateTable(), logger.NewLogger())
}

func goodsDocument(destUF string) *document.Document {
	return &document.Document{
		Type: document.Invoice,
		Issuer: document.Party{
			Name:    "Distribuidora Alfa LTDA",
			TaxID:   "12345678000190",
			Address: &document.Address{UF: "SP", MunicipalityCode: "3550308"},
		},
		Recipient: &document.Party{
			Name:    "Cliente Final",
			TaxID:   "98765432000110",
			Address: &document.Address{UF: destUF},
		},
		LineItems: []document.LineItem{
			{Description: "Mercadoria", Quantity: 10, UnitPrice: 100, Total: 1000},
		},
		Amounts: document.Amounts{Gross: 1000, Net: 1000},
	}
}

func findAggregate(t *testing.T, report *Report, kind Kind) *Aggregate {
	t.Helper()
	for i := range report.Taxes {
		if report.Taxes[i].Kind == kind {
			return &report.Taxes[i]
		}
	}
	return nil
}

func TestComputeICMSScenarios(t *testing.T) {
	calc := newTestCalculator()

	t.Run("Operação interna SP->SP com total 1000 gera ICMS 180.00", func(t *testing.T) {
		report, err := calc.Compute(goodsDocument("SP"), DefaultOptions())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		icms := findAggregate(t, report, ICMS)
		if icms == nil || icms.Amount != 180.00 {
			t.Fatalf("ICMS esperado 180.00, obtido %+v", icms)
		}
		if findAggregate(t, report, ICMSDifal) != nil {
			t.Fatal("operação interna não gera DIFAL")
		}
	})

	t.Run("Interestadual SP->RJ a consumidor final gera ICMS 120, DIFAL 80 e FCP 10", func(t *testing.T) {
		doc := goodsDocument("RJ")
		doc.FinalConsumer = true

		report, err := calc.Compute(doc, DefaultOptions())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if icms := findAggregate(t, report, ICMS); icms == nil || icms.Amount != 120.00 {
			t.Fatalf("ICMS esperado 120.00, obtido %+v", icms)
		}
		if difal := findAggregate(t, report, ICMSDifal); difal == nil || difal.Amount != 80.00 {
			t.Fatalf("DIFAL esperado 80.00, obtido %+v", difal)
		}
		if fcp := findAggregate(t, report, FCP); fcp == nil || fcp.Amount != 10.00 {
			t.Fatalf("FCP esperado 10.00, obtido %+v", fcp)
		}
	})
}

func TestComputeISSServiceDocument(t *testing.T) {
	calc := newTestCalculator()

	doc := goodsDocument("SP")
	doc.Type = document.ServiceInvoice
	doc.ServiceCode = "14.01"

	report, err := calc.Compute(doc, DefaultOptions())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// município com entrada genérica de 5%, mas o código de serviço 14.01
	// sobrepõe para 2%
	iss := findAggregate(t, report, ISS)
	if iss == nil || iss.Amount != 20.00 {
		t.Fatalf("ISS esperado 20.00 (2%% de 1000), obtido %+v", iss)
	}
	if len(iss.Details) != 1 || iss.Details[0].Rate != 2 {
		t.Fatalf("alíquota de exceção esperada 2%%, obtida %+v", iss.Details)
	}

	// documento de serviço não acumula ICMS por item
	if findAggregate(t, report, ICMS) != nil {
		t.Fatal("documento de serviço não deveria gerar ICMS")
	}
}

func TestComputeSimplesOverwritesKinds(t *testing.T) {
	calc := newTestCalculator()

	doc := goodsDocument("SP")
	doc.LineItems = []document.LineItem{
		{Description: "Mercadoria", Quantity: 200, UnitPrice: 100, Total: 20000},
	}
	doc.Amounts = document.Amounts{Gross: 20000, Net: 20000}

	opts := DefaultOptions()
	opts.Regime = RegimeSimplesNacional
	opts.Activity = ActivityCommerce
	opts.Trailing12MonthRevenue = 200000

	report, err := calc.Compute(doc, opts)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// faixa 2 do comércio: 7.3% de 20 000 = 1460.00, ICMS = 30% disso.
	// O valor substitui o ICMS de 18% calculado por item (3600.00).
	icms := findAggregate(t, report, ICMS)
	if icms == nil || icms.Amount != 438.00 {
		t.Fatalf("ICMS do Simples esperado 438.00 (substituição), obtido %+v", icms)
	}
	if len(icms.Details) != 1 || icms.Details[0].CSOSN != "101" {
		t.Fatalf("detalhe do ICMS deveria ser apenas a linha do Simples: %+v", icms.Details)
	}

	pis := findAggregate(t, report, PIS)
	if pis == nil || pis.Amount != 219.00 {
		t.Fatalf("PIS do Simples esperado 219.00 (15%% de 1460), obtido %+v", pis)
	}

	if irpj := findAggregate(t, report, IRPJ); irpj == nil || irpj.Amount != 365.00 {
		t.Fatalf("IRPJ esperado 365.00 (25%% de 1460), obtido %+v", irpj)
	}

	// total reconsolidado após as substituições
	var sum float64
	for _, agg := range report.Taxes {
		sum = Round2(sum + agg.Amount)
	}
	if report.TotalTax != sum {
		t.Fatalf("total %v difere da soma dos tributos %v", report.TotalTax, sum)
	}

	var found bool
	for _, alert := range report.Alerts {
		if strings.Contains(alert, "Simples Nacional") {
			found = true
		}
	}
	if !found {
		t.Fatalf("alerta informativo do Simples ausente: %v", report.Alerts)
	}
}

func TestComputeWithholdings(t *testing.T) {
	calc := newTestCalculator()

	doc := goodsDocument("SP")
	doc.Type = document.ServiceInvoice

	opts := DefaultOptions()
	opts.CalculateWithholdings = true
	opts.WithholdingCategory = "servicos_profissionais"

	report, err := calc.Compute(doc, opts)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if irrf := findAggregate(t, report, IRRF); irrf == nil || irrf.Amount != 15.00 {
		t.Fatalf("IRRF esperado 15.00, obtido %+v", irrf)
	}
	if inss := findAggregate(t, report, INSS); inss == nil || inss.Amount != 110.00 {
		t.Fatalf("INSS esperado 110.00, obtido %+v", inss)
	}
}

func TestComputeZeroNetAmount(t *testing.T) {
	calc := newTestCalculator()

	doc := &document.Document{
		Type:    document.Invoice,
		Issuer:  document.Party{Name: "Emitente", TaxID: "1"},
		Amounts: document.Amounts{},
	}

	report, err := calc.Compute(doc, DefaultOptions())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if report.BurdenRatio != nil {
		t.Fatalf("razão de carga deveria ser omitida com líquido zero, obtida %v", *report.BurdenRatio)
	}
}

func TestComputeAlerts(t *testing.T) {
	calc := newTestCalculator()

	t.Run("Valor alto sem regime sugere revisão de enquadramento", func(t *testing.T) {
		doc := goodsDocument("SP")
		doc.LineItems[0].Total = 20000
		doc.Amounts = document.Amounts{Gross: 20000, Net: 20000}

		report, err := calc.Compute(doc, DefaultOptions())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		var found bool
		for _, alert := range report.Alerts {
			if strings.Contains(alert, "regime tributário") {
				found = true
			}
		}
		if !found {
			t.Fatalf("alerta de revisão de regime ausente: %v", report.Alerts)
		}
	})

	t.Run("Carga acima de 35% gera alerta de carga elevada", func(t *testing.T) {
		doc := goodsDocument("SP")
		doc.LineItems[0].NCM = "24022000" // IPI de 300% garante a carga

		report, err := calc.Compute(doc, DefaultOptions())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		var found bool
		for _, alert := range report.Alerts {
			if strings.Contains(alert, "Carga tributária elevada") {
				found = true
			}
		}
		if !found {
			t.Fatalf("alerta de carga elevada ausente: %v", report.Alerts)
		}
	})

	t.Run("Documento inválido é rejeitado antes do cálculo", func(t *testing.T) {
		doc := &document.Document{Type: document.Invoice}
		if _, err := calc.Compute(doc, DefaultOptions()); err == nil {
			t.Fatal("esperado erro de validação")
		}
	})
}
