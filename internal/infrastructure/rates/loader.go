package rates

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/contaflux/fiscal-engine/internal/domain/tax"
)

// ratesFile é o formato do arquivo YAML de sobrescrita de alíquotas.
// Apenas as seções presentes no arquivo substituem os valores embutidos;
// seções ausentes preservam a tabela padrão.
type ratesFile struct {
	ICMS struct {
		Intra        map[string]float64 `yaml:"intra"`
		IntraDefault *float64           `yaml:"intra_default"`
		InterHigh    *float64           `yaml:"inter_high"`
		InterLow     *float64           `yaml:"inter_low"`
		FCP          *float64           `yaml:"fcp"`
	} `yaml:"icms"`
	PisCofins struct {
		PIS    *float64 `yaml:"pis"`
		COFINS *float64 `yaml:"cofins"`
	} `yaml:"pis_cofins"`
	ISS struct {
		Municipal       map[string]float64 `yaml:"municipal"`
		Default         *float64           `yaml:"default"`
		ServiceOverride map[string]float64 `yaml:"service_override"`
	} `yaml:"iss"`
	IPI struct {
		ByNCM map[string]float64 `yaml:"by_ncm"`
	} `yaml:"ipi"`
	Withholding map[string]tax.WithholdingRates `yaml:"withholding"`
}

// Load retorna a tabela de alíquotas embutida, aplicando por cima as
// sobrescritas do arquivo indicado pela variável RATES_FILE, quando definida
func Load() (*tax.RateTable, error) {
	table := tax.DefaultRateTable()

	path := os.Getenv("RATES_FILE")
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de alíquotas: %w", err)
	}

	var file ratesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("erro ao interpretar arquivo de alíquotas: %w", err)
	}

	applyOverrides(table, &file)
	return table, nil
}

func applyOverrides(table *tax.RateTable, file *ratesFile) {
	for uf, rate := range file.ICMS.Intra {
		table.ICMSIntra[uf] = rate
	}
	if file.ICMS.IntraDefault != nil {
		table.ICMSIntraDefault = *file.ICMS.IntraDefault
	}
	if file.ICMS.InterHigh != nil {
		table.ICMSInterHigh = *file.ICMS.InterHigh
	}
	if file.ICMS.InterLow != nil {
		table.ICMSInterLow = *file.ICMS.InterLow
	}
	if file.ICMS.FCP != nil {
		table.FCPRate = *file.ICMS.FCP
	}

	if file.PisCofins.PIS != nil {
		table.PISRate = *file.PisCofins.PIS
	}
	if file.PisCofins.COFINS != nil {
		table.COFINSRate = *file.PisCofins.COFINS
	}

	for code, rate := range file.ISS.Municipal {
		table.ISSMunicipal[code] = rate
	}
	if file.ISS.Default != nil {
		table.ISSDefault = *file.ISS.Default
	}
	for code, rate := range file.ISS.ServiceOverride {
		table.ISSServiceOverride[code] = rate
	}

	for ncm, rate := range file.IPI.ByNCM {
		table.IPIByNCM[ncm] = rate
	}

	for category, rates := range file.Withholding {
		table.Withholding[category] = rates
	}
}
