package rates

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("Deve retornar a tabela padrão quando RATES_FILE não está definida", func(t *testing.T) {
		os.Unsetenv("RATES_FILE")

		table, err := Load()
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if table.ICMSIntraRate("SP") != 18 {
			t.Errorf("alíquota interna de SP esperada 18, obtida %v", table.ICMSIntraRate("SP"))
		}
		if table.PISRate != 1.65 {
			t.Errorf("alíquota de PIS esperada 1.65, obtida %v", table.PISRate)
		}
	})

	t.Run("Deve aplicar sobrescritas do arquivo sobre a tabela padrão", func(t *testing.T) {
		content := `
icms:
  intra:
    SP: 19.5
    TO: 20
  fcp: 2
pis_cofins:
  pis: 0.65
iss:
  municipal:
    "3550308": 3
ipi:
  by_ncm:
    "22030000": 8
withholding:
  consultoria:
    irrf: 1.5
    inss: 11
`
		path := filepath.Join(t.TempDir(), "rates.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("erro ao gravar arquivo temporário: %v", err)
		}
		t.Setenv("RATES_FILE", path)

		table, err := Load()
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if table.ICMSIntraRate("SP") != 19.5 {
			t.Errorf("alíquota interna de SP esperada 19.5, obtida %v", table.ICMSIntraRate("SP"))
		}
		if table.ICMSIntraRate("TO") != 20 {
			t.Errorf("alíquota interna de TO esperada 20, obtida %v", table.ICMSIntraRate("TO"))
		}
		if table.FCPRate != 2 {
			t.Errorf("alíquota de FCP esperada 2, obtida %v", table.FCPRate)
		}
		if table.PISRate != 0.65 {
			t.Errorf("alíquota de PIS esperada 0.65, obtida %v", table.PISRate)
		}
		// COFINS não foi sobrescrita e preserva o valor embutido
		if table.COFINSRate != 7.6 {
			t.Errorf("alíquota de COFINS esperada 7.6, obtida %v", table.COFINSRate)
		}
		if table.ISSMunicipal["3550308"] != 3 {
			t.Errorf("alíquota de ISS de São Paulo esperada 3, obtida %v", table.ISSMunicipal["3550308"])
		}
		if table.IPIByNCM["22030000"] != 8 {
			t.Errorf("alíquota de IPI esperada 8, obtida %v", table.IPIByNCM["22030000"])
		}
		wh, ok := table.Withholding["consultoria"]
		if !ok || wh.IRRF != 1.5 || wh.INSS != 11 {
			t.Errorf("retenções de consultoria inesperadas: %+v", wh)
		}
	})

	t.Run("Deve retornar erro quando o arquivo não existe", func(t *testing.T) {
		t.Setenv("RATES_FILE", filepath.Join(t.TempDir(), "inexistente.yaml"))

		if _, err := Load(); err == nil {
			t.Error("esperava erro para arquivo inexistente")
		}
	})

	t.Run("Deve retornar erro quando o YAML é inválido", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rates.yaml")
		if err := os.WriteFile(path, []byte("icms: [isto não é um mapa"), 0o644); err != nil {
			t.Fatalf("erro ao gravar arquivo temporário: %v", err)
		}
		t.Setenv("RATES_FILE", path)

		if _, err := Load(); err == nil {
			t.Error("esperava erro para YAML inválido")
		}
	})
}
