package tax

import "testing"

func TestCalculateICMS(t *testing.T) {
	rt := DefaultRateTable()

	t.Run("Operação interna usa alíquota da UF", func(t *testing.T) {
		line := CalculateICMS(1000, "SP", "SP", rt)
		if line.Rate != 18 || line.Amount != 180.00 {
			t.Fatalf("esperado 18%% / 180.00, obtido %v%% / %v", line.Rate, line.Amount)
		}
	})

	t.Run("UF ausente da tabela cai na alíquota padrão de 18%", func(t *testing.T) {
		line := CalculateICMS(1000, "AC", "AC", rt)
		if line.Rate != 18 {
			t.Fatalf("alíquota padrão esperada 18%%, obtida %v%%", line.Rate)
		}
	})

	t.Run("Interestadual com origem industrializada usa 12%", func(t *testing.T) {
		line := CalculateICMS(1000, "SP", "RJ", rt)
		if line.Rate != 12 || line.Amount != 120.00 {
			t.Fatalf("esperado 12%% / 120.00, obtido %v%% / %v", line.Rate, line.Amount)
		}
	})

	t.Run("Interestadual com origem fora do conjunto usa 7%", func(t *testing.T) {
		line := CalculateICMS(1000, "BA", "SP", rt)
		if line.Rate != 7 || line.Amount != 70.00 {
			t.Fatalf("esperado 7%% / 70.00, obtido %v%% / %v", line.Rate, line.Amount)
		}
	})
}

func TestCalculateDIFAL(t *testing.T) {
	rt := DefaultRateTable()

	lines := CalculateDIFAL(1000, "SP", "RJ", rt)
	if len(lines) != 2 {
		t.Fatalf("esperadas 2 linhas (DIFAL e FCP), obtidas %d", len(lines))
	}

	difal, fcp := lines[0], lines[1]
	// RJ interna 20% - SP interestadual 12% = 8%
	if difal.Kind != ICMSDifal || difal.Rate != 8 || difal.Amount != 80.00 {
		t.Fatalf("DIFAL esperado 8%% / 80.00, obtido %v%% / %v", difal.Rate, difal.Amount)
	}
	if fcp.Kind != FCP || fcp.Rate != 1 || fcp.Amount != 10.00 {
		t.Fatalf("FCP esperado 1%% / 10.00, obtido %v%% / %v", fcp.Rate, fcp.Amount)
	}
	if difal.Base != fcp.Base {
		t.Fatal("DIFAL e FCP devem incidir sobre a mesma base")
	}
}

func TestLineAmountProperty(t *testing.T) {
	// amount = round2(base*rate/100) para calculadoras de alíquota plana
	cases := []struct {
		base, rate, want float64
	}{
		{0, 0, 0},
		{100, 18, 18.00},
		{33.33, 7.6, 2.53},
		{999.99, 1.65, 16.50},
		{10.005, 10, 1.00},
	}
	for _, tc := range cases {
		if got := lineAmount(tc.base, tc.rate); got != tc.want {
			t.Fatalf("lineAmount(%v, %v) = %v, esperado %v", tc.base, tc.rate, got, tc.want)
		}
	}
}
