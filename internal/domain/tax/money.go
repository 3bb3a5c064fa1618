package tax

import "math"

// Round2 arredonda para 2 casas decimais (meio para cima em valores
// não negativos)
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// lineAmount aplica a invariante amount = round2(base*rate/100)
func lineAmount(base, rate float64) float64 {
	return Round2(base * rate / 100)
}
