package classification

import (
	"regexp"
	"strings"

	"github.com/contaflux/fiscal-engine/internal/domain/document"
)

// HeuristicAlternative é um rótulo alternativo ranqueado
type HeuristicAlternative struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// HeuristicResult é a saída do classificador heurístico
type HeuristicResult struct {
	Label        string                 `json:"label"`
	Confidence   float64                `json:"confidence"`
	Alternatives []HeuristicAlternative `json:"alternatives"`
}

// HeuristicClassifier abstrai a chamada ao classificador "soft"; a
// implementação padrão é a heurística local por palavras-chave, mas a
// interface permite substituí-la por um modelo remoto
type HeuristicClassifier interface {
	Classify(doc *document.Document) HeuristicResult
}

// KeywordModel associa um padrão de palavras-chave a um rótulo fixo com
// confiança fixa e alternativas ranqueadas
type KeywordModel struct {
	Label        string
	Pattern      *regexp.Regexp
	Confidence   float64
	Alternatives []HeuristicAlternative
}

// HeuristicConfig é a configuração imutável do classificador heurístico,
// construída uma vez na inicialização e passada explicitamente
type HeuristicConfig struct {
	Models            []KeywordModel
	DefaultLabel      string
	DefaultConfidence float64
}

// DefaultHeuristicConfig retorna os modelos de palavras-chave embutidos.
// A ordem da lista define a precedência entre modelos.
func DefaultHeuristicConfig() HeuristicConfig {
	return HeuristicConfig{
		Models: []KeywordModel{
			{
				Label:      "combustivel",
				Pattern:    regexp.MustCompile(`combustivel|combustível|posto|gasolina|etanol|diesel`),
				Confidence: 0.92,
				Alternatives: []HeuristicAlternative{
					{Label: "frete", Confidence: 0.40},
					{Label: "manutencao_veiculos", Confidence: 0.30},
				},
			},
			{
				Label:      "energia_eletrica",
				Pattern:    regexp.MustCompile(`energia|eletrica|elétrica|eletropaulo|enel|cemig|light`),
				Confidence: 0.90,
				Alternatives: []HeuristicAlternative{
					{Label: "agua_esgoto", Confidence: 0.35},
					{Label: "outros", Confidence: 0.20},
				},
			},
			{
				Label:      "telecomunicacoes",
				Pattern:    regexp.MustCompile(`telefone|telefonia|internet|telecom|banda larga`),
				Confidence: 0.88,
				Alternatives: []HeuristicAlternative{
					{Label: "energia_eletrica", Confidence: 0.30},
					{Label: "outros", Confidence: 0.20},
				},
			},
			{
				Label:      "aluguel",
				Pattern:    regexp.MustCompile(`aluguel|locacao|locação|imobiliaria|imobiliária`),
				Confidence: 0.86,
				Alternatives: []HeuristicAlternative{
					{Label: "condominio", Confidence: 0.38},
					{Label: "outros", Confidence: 0.20},
				},
			},
			{
				Label:      "frete",
				Pattern:    regexp.MustCompile(`frete|transporte|transportadora|logistica|logística`),
				Confidence: 0.84,
				Alternatives: []HeuristicAlternative{
					{Label: "combustivel", Confidence: 0.42},
					{Label: "outros", Confidence: 0.25},
				},
			},
			{
				Label:      "material_escritorio",
				Pattern:    regexp.MustCompile(`papelaria|escritorio|escritório|material de expediente`),
				Confidence: 0.80,
				Alternatives: []HeuristicAlternative{
					{Label: "informatica", Confidence: 0.35},
					{Label: "outros", Confidence: 0.25},
				},
			},
			{
				Label:      "servicos_profissionais",
				Pattern:    regexp.MustCompile(`advocacia|advogad|contabilidade|consultoria|auditoria`),
				Confidence: 0.82,
				Alternatives: []HeuristicAlternative{
					{Label: "outros", Confidence: 0.30},
					{Label: "aluguel", Confidence: 0.15},
				},
			},
		},
		DefaultLabel:      "outros",
		DefaultConfidence: 0.45,
	}
}

// KeywordClassifier é a implementação local de HeuristicClassifier
type KeywordClassifier struct {
	config HeuristicConfig
}

// NewKeywordClassifier cria um classificador heurístico com a configuração
// informada
func NewKeywordClassifier(config HeuristicConfig) *KeywordClassifier {
	return &KeywordClassifier{config: config}
}

// Classify aplica os modelos de palavras-chave sobre a concatenação do nome
// do emitente com as descrições dos itens; o primeiro modelo que casa vence
func (c *KeywordClassifier) Classify(doc *document.Document) HeuristicResult {
	var sb strings.Builder
	sb.WriteString(doc.Issuer.Name)
	for _, item := range doc.LineItems {
		sb.WriteString(" ")
		sb.WriteString(item.Description)
	}
	text := strings.ToLower(sb.String())

	for _, model := range c.config.Models {
		if model.Pattern.MatchString(text) {
			return HeuristicResult{
				Label:        model.Label,
				Confidence:   model.Confidence,
				Alternatives: model.Alternatives,
			}
		}
	}

	return HeuristicResult{
		Label:      c.config.DefaultLabel,
		Confidence: c.config.DefaultConfidence,
		Alternatives: []HeuristicAlternative{
			{Label: "despesas_gerais", Confidence: 0.30},
			{Label: "servicos_profissionais", Confidence: 0.20},
		},
	}
}
