package dto

import (
	"github.com/contaflux/fiscal-engine/internal/domain/classification"
	"github.com/contaflux/fiscal-engine/internal/domain/document"
)

// ClassifyRequest representa os dados para classificação de um documento
type ClassifyRequest struct {
	Document document.Document `json:"document" binding:"required"`
	TenantID string            `json:"tenantId,omitempty"`
}

// ClassifyResponse representa a resposta da classificação de um documento
type ClassifyResponse struct {
	Classification classification.Result          `json:"classification"`
	Confidence     float64                        `json:"confidence"`
	RulesApplied   []string                       `json:"rulesApplied"`
	Heuristic      classification.HeuristicResult `json:"heuristic"`
	Alternatives   []classification.Result        `json:"alternatives"`
}

// NewClassifyResponse converte a saída do serviço em resposta da API
func NewClassifyResponse(out *classification.Output) ClassifyResponse {
	return ClassifyResponse{
		Classification: out.Classification,
		Confidence:     out.Confidence,
		RulesApplied:   out.RulesApplied,
		Heuristic:      out.Heuristic,
		Alternatives:   out.Alternatives,
	}
}
