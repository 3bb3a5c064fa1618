package document

import "fmt"

// Type define o tipo do documento fiscal
type Type string

const (
	Invoice         Type = "nfe"
	ConsumerInvoice Type = "nfce"
	ServiceInvoice  Type = "nfse"
	Receipt         Type = "recibo"
)

// Address representa o endereço de um emitente ou destinatário
type Address struct {
	Street           string `json:"street,omitempty"`
	City             string `json:"city,omitempty"`
	UF               string `json:"uf"`
	MunicipalityCode string `json:"municipalityCode,omitempty"`
	ZipCode          string `json:"zipCode,omitempty"`
}

// Party representa uma pessoa jurídica ou física envolvida no documento
type Party struct {
	Name              string   `json:"name"`
	TaxID             string   `json:"taxId"`
	StateRegistration string   `json:"stateRegistration,omitempty"`
	Address           *Address `json:"address,omitempty"`
}

// LineItem representa um item do documento fiscal
type LineItem struct {
	ProductCode string  `json:"productCode,omitempty"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
	NCM         string  `json:"ncm,omitempty"`
}

// Amounts agrupa os valores monetários do documento
type Amounts struct {
	Gross    float64 `json:"gross"`
	Net      float64 `json:"net"`
	TotalTax float64 `json:"totalTax"`
}

// Document é a unidade de trabalho dos motores de classificação e de impostos
type Document struct {
	ID            string     `json:"id,omitempty"`
	Type          Type       `json:"type"`
	TenantID      string     `json:"tenantId,omitempty"`
	Issuer        Party      `json:"issuer"`
	Recipient     *Party     `json:"recipient,omitempty"`
	LineItems     []LineItem `json:"lineItems"`
	Amounts       Amounts    `json:"amounts"`
	ServiceCode   string     `json:"serviceCode,omitempty"`
	FinalConsumer bool       `json:"finalConsumer,omitempty"`
}

// ValidationError indica que o documento não possui a estrutura mínima exigida
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("documento inválido: campo %s: %s", e.Field, e.Message)
}

// Validate verifica a estrutura mínima do documento antes de qualquer cálculo
func (d *Document) Validate() error {
	if d == nil {
		return &ValidationError{Field: "document", Message: "documento não informado"}
	}
	if d.Issuer.Name == "" && d.Issuer.TaxID == "" {
		return &ValidationError{Field: "issuer", Message: "emitente é obrigatório"}
	}
	if d.Amounts.Gross < 0 || d.Amounts.Net < 0 || d.Amounts.TotalTax < 0 {
		return &ValidationError{Field: "amounts", Message: "valores monetários não podem ser negativos"}
	}
	for i, item := range d.LineItems {
		if item.Quantity < 0 || item.UnitPrice < 0 || item.Total < 0 {
			return &ValidationError{Field: fmt.Sprintf("lineItems[%d]", i), Message: "valores monetários não podem ser negativos"}
		}
	}
	return nil
}

// IsService informa se o documento é de prestação de serviço
func (d *Document) IsService() bool {
	return d.Type == ServiceInvoice
}

// TaxableBase retorna a base tributável do documento; quando o valor líquido
// não é informado, o valor bruto é assumido como base
func (d *Document) TaxableBase() float64 {
	if d.Amounts.Net > 0 {
		return d.Amounts.Net
	}
	return d.Amounts.Gross
}

// IssuerUF retorna a UF do emitente ou vazio quando não informada
func (d *Document) IssuerUF() string {
	if d.Issuer.Address == nil {
		return ""
	}
	return d.Issuer.Address.UF
}

// RecipientUF retorna a UF do destinatário ou vazio quando não informada
func (d *Document) RecipientUF() string {
	if d.Recipient == nil || d.Recipient.Address == nil {
		return ""
	}
	return d.Recipient.Address.UF
}

// Interstate informa se a operação cruza UFs; exige ambas as UFs presentes
func (d *Document) Interstate() bool {
	origin, dest := d.IssuerUF(), d.RecipientUF()
	return origin != "" && dest != "" && origin != dest
}

// Fields materializa o documento como uma árvore semi-estruturada para
// resolução de caminhos em condições de regras (ex.: "issuer.address.uf",
// "lineItems.description"). As chaves espelham os nomes do payload JSON.
func (d *Document) Fields() map[string]any {
	m := map[string]any{
		"type": string(d.Type),
		"amounts": map[string]any{
			"gross":    d.Amounts.Gross,
			"net":      d.Amounts.Net,
			"totalTax": d.Amounts.TotalTax,
		},
		"issuer": partyFields(&d.Issuer),
	}
	if d.ID != "" {
		m["id"] = d.ID
	}
	if d.TenantID != "" {
		m["tenantId"] = d.TenantID
	}
	if d.ServiceCode != "" {
		m["serviceCode"] = d.ServiceCode
	}
	if d.FinalConsumer {
		m["finalConsumer"] = d.FinalConsumer
	}
	if d.Recipient != nil {
		m["recipient"] = partyFields(d.Recipient)
	}
	items := make([]any, 0, len(d.LineItems))
	for _, item := range d.LineItems {
		entry := map[string]any{
			"description": item.Description,
			"quantity":    item.Quantity,
			"unitPrice":   item.UnitPrice,
			"total":       item.Total,
		}
		if item.ProductCode != "" {
			entry["productCode"] = item.ProductCode
		}
		if item.NCM != "" {
			entry["ncm"] = item.NCM
		}
		items = append(items, entry)
	}
	m["lineItems"] = items
	return m
}

func partyFields(p *Party) map[string]any {
	entry := map[string]any{
		"name":  p.Name,
		"taxId": p.TaxID,
	}
	if p.StateRegistration != "" {
		entry["stateRegistration"] = p.StateRegistration
	}
	if p.Address != nil {
		addr := map[string]any{"uf": p.Address.UF}
		if p.Address.City != "" {
			addr["city"] = p.Address.City
		}
		if p.Address.MunicipalityCode != "" {
			addr["municipalityCode"] = p.Address.MunicipalityCode
		}
		entry["address"] = addr
	}
	return entry
}
