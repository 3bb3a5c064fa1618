package classification

import "strings"

// ResolvedKind identifica a forma do valor resolvido por um caminho
type ResolvedKind int

const (
	Absent ResolvedKind = iota
	Scalar
	List
)

// Resolved é o resultado fechado da resolução de um caminho: ausente, um
// escalar ou uma lista de valores projetados sobre um arranjo de objetos.
type Resolved struct {
	Kind   ResolvedKind
	Value  any
	Values []any
}

// ResolveField resolve um caminho em notação de ponto contra a árvore do
// documento. Quando o valor corrente é uma lista, o segmento é projetado
// sobre todos os elementos que são objetos contendo a chave; se nenhum a
// contém, o caminho resolve para ausente. A função nunca falha: dado ausente
// ou de forma inesperada resolve para Absent.
func ResolveField(root map[string]any, path string) Resolved {
	if path == "" {
		return Resolved{Kind: Absent}
	}

	var current any = root
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok || value == nil {
				return Resolved{Kind: Absent}
			}
			current = value
		case []any:
			var projected []any
			for _, element := range node {
				obj, ok := element.(map[string]any)
				if !ok {
					continue
				}
				if value, ok := obj[segment]; ok && value != nil {
					projected = append(projected, value)
				}
			}
			if len(projected) == 0 {
				return Resolved{Kind: Absent}
			}
			current = projected
		default:
			return Resolved{Kind: Absent}
		}
	}

	if list, ok := current.([]any); ok {
		return Resolved{Kind: List, Values: list}
	}
	return Resolved{Kind: Scalar, Value: current}
}

// candidates retorna os valores a comparar: o próprio escalar ou, para uma
// lista projetada, cada elemento (a condição casa se qualquer elemento casa)
func (r Resolved) candidates() []any {
	switch r.Kind {
	case Scalar:
		return []any{r.Value}
	case List:
		return r.Values
	default:
		return nil
	}
}
