package classification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/diegoholiveira/jsonlogic/v3"
)

// Os operadores de condição são registrados no jsonlogic como operadores
// customizados: o primeiro argumento é o caminho do campo, resolvido com
// ResolveField sobre os dados da regra, e a condição casa se qualquer
// candidato projetado casa.
func init() {
	jsonlogic.AddOperator(string(OpEquals), conditionOperator(matchEquals))
	jsonlogic.AddOperator(string(OpContains), conditionOperator(matchContains))
	jsonlogic.AddOperator(string(OpStartsWith), conditionOperator(matchStartsWith))
	jsonlogic.AddOperator(string(OpEndsWith), conditionOperator(matchEndsWith))
	jsonlogic.AddOperator(string(OpGreater), conditionOperator(matchGreater))
	jsonlogic.AddOperator(string(OpLess), conditionOperator(matchLess))
	jsonlogic.AddOperator(string(OpBetween), conditionOperator(matchBetween))
}

var knownOperators = map[Operator]bool{
	OpEquals:     true,
	OpContains:   true,
	OpStartsWith: true,
	OpEndsWith:   true,
	OpGreater:    true,
	OpLess:       true,
	OpBetween:    true,
}

// EvaluateCondition avalia uma condição contra a árvore de campos do
// documento, traduzindo-a para uma regra jsonlogic. Caminho não resolvido,
// operador desconhecido ou operando incompatível resultam em false; a
// avaliação nunca falha.
func EvaluateCondition(fields map[string]any, cond Condition) bool {
	if !knownOperators[cond.Operator] {
		return false
	}

	args := []any{cond.FieldPath, cond.Value}
	if cond.Operator == OpBetween {
		args = append(args, cond.ValueEnd)
	}

	rule, err := json.Marshal(map[string]any{string(cond.Operator): args})
	if err != nil {
		return false
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return false
	}

	var result bytes.Buffer
	if err := jsonlogic.Apply(bytes.NewReader(rule), bytes.NewReader(data), &result); err != nil {
		return false
	}
	return strings.TrimSpace(result.String()) == "true"
}

// matchFn compara um candidato resolvido com os operandos da condição
type matchFn func(value, operand, operandEnd any) bool

// conditionOperator adapta uma matchFn ao contrato de operador customizado do
// jsonlogic, resolvendo o caminho e projetando listas
func conditionOperator(match matchFn) func(values, data any) any {
	return func(values, data any) any {
		args, ok := values.([]any)
		if !ok || len(args) < 2 {
			return false
		}
		path, ok := args[0].(string)
		if !ok {
			return false
		}
		fields, ok := data.(map[string]any)
		if !ok {
			return false
		}

		operand := args[1]
		var operandEnd any
		if len(args) > 2 {
			operandEnd = args[2]
		}

		for _, candidate := range ResolveField(fields, path).candidates() {
			if match(candidate, operand, operandEnd) {
				return true
			}
		}
		return false
	}
}

// matchEquals compara com consciência de tipo: operandos numéricos são
// comparados numericamente, os demais pela forma textual exata
func matchEquals(value, operand, _ any) bool {
	if v, okV := numericValue(value); okV {
		if o, okO := numericValue(operand); okO {
			return v == o
		}
	}
	return stringValue(value) == stringValue(operand)
}

// matchContains trata o operando como alternação de expressão regular
// case-insensitive; padrão inválido não casa
func matchContains(value, operand, _ any) bool {
	pattern, ok := operand.(string)
	if !ok || pattern == "" {
		return false
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return false
	}
	return re.MatchString(stringValue(value))
}

func matchStartsWith(value, operand, _ any) bool {
	prefix, ok := operand.(string)
	if !ok {
		return false
	}
	return strings.HasPrefix(strings.ToLower(stringValue(value)), strings.ToLower(prefix))
}

func matchEndsWith(value, operand, _ any) bool {
	suffix, ok := operand.(string)
	if !ok {
		return false
	}
	return strings.HasSuffix(strings.ToLower(stringValue(value)), strings.ToLower(suffix))
}

func matchGreater(value, operand, _ any) bool {
	v, okV := numericValue(value)
	o, okO := numericValue(operand)
	return okV && okO && v > o
}

func matchLess(value, operand, _ any) bool {
	v, okV := numericValue(value)
	o, okO := numericValue(operand)
	return okV && okO && v < o
}

// matchBetween é inclusivo nos dois limites
func matchBetween(value, operand, operandEnd any) bool {
	v, okV := numericValue(value)
	lo, okLo := numericValue(operand)
	hi, okHi := numericValue(operandEnd)
	return okV && okLo && okHi && v >= lo && v <= hi
}

func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
