package classification

import "testing"

func TestEvaluateCondition(t *testing.T) {
	fields := sampleFields()

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{
			name: "equals casa valor textual exato",
			cond: Condition{FieldPath: "type", Operator: OpEquals, Value: "nfe"},
			want: true,
		},
		{
			name: "equals compara numericamente quando ambos são numéricos",
			cond: Condition{FieldPath: "amounts.net", Operator: OpEquals, Value: 1000},
			want: true,
		},
		{
			name: "contains trata o operando como alternação case-insensitive",
			cond: Condition{FieldPath: "issuer.name", Operator: OpContains, Value: "posto|combustivel"},
			want: true,
		},
		{
			name: "contains casa se qualquer elemento da lista casa",
			cond: Condition{FieldPath: "lineItems.description", Operator: OpContains, Value: "etanol"},
			want: true,
		},
		{
			name: "startsWith ignora caixa",
			cond: Condition{FieldPath: "issuer.name", Operator: OpStartsWith, Value: "POSTO"},
			want: true,
		},
		{
			name: "endsWith ignora caixa",
			cond: Condition{FieldPath: "issuer.name", Operator: OpEndsWith, Value: "ltda"},
			want: true,
		},
		{
			name: "greater compara numericamente",
			cond: Condition{FieldPath: "amounts.gross", Operator: OpGreater, Value: 1000},
			want: true,
		},
		{
			name: "less falha quando o valor não é menor",
			cond: Condition{FieldPath: "amounts.gross", Operator: OpLess, Value: 1000},
			want: false,
		},
		{
			name: "between é inclusivo no limite inferior",
			cond: Condition{FieldPath: "amounts.net", Operator: OpBetween, Value: 1000, ValueEnd: 2000},
			want: true,
		},
		{
			name: "between é inclusivo no limite superior",
			cond: Condition{FieldPath: "amounts.net", Operator: OpBetween, Value: 500, ValueEnd: 1000},
			want: true,
		},
		{
			name: "between falha fora do intervalo",
			cond: Condition{FieldPath: "amounts.net", Operator: OpBetween, Value: 1001, ValueEnd: 2000},
			want: false,
		},
		{
			name: "campo ausente avalia falso sem falhar",
			cond: Condition{FieldPath: "recipient.address.uf", Operator: OpEquals, Value: "SP"},
			want: false,
		},
		{
			name: "operador desconhecido avalia falso",
			cond: Condition{FieldPath: "type", Operator: Operator("matches"), Value: "nfe"},
			want: false,
		},
		{
			name: "greater com valor não numérico avalia falso",
			cond: Condition{FieldPath: "issuer.name", Operator: OpGreater, Value: 10},
			want: false,
		},
		{
			name: "contains com regex inválida avalia falso",
			cond: Condition{FieldPath: "issuer.name", Operator: OpContains, Value: "(["},
			want: false,
		},
		{
			name: "equals compara número com operando textual numérico",
			cond: Condition{FieldPath: "amounts.net", Operator: OpEquals, Value: "1000"},
			want: true,
		},
		{
			name: "between coage operandos textuais numéricos",
			cond: Condition{FieldPath: "amounts.net", Operator: OpBetween, Value: "500", ValueEnd: "1500"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateCondition(fields, tt.cond); got != tt.want {
				t.Fatalf("esperado %v, obtido %v", tt.want, got)
			}
		})
	}
}
