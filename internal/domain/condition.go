package domain

import "fmt"

// Condition indica um estado informativo que impede o cálculo de um relatório.
// Não é um erro: o resultado vem vazio e o chamador exibe a mensagem.
type Condition string

const (
	ConditionNone          Condition = ""
	ConditionBudgetMissing Condition = "budget_missing_sales_exist"
	ConditionNoData        Condition = "no_data"
	ConditionMonthClosed   Condition = "month_closed"
)

// Message retorna a mensagem apresentada ao usuário para o período
func (c Condition) Message(month string, year int) string {
	switch c {
	case ConditionBudgetMissing:
		return fmt.Sprintf("Existen ventas para %s %d pero no hay presupuesto cargado", month, year)
	case ConditionNoData:
		return fmt.Sprintf("No hay ventas ni presupuesto para %s %d", month, year)
	case ConditionMonthClosed:
		return "El mes ha finalizado, no quedan días hábiles"
	default:
		return ""
	}
}

// PeriodMessage descreve a condição de uma projeção para o período informado,
// por exemplo "la semana 10" ou "Marzo".
func (c Condition) PeriodMessage(period string) string {
	if c == ConditionNoData {
		return fmt.Sprintf("No hay datos para %s con los filtros actuales", period)
	}
	return ""
}
