package domain

import (
	"strings"
	"time"
)

// MonthNames contém os nomes dos meses em espanhol, na ordem do calendário
var MonthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var englishMonths = map[string]string{
	"january":   "Enero",
	"february":  "Febrero",
	"march":     "Marzo",
	"april":     "Abril",
	"may":       "Mayo",
	"june":      "Junio",
	"july":      "Julio",
	"august":    "Agosto",
	"september": "Septiembre",
	"october":   "Octubre",
	"november":  "Noviembre",
	"december":  "Diciembre",
}

// MonthName retorna o nome do mês em espanhol
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return MonthNames[m-1]
}

// MonthNumber retorna o número do mês a partir do nome em espanhol (sem diferenciar maiúsculas)
func MonthNumber(name string) (time.Month, bool) {
	name = strings.TrimSpace(name)
	for i, n := range MonthNames {
		if strings.EqualFold(n, name) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// NormalizeMonthName converte nomes em inglês para espanhol e padroniza a capitalização.
// Valores desconhecidos são retornados sem alteração.
func NormalizeMonthName(name string) string {
	trimmed := strings.TrimSpace(name)
	if es, ok := englishMonths[strings.ToLower(trimmed)]; ok {
		return es
	}
	if m, ok := MonthNumber(trimmed); ok {
		return MonthNames[m-1]
	}
	return trimmed
}

// SameMonth compara dois nomes de mês ignorando maiúsculas e espaços
func SameMonth(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
