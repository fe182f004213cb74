// Package calendar implementa a contagem de dias úteis ponderados.
// Segunda a sexta valem 1, sábado vale 0.5 e domingo não conta.
package calendar

import "time"

const (
	// WeeklyTotalDays é o total de dias úteis ponderados de uma semana
	WeeklyTotalDays = 5.5
	saturdayWeight  = 0.5
	weekdayWeight   = 1.0
	fullWeekdays    = 5.0
)

// DayWeight retorna o peso de um dia da semana
func DayWeight(d time.Weekday) float64 {
	switch d {
	case time.Saturday:
		return saturdayWeight
	case time.Sunday:
		return 0
	default:
		return weekdayWeight
	}
}

// WorkingDays soma os pesos de todos os dias entre start e end, inclusive.
// Retorna 0 quando start é posterior a end.
func WorkingDays(start, end time.Time) float64 {
	start, end = dateOnly(start), dateOnly(end)
	if start.After(end) {
		return 0
	}

	total := 0.0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		total += DayWeight(d.Weekday())
	}
	return total
}

// WeeklyElapsedDays retorna os dias úteis decorridos na semana corrente.
// De segunda a sexta e no domingo o valor é 5, no sábado é 5.5.
func WeeklyElapsedDays(today time.Time) float64 {
	if today.Weekday() == time.Saturday {
		return WeeklyTotalDays
	}
	return fullWeekdays
}

// MonthBounds retorna o primeiro e o último dia do mês de t
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// ElapsedInMonth retorna os dias úteis do primeiro dia do mês até today, inclusive
func ElapsedInMonth(today time.Time) float64 {
	first, _ := MonthBounds(today)
	return WorkingDays(first, today)
}

// TotalInMonth retorna os dias úteis do mês inteiro de today
func TotalInMonth(today time.Time) float64 {
	first, last := MonthBounds(today)
	return WorkingDays(first, last)
}

// RemainingWorkingDays retorna os dias úteis do dia seguinte a today até o fim do mês
func RemainingWorkingDays(today time.Time) float64 {
	_, last := MonthBounds(today)
	return WorkingDays(dateOnly(today).AddDate(0, 0, 1), last)
}

// dateOnly descarta horário e fuso para que a contagem seja por dia de calendário
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
