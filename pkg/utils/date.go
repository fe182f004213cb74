package utils

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts são os formatos aceitos nas planilhas, do mais para o menos comum
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02/01/2006",
	"2/1/2006",
	"02/01/2006 15:04:05",
	"02-01-2006",
}

// ParseDate converte uma data yyyy-mm-dd. Retorna nil quando a string é vazia.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseFlexibleDate tenta todos os formatos conhecidos, com dia antes do mês
func ParseFlexibleDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data não reconhecido: %s", value)
}

// MonthPeriod formata o período no padrão mm-yyyy
func MonthPeriod(t time.Time) string {
	return t.Format("01-2006")
}
