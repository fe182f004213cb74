package utils

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var nonNumeric = regexp.MustCompile(`[^\d.\-]`)

var ErrNonFiniteNumber = errors.New("número não finito")

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseNumber converte um número simples, sem separador de milhar.
// NaN e infinitos são rejeitados com ErrNonFiniteNumber.
func ParseNumber(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNonFiniteNumber
	}
	return f, nil
}

// CleanAmount remove símbolos de moeda e separadores de milhar.
// Valores vazios ou inválidos viram zero.
func CleanAmount(value string) float64 {
	cleaned := nonNumeric.ReplaceAllString(value, "")
	if cleaned == "" {
		return 0
	}

	f, err := ParseNumber(cleaned)
	if err != nil {
		return 0
	}
	return f
}

// FormatMoney formata um valor como $1,234.56
func FormatMoney(value float64) string {
	d := decimal.NewFromFloat(value).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(2)
	intPart, fracPart := fixed[:len(fixed)-3], fixed[len(fixed)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + "$" + b.String() + "." + fracPart
}

// FormatPercent formata um percentual com uma casa decimal
func FormatPercent(value float64) string {
	return decimal.NewFromFloat(value).Round(1).StringFixed(1) + "%"
}
