package domain

import (
	"strconv"
)

// Ratio representa o resultado de uma divisão que pode estar indefinida.
// Quando o denominador é zero o valor é marcado como inválido e serializado como null.
type Ratio struct {
	Value float64
	Valid bool
}

// NewRatio calcula numerator/denominator
func NewRatio(numerator, denominator float64) Ratio {
	if denominator == 0 {
		return Ratio{}
	}
	return Ratio{Value: numerator / denominator, Valid: true}
}

// NewPercent calcula numerator/denominator*100
func NewPercent(numerator, denominator float64) Ratio {
	r := NewRatio(numerator, denominator)
	if r.Valid {
		r.Value *= 100
	}
	return r
}

// OrZero retorna o valor ou zero quando indefinido
func (r Ratio) OrZero() float64 {
	if !r.Valid {
		return 0
	}
	return r.Value
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, r.Value, 'f', -1, 64), nil
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ratio{}
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}

	*r = Ratio{Value: v, Valid: true}
	return nil
}
