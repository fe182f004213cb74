package reporting

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrInvalidMonth    = errors.New("invalid month")
	ErrInvalidYear     = errors.New("invalid year")
	ErrInvalidWeek     = errors.New("invalid week")
	ErrInvalidGrouping = errors.New("invalid grouping")

	// Erros de banco de dados
	ErrFetchSales  = errors.New("error fetching sales records")
	ErrFetchBudget = errors.New("error fetching budget records")

	// Erros de cálculo
	ErrMalformedData = errors.New("malformed input data")
)

// ReportError é um erro com contexto adicional para os relatórios
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
