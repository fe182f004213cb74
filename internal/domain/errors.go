package domain

import (
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("campo obrigatório ausente")

// FieldError identifica um registro de entrada malformado.
// Row igual a -1 indica que a coluna inteira está ausente.
type FieldError struct {
	Table string
	Row   int
	Field string
}

func (e *FieldError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: coluna obrigatória %q ausente", e.Table, e.Field)
	}
	return fmt.Sprintf("%s: campo obrigatório %q ausente na linha %d", e.Table, e.Field, e.Row)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}
