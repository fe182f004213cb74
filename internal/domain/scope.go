package domain

import "strings"

// AccessScope restringe os dados visíveis ao usuário autenticado.
// Salesperson vazio significa acesso irrestrito.
type AccessScope struct {
	Salesperson string
}

func Unrestricted() AccessScope {
	return AccessScope{}
}

func ScopeFor(salesperson string) AccessScope {
	return AccessScope{Salesperson: strings.TrimSpace(salesperson)}
}

func (s AccessScope) IsRestricted() bool {
	return s.Salesperson != ""
}

// Allows verifica se o vendedor é visível dentro do escopo
func (s AccessScope) Allows(salesperson string) bool {
	return !s.IsRestricted() || s.Salesperson == salesperson
}
