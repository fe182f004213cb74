package domain

// AvailablePeriods representa os períodos presentes na tabela de vendas
type AvailablePeriods struct {
	Years  []int    `json:"years"`  // Anos em ordem decrescente
	Months []string `json:"months"` // Meses em ordem de calendário
	Weeks  []int    `json:"weeks"`  // Semanas ISO em ordem decrescente
}
