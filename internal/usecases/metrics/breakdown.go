package metrics

import (
	"sort"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// MonthlySalesPivot monta a matriz vendedor x mês com o total vendido.
// Apenas os meses presentes nas vendas aparecem, em ordem de calendário.
func (e *Engine) MonthlySalesPivot() (*domain.SalesPivot, error) {
	sales := e.sales
	if err := validateSales(sales); err != nil {
		return nil, err
	}

	present := [12]bool{}
	amounts := map[string]*[12]float64{}
	for _, s := range sales {
		m, ok := domain.MonthNumber(s.Month)
		if !ok {
			continue
		}
		present[m-1] = true
		row, ok := amounts[s.SalespersonID]
		if !ok {
			row = &[12]float64{}
			amounts[s.SalespersonID] = row
		}
		row[m-1] += s.Amount
	}

	pivot := &domain.SalesPivot{Months: []string{}, Rows: []domain.SalesPivotRow{}}
	columns := []int{}
	for i, ok := range present {
		if ok {
			columns = append(columns, i)
			pivot.Months = append(pivot.Months, domain.MonthNames[i])
		}
	}

	salespeople := make([]string, 0, len(amounts))
	for sp := range amounts {
		salespeople = append(salespeople, sp)
	}
	sort.Strings(salespeople)

	for _, sp := range salespeople {
		row := domain.SalesPivotRow{SalespersonID: sp, Amounts: make([]float64, 0, len(columns))}
		for _, c := range columns {
			row.Amounts = append(row.Amounts, amounts[sp][c])
			row.Total += amounts[sp][c]
		}
		pivot.Rows = append(pivot.Rows, row)
	}

	return pivot, nil
}

type productKey struct {
	salesperson string
	code        string
	description string
}

// TopProducts retorna, por vendedor, os produtos com maior valor vendido limitados a limit
func (e *Engine) TopProducts(limit int) ([]*domain.SalespersonProducts, error) {
	sales := e.sales
	if err := validateSales(sales); err != nil {
		return nil, err
	}

	totals := map[productKey]*domain.ProductSales{}
	for _, s := range sales {
		k := productKey{salesperson: s.SalespersonID, code: s.ProductCode, description: s.ProductDescription}
		p, ok := totals[k]
		if !ok {
			p = &domain.ProductSales{ProductCode: s.ProductCode, Description: s.ProductDescription}
			totals[k] = p
		}
		p.Amount += s.Amount
		p.Quantity += s.Quantity
	}

	bySalesperson := map[string][]domain.ProductSales{}
	for k, p := range totals {
		bySalesperson[k.salesperson] = append(bySalesperson[k.salesperson], *p)
	}

	salespeople := make([]string, 0, len(bySalesperson))
	for sp := range bySalesperson {
		salespeople = append(salespeople, sp)
	}
	sort.Strings(salespeople)

	result := make([]*domain.SalespersonProducts, 0, len(salespeople))
	for _, sp := range salespeople {
		products := bySalesperson[sp]
		sort.Slice(products, func(i, j int) bool {
			if products[i].Amount != products[j].Amount {
				return products[i].Amount > products[j].Amount
			}
			return products[i].ProductCode < products[j].ProductCode
		})
		if limit > 0 && len(products) > limit {
			products = products[:limit]
		}
		result = append(result, &domain.SalespersonProducts{SalespersonID: sp, Products: products})
	}

	return result, nil
}
