package metrics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// QuerySales filtra as vendas por produto, descrição ou cliente e calcula os totais.
// Quando a descrição é informada ela é resolvida para o código do primeiro produto
// com aquela descrição.
func (e *Engine) QuerySales(q domain.SalesQuery) (*domain.SalesQueryResult, error) {
	sales := e.sales
	if err := validateSales(sales); err != nil {
		return nil, err
	}
	if !q.GroupBy.IsValid() {
		return nil, fmt.Errorf("agrupamento inválido: %s", q.GroupBy)
	}

	code := strings.TrimSpace(q.ProductCode)
	title := "Todas las ventas"
	switch {
	case code != "":
		title = "Producto " + code
	case strings.TrimSpace(q.Description) != "":
		desc := strings.TrimSpace(q.Description)
		title = "Producto " + desc
		code = resolveProductCode(sales, desc)
		if code == "" {
			return &domain.SalesQueryResult{Title: title, Records: []*domain.SalesRecord{}}, nil
		}
	case strings.TrimSpace(q.ClientName) != "":
		title = "Cliente " + strings.TrimSpace(q.ClientName)
	}

	client := strings.TrimSpace(q.ClientName)
	salespeople := stringSet{}
	for _, sp := range q.Salespeople {
		salespeople.add(sp)
	}

	records := []*domain.SalesRecord{}
	for _, s := range sales {
		if code != "" && s.ProductCode != code {
			continue
		}
		if code == "" && client != "" && !strings.EqualFold(s.ClientName, client) {
			continue
		}
		if !inDateRange(s.Date, q.StartDate, q.EndDate) {
			continue
		}
		if len(salespeople) > 0 {
			if _, ok := salespeople[s.SalespersonID]; !ok {
				continue
			}
		}
		records = append(records, s)
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })

	return &domain.SalesQueryResult{
		Title:   title,
		Records: records,
		Groups:  groupSales(records, q.GroupBy),
		Totals:  salesTotals(records),
	}, nil
}

func resolveProductCode(sales []*domain.SalesRecord, description string) string {
	for _, s := range sales {
		if strings.EqualFold(strings.TrimSpace(s.ProductDescription), description) {
			return s.ProductCode
		}
	}
	return ""
}

func inDateRange(d time.Time, start, end *time.Time) bool {
	day := d.Format(time.DateOnly)
	if start != nil && day < start.Format(time.DateOnly) {
		return false
	}
	if end != nil && day > end.Format(time.DateOnly) {
		return false
	}
	return true
}

func groupKey(s *domain.SalesRecord, g domain.SalesGrouping) string {
	switch g {
	case domain.GroupSalesperson:
		return s.SalespersonID
	case domain.GroupClient:
		return s.ClientName
	case domain.GroupMonth:
		return s.Date.Format("2006-01")
	case domain.GroupYear:
		return strconv.Itoa(s.Date.Year())
	}
	return ""
}

func groupSales(records []*domain.SalesRecord, g domain.SalesGrouping) []domain.SalesGroup {
	if g == domain.GroupNone {
		return nil
	}

	groups := map[string]*domain.SalesGroup{}
	invoices := map[string]stringSet{}
	for _, s := range records {
		k := groupKey(s, g)
		grp, ok := groups[k]
		if !ok {
			grp = &domain.SalesGroup{Key: k}
			groups[k] = grp
			invoices[k] = stringSet{}
		}
		grp.Quantity += s.Quantity
		grp.Amount += s.Amount
		invoices[k].add(s.InvoiceID)
	}

	result := make([]domain.SalesGroup, 0, len(groups))
	for k, grp := range groups {
		grp.Transactions = len(invoices[k])
		result = append(result, *grp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })

	return result
}

func salesTotals(records []*domain.SalesRecord) domain.SalesTotals {
	totals := domain.SalesTotals{}
	invoices := stringSet{}
	for _, s := range records {
		totals.Units += s.Quantity
		totals.Amount += s.Amount
		invoices.add(s.InvoiceID)
	}
	totals.Invoices = len(invoices)
	totals.AverageUnitPrice = domain.NewRatio(totals.Amount, totals.Units)
	totals.AverageTicket = domain.NewRatio(totals.Amount, float64(totals.Invoices))
	return totals
}
