package metrics

import (
	"sort"
	"strings"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

type categoryKey struct {
	salesperson string
	category    string
	subcategory string
}

func (k categoryKey) less(o categoryKey) bool {
	if k.salesperson != o.salesperson {
		return k.salesperson < o.salesperson
	}
	if k.category != o.category {
		return k.category < o.category
	}
	return k.subcategory < o.subcategory
}

// CategoryAttainment compara as vendas com as metas por vendedor e categoria
// (ou subcategoria). Apenas combinações com venda aparecem no resultado.
func (e *Engine) CategoryAttainment(level domain.CategoryLevel) ([]*domain.CategoryAttainmentRow, error) {
	sales := e.sales
	if err := validateSales(sales); err != nil {
		return nil, err
	}
	if err := validateBudget(e.budget); err != nil {
		return nil, err
	}

	keyOf := func(salesperson, category, subcategory string) (categoryKey, bool) {
		k := categoryKey{salesperson: salesperson, category: strings.TrimSpace(category)}
		if k.category == "" {
			return k, false
		}
		if level == domain.LevelSubcategory {
			k.subcategory = strings.TrimSpace(subcategory)
			if k.subcategory == "" {
				return k, false
			}
		}
		return k, true
	}

	realized := map[categoryKey]float64{}
	for _, s := range sales {
		if k, ok := keyOf(s.SalespersonID, s.Category, s.Subcategory); ok {
			realized[k] += s.Amount
		}
	}

	targets := map[categoryKey]float64{}
	for _, b := range e.budget {
		if k, ok := keyOf(b.SalespersonID, b.Category, b.Subcategory); ok {
			targets[k] += b.Amount
		}
	}

	keys := make([]categoryKey, 0, len(realized))
	for k := range realized {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	rows := make([]*domain.CategoryAttainmentRow, 0, len(keys))
	for _, k := range keys {
		target := targets[k]
		rows = append(rows, &domain.CategoryAttainmentRow{
			SalespersonID:  k.salesperson,
			Category:       k.category,
			Subcategory:    k.subcategory,
			RealizedAmount: realized[k],
			TargetAmount:   target,
			Percent:        domain.NewPercent(realized[k], target),
		})
	}

	return rows, nil
}
