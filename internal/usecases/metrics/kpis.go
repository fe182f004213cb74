package metrics

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// BasicKPIs calcula clientes e documentos distintos, frequência de compra,
// ticket médio (valor por documento) e fatura média (valor por cliente).
func (e *Engine) BasicKPIs() (*domain.BasicKPIs, error) {
	sales := e.sales
	if err := validateSales(sales); err != nil {
		return nil, err
	}

	clients := stringSet{}
	invoices := stringSet{}
	invoicesByClient := map[string]stringSet{}
	amount := 0.0

	for _, s := range sales {
		clients.add(s.ClientID)
		invoices.add(s.InvoiceID)
		if _, ok := invoicesByClient[s.ClientID]; !ok {
			invoicesByClient[s.ClientID] = stringSet{}
		}
		invoicesByClient[s.ClientID].add(s.InvoiceID)
		amount += s.Amount
	}

	perClient := 0.0
	for _, inv := range invoicesByClient {
		perClient += float64(len(inv))
	}

	return &domain.BasicKPIs{
		UniqueClients:     len(clients),
		UniqueInvoices:    len(invoices),
		PurchaseFrequency: domain.NewRatio(perClient, float64(len(invoicesByClient))),
		AverageTicket:     domain.NewRatio(amount, float64(len(invoices))),
		AverageInvoice:    domain.NewRatio(amount, float64(len(clients))),
	}, nil
}
