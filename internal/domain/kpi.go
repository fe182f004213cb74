package domain

// BasicKPIs contém os indicadores básicos de um conjunto de vendas
type BasicKPIs struct {
	UniqueClients     int   `json:"unique_clients"`
	UniqueInvoices    int   `json:"unique_invoices"`
	PurchaseFrequency Ratio `json:"purchase_frequency"`
	AverageTicket     Ratio `json:"average_ticket"`
	AverageInvoice    Ratio `json:"average_invoice"`
}
