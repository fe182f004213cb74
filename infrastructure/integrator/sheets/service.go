package sheets

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-performance-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

type SheetsIntegrator interface {
	GetSalesRecords(ctx context.Context) ([]*domain.SalesRecord, error)
	GetBudgetRecords(ctx context.Context) ([]*domain.BudgetRecord, error)
	GetCallRecords(ctx context.Context) ([]*domain.CallRecord, error)
}

type SheetsService struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SheetsService) GetSalesRecords(ctx context.Context) ([]*domain.SalesRecord, error) {
	rows, err := s.Client.Download(ctx, s.cfg.Sheets.SalesURL)
	if err != nil {
		return nil, errors.Wrap(err, "vendas")
	}

	return ParseSales(rows)
}

func (s *SheetsService) GetBudgetRecords(ctx context.Context) ([]*domain.BudgetRecord, error) {
	rows, err := s.Client.Download(ctx, s.cfg.Sheets.BudgetURL)
	if err != nil {
		return nil, errors.Wrap(err, "metas")
	}

	return ParseBudget(rows)
}

// GetCallRecords retorna vazio quando a planilha de ligações não está configurada
func (s *SheetsService) GetCallRecords(ctx context.Context) ([]*domain.CallRecord, error) {
	if s.cfg.Sheets.CallsURL == "" {
		return []*domain.CallRecord{}, nil
	}

	rows, err := s.Client.Download(ctx, s.cfg.Sheets.CallsURL)
	if err != nil {
		return nil, errors.Wrap(err, "ligações")
	}

	return ParseCalls(rows)
}
