// Package exporting gera os arquivos de exportação das consultas de vendas e do cumprimento de metas
package exporting

import (
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/reporting"
)

type Exporter interface {
	ExportSales(scope domain.AccessScope, query domain.SalesQuery, format Format) (*File, error)
	ExportAttainment(scope domain.AccessScope, filters domain.ReportFilters, format Format) (*File, domain.Condition, error)
}

type Service struct {
	reporter reporting.Reporter
}

func NewService(reporter reporting.Reporter) Exporter {
	return &Service{
		reporter: reporter,
	}
}

func (s *Service) ExportSales(scope domain.AccessScope, query domain.SalesQuery, format Format) (*File, error) {
	if format != FormatXLSX && format != FormatCSV {
		return nil, ErrUnsupportedFormat
	}

	result, err := s.reporter.QuerySales(scope, query)
	if err != nil {
		return nil, err
	}

	var content []byte
	if format == FormatXLSX {
		content, err = SalesXLSX(result)
	} else {
		content, err = SalesCSV(result)
	}
	if err != nil {
		logrus.WithError(err).WithField("format", format).Error("exporting: erro ao gerar arquivo de vendas")
		return nil, err
	}

	return newFile("reporte_ventas", format, content), nil
}

func (s *Service) ExportAttainment(scope domain.AccessScope, filters domain.ReportFilters, format Format) (*File, domain.Condition, error) {
	if format != FormatXLSX && format != FormatPDF {
		return nil, domain.ConditionNone, ErrUnsupportedFormat
	}

	report, condition, err := s.reporter.GetGoalAttainment(scope, filters)
	if err != nil || condition != domain.ConditionNone {
		return nil, condition, err
	}

	var content []byte
	if format == FormatXLSX {
		content, err = AttainmentXLSX(report)
	} else {
		content, err = AttainmentPDF(report)
	}
	if err != nil {
		logrus.WithError(err).WithField("format", format).Error("exporting: erro ao gerar arquivo de cumprimento")
		return nil, domain.ConditionNone, err
	}

	return newFile("cumplimiento_metas", format, content), domain.ConditionNone, nil
}
