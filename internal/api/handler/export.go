package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

func exportFormat(r *http.Request, fallback exporting.Format) exporting.Format {
	format := exporting.Format(strings.ToLower(r.URL.Query().Get("format")))
	if format == "" {
		return fallback
	}
	return format
}

// ExportSales gera o relatório da consulta de vendas em xlsx ou csv
func ExportSales(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseSalesQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		format := exportFormat(r, exporting.FormatXLSX)
		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		file, err := service.ExportSales(scope, query, format)
		if err != nil {
			writeServiceError(w, err, "Erro ao exportar vendas")
			return
		}

		logrus.WithFields(logrus.Fields{
			"format": format,
			"bytes":  len(file.Content),
		}).Info("Relatório de vendas exportado")

		writeFile(w, file)
	}
}

// ExportAttainment gera o relatório de cumprimento de metas em xlsx ou pdf
func ExportAttainment(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		format := exportFormat(r, exporting.FormatXLSX)
		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		file, condition, err := service.ExportAttainment(scope, filters, format)
		if err != nil {
			writeServiceError(w, err, "Erro ao exportar o cumprimento de metas")
			return
		}

		if condition != domain.ConditionNone {
			writeReport(w, condition, filters, nil)
			return
		}

		writeFile(w, file)
	}
}
