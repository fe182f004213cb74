package sheetsclient

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Client interface {
	Download(ctx context.Context, url string) ([][]string, error)
}

type SheetsClient struct {
	httpClient *http.Client
}

// NewClient cria o cliente que baixa as planilhas exportadas em CSV
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Sheets.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *SheetsClient) Download(ctx context.Context, url string) ([][]string, error) {
	if url == "" {
		return nil, errors.New("URL da planilha não configurada")
	}

	body, err := utils.MakeRequest(ctx, c.httpClient, url)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao baixar a planilha")
	}

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(body, utf8BOM)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o CSV da planilha")
	}

	return rows, nil
}
