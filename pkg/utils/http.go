package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// MakeRequest executa um GET e retorna o corpo quando o status é 200
func MakeRequest(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro na requisição: %s status: %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
