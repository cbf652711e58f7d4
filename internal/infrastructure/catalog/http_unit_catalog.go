package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"buildquote/internal/domain/entities"
	"buildquote/internal/usecase/interfaces"
)

var ErrMissingCatalogURL = errors.New("missing UNIT_CATALOG_URL")

// HTTPUnitCatalog fetches the measurement-unit catalog from the upstream
// reference-data service. The upstream is a plain JSON endpoint returning
// an array of units.
type HTTPUnitCatalog struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IUnitCatalog = (*HTTPUnitCatalog)(nil)

func NewHTTPUnitCatalog(baseURL string) (*HTTPUnitCatalog, error) {
	if baseURL == "" {
		log.Printf("[units][gateway] missing UNIT_CATALOG_URL")
		return nil, ErrMissingCatalogURL
	}
	return &HTTPUnitCatalog{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type unitPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Abbreviation string `json:"abbreviation"`
}

func (c *HTTPUnitCatalog) List(ctx context.Context) ([]entities.Unit, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/units", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unit catalog returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload []unitPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	units := make([]entities.Unit, 0, len(payload))
	for _, p := range payload {
		units = append(units, entities.Unit{
			ID:           p.ID,
			Name:         p.Name,
			Symbol:       p.Symbol,
			Abbreviation: p.Abbreviation,
		})
	}
	return units, nil
}
