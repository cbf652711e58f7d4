package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"buildquote/internal/domain/compose"
	"buildquote/internal/domain/entities"
	"buildquote/internal/usecase/interfaces"
)

var ErrMissingRenderURL = errors.New("missing RENDER_SERVICE_URL")

// HTTPRenderGateway sends the composed document to the external rendering
// service and returns the binary output. The gateway's contract with the
// caller is that the document it receives is already complete and internally
// consistent; it does no recomputation of its own.
type HTTPRenderGateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IExportRenderer = (*HTTPRenderGateway)(nil)

func NewHTTPRenderGateway(baseURL string) (*HTTPRenderGateway, error) {
	if baseURL == "" {
		log.Printf("[render][gateway] missing RENDER_SERVICE_URL")
		return nil, ErrMissingRenderURL
	}
	return &HTTPRenderGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type renderRequest struct {
	Format   entities.ExportFormat `json:"format"`
	Document compose.Document      `json:"document"`
}

func (g *HTTPRenderGateway) Render(ctx context.Context, doc compose.Document, format entities.ExportFormat) ([]byte, error) {
	body, err := json.Marshal(renderRequest{Format: format, Document: doc})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("[render][gateway] render failed status=%d body=%s", resp.StatusCode, string(msg))
		return nil, fmt.Errorf("render service returned status %d: %s", resp.StatusCode, string(msg))
	}

	return io.ReadAll(resp.Body)
}
