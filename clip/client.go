// Package clip talks to the external CLIP inference service that turns
// images and text into fixed-length embedding vectors. The service is an
// external collaborator; this package only does the HTTP plumbing.
package clip

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the embedding-service handle. It is constructed once at startup
// and passed into whatever needs embeddings, so tests can swap in a double.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Client for the CLIP inference service at endpoint.
func NewClient(endpoint string) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("clip: endpoint is required")
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

type embedRequest struct {
	Text        string `json:"text,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
}

type embedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// EmbedText returns the embedding vector for a text phrase.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float64, error) {
	if text == "" {
		return nil, fmt.Errorf("clip: text is empty")
	}
	return c.embed(ctx, "/embed/text", embedRequest{Text: text})
}

// EmbedImage returns the embedding vector for raw image bytes.
func (c *Client) EmbedImage(ctx context.Context, image []byte) ([]float64, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("clip: image is empty")
	}
	return c.embed(ctx, "/embed/image", embedRequest{
		ImageBase64: base64.StdEncoding.EncodeToString(image),
	})
}

func (c *Client) embed(ctx context.Context, path string, payload embedRequest) ([]float64, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("clip: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("clip: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clip: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("clip: service returned %d: %s", resp.StatusCode, string(raw))
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("clip: failed to decode response: %w", err)
	}
	if len(out.Embedding) == 0 {
		return nil, fmt.Errorf("clip: service returned an empty embedding")
	}

	return out.Embedding, nil
}
