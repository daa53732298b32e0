// Package openai implements the Embedder capability against the OpenAI
// embeddings API. The rest of the system treats embedding as an opaque
// function from texts to fixed-length vectors, so any provider with the
// same wire shape can sit behind the base URL.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"sort"
	"time"

	"github.com/journalmind/journalmind-backend/internal/config"
)

// Embedder calls the embeddings endpoint of an OpenAI-compatible API.
type Embedder struct {
	baseURL    string
	apiKey     string
	model      string
	dimensions int
	maxRetries int
	httpClient *http.Client
	log        *slog.Logger
}

// New creates an Embedder from config.
func New(cfg config.EmbeddingConfig, logger *slog.Logger) *Embedder {
	return &Embedder{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		dimensions: cfg.Dimensions,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "openai"),
	}
}

// Dimensions returns the configured output vector length.
func (e *Embedder) Dimensions() int { return e.dimensions }

type embeddingsRequest struct {
	Model      string   `json:"model"`
	Input      []string `json:"input"`
	Dimensions int      `json:"dimensions,omitempty"`
}

type embeddingsResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Embed converts texts into vectors, preserving input order. A provider
// that returns no vectors at all signals total failure with an empty
// result; partial results are rejected here so callers never see them.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	req := embeddingsRequest{
		Model:      e.model,
		Input:      texts,
		Dimensions: e.dimensions,
	}

	var resp embeddingsResponse
	if err := e.doWithRetry(ctx, "/v1/embeddings", req, &resp); err != nil {
		return nil, fmt.Errorf("openai: embeddings request: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, nil
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai: got %d embeddings for %d inputs", len(resp.Data), len(texts))
	}

	sort.Slice(resp.Data, func(i, j int) bool { return resp.Data[i].Index < resp.Data[j].Index })

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		if len(d.Embedding) != e.dimensions {
			return nil, fmt.Errorf("openai: embedding %d has %d dimensions, expected %d", i, len(d.Embedding), e.dimensions)
		}
		vec := make([]float32, len(d.Embedding))
		for j, f := range d.Embedding {
			vec[j] = float32(f)
		}
		vectors[i] = vec
	}

	return vectors, nil
}

// doWithRetry posts the request, retrying on 408/429/5xx with jittered
// backoff. Caller cancellation stops retries immediately.
func (e *Embedder) doWithRetry(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * 500 * time.Millisecond
			backoff += time.Duration(rand.Int63n(int64(backoff) / 2))
			e.log.DebugContext(ctx, "retrying embeddings request",
				slog.Int("attempt", attempt),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		retryable, err := e.doOnce(ctx, path, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable || ctx.Err() != nil {
			return err
		}
	}

	return lastErr
}

func (e *Embedder) doOnce(ctx context.Context, path string, payload []byte, out any) (retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return true, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return true, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		retry := resp.StatusCode == http.StatusRequestTimeout ||
			resp.StatusCode == http.StatusTooManyRequests ||
			resp.StatusCode >= 500
		return retry, fmt.Errorf("http %d: %s", resp.StatusCode, truncate(raw, 200))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return false, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
