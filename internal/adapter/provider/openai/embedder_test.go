package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/journalmind/journalmind-backend/internal/config"
)

func newTestEmbedder(t *testing.T, handler http.HandlerFunc) *Embedder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(config.EmbeddingConfig{
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		Model:      "text-embedding-3-small",
		Dimensions: 3,
		Timeout:    5 * time.Second,
		MaxRetries: 2,
	}, slog.Default())
}

func embeddingsJSON(vectors ...[]float64) []byte {
	type datum struct {
		Index     int       `json:"index"`
		Embedding []float64 `json:"embedding"`
	}
	var resp struct {
		Data []datum `json:"data"`
	}
	for i, v := range vectors {
		resp.Data = append(resp.Data, datum{Index: i, Embedding: v})
	}
	raw, _ := json.Marshal(resp)
	return raw
}

func TestEmbed_Success(t *testing.T) {
	t.Parallel()

	e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/embeddings" {
			t.Errorf("path: got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization header: got %q", got)
		}
		w.Write(embeddingsJSON([]float64{1, 0, 0}))
	})

	vectors, err := e.Embed(context.Background(), []string{"I learned recursion today"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 1 || len(vectors[0]) != 3 {
		t.Fatalf("vectors: got %v", vectors)
	}
	if vectors[0][0] != 1 {
		t.Errorf("vector[0][0]: got %v, want 1", vectors[0][0])
	}
}

func TestEmbed_EmptyInput(t *testing.T) {
	t.Parallel()

	e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty input")
	})

	vectors, err := e.Embed(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vectors != nil {
		t.Errorf("vectors: got %v, want nil", vectors)
	}
}

func TestEmbed_TotalFailureIsEmptyNotError(t *testing.T) {
	t.Parallel()

	e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	vectors, err := e.Embed(context.Background(), []string{"anything"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 0 {
		t.Errorf("vectors: got %v, want empty", vectors)
	}
}

func TestEmbed_PartialResultRejected(t *testing.T) {
	t.Parallel()

	e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(embeddingsJSON([]float64{1, 0, 0}))
	})

	if _, err := e.Embed(context.Background(), []string{"one", "two"}); err == nil {
		t.Error("partial result accepted")
	}
}

func TestEmbed_DimensionMismatchRejected(t *testing.T) {
	t.Parallel()

	e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(embeddingsJSON([]float64{1, 0}))
	})

	if _, err := e.Embed(context.Background(), []string{"short vector"}); err == nil {
		t.Error("wrong-dimension vector accepted")
	}
}

func TestEmbed_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		w.Write(embeddingsJSON([]float64{0, 1, 0}))
	})

	vectors, err := e.Embed(context.Background(), []string{"retry me"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 1 {
		t.Fatalf("vectors: got %d, want 1", len(vectors))
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls: got %d, want 2", got)
	}
}

func TestEmbed_NoRetryOn4xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	if _, err := e.Embed(context.Background(), []string{"nope"}); err == nil {
		t.Fatal("4xx response accepted")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls: got %d, want 1 (no retry)", got)
	}
}
