package commentary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGenerator_Generate(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(generateResponse{Text: "What a strike!"})
	}))
	defer srv.Close()

	gen := NewHTTPGenerator(srv.URL+"/", "secret", time.Second)
	line, err := gen.Generate(context.Background(), "goal", "Home lead 1 - 0 in Q1")

	require.NoError(t, err)
	assert.Equal(t, "What a strike!", line)
	assert.Equal(t, generateRequest{Event: "goal", Context: "Home lead 1 - 0 in Q1"}, got)
}

func TestHTTPGenerator_NoAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"text":"Half way there."}`))
	}))
	defer srv.Close()

	line, err := NewHTTPGenerator(srv.URL, "", time.Second).Generate(context.Background(), "quarter_end", "")

	require.NoError(t, err)
	assert.Equal(t, "Half way there.", line)
}

func TestHTTPGenerator_Failures(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		unavailable bool
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			unavailable: true,
		},
		{
			name: "empty line",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"text":"  "}`))
			},
			unavailable: true,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"text":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewHTTPGenerator(srv.URL, "", time.Second).Generate(context.Background(), "goal", "")

			require.Error(t, err)
			assert.Equal(t, tt.unavailable, errors.Is(err, ErrUnavailable))
		})
	}
}

func TestHTTPGenerator_RespectsContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewHTTPGenerator(srv.URL, "", 0).Generate(ctx, "goal", "")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// countingGenerator returns "<event>/<detail>" and counts calls
type countingGenerator struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (g *countingGenerator) Generate(_ context.Context, event, detail string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return event + "/" + detail, nil
}

func (g *countingGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func TestCachedGenerator(t *testing.T) {
	ctx := context.Background()

	t.Run("repeats are served from cache", func(t *testing.T) {
		inner := &countingGenerator{}
		c := NewCachedGenerator(inner, 4)

		a, err := c.Generate(ctx, "goal", "1 - 0")
		require.NoError(t, err)
		b, err := c.Generate(ctx, "goal", "1 - 0")
		require.NoError(t, err)

		assert.Equal(t, "goal/1 - 0", a)
		assert.Equal(t, a, b)
		assert.Equal(t, 1, inner.Calls())
	})

	t.Run("oldest entry is evicted", func(t *testing.T) {
		inner := &countingGenerator{}
		c := NewCachedGenerator(inner, 2)

		_, _ = c.Generate(ctx, "goal", "1")
		_, _ = c.Generate(ctx, "goal", "2")
		_, _ = c.Generate(ctx, "goal", "3")
		assert.Equal(t, 2, c.Len())

		_, _ = c.Generate(ctx, "goal", "3") // still cached
		assert.Equal(t, 3, inner.Calls())

		_, _ = c.Generate(ctx, "goal", "1") // evicted, regenerated
		assert.Equal(t, 4, inner.Calls())
	})

	t.Run("failures are not cached", func(t *testing.T) {
		inner := &countingGenerator{err: ErrUnavailable}
		c := NewCachedGenerator(inner, 2)

		_, err := c.Generate(ctx, "goal", "")
		assert.ErrorIs(t, err, ErrUnavailable)
		_, _ = c.Generate(ctx, "goal", "")

		assert.Equal(t, 2, inner.Calls())
		assert.Zero(t, c.Len())
	})
}
