package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forum/pkg/logger"
	"github.com/dmitrymomot/forum/pkg/requestid"
)

func serve(t *testing.T, incoming string) (seen string, rec *httptest.ResponseRecorder) {
	t.Helper()

	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
	if incoming != "" {
		req.Header.Set(requestid.Header, incoming)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates id", func(t *testing.T) {
		t.Parallel()

		seen, rec := serve(t, "")
		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header))
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})

	t.Run("keeps valid incoming id", func(t *testing.T) {
		t.Parallel()

		seen, rec := serve(t, "edge-proxy_42")
		assert.Equal(t, "edge-proxy_42", seen)
		assert.Equal(t, "edge-proxy_42", rec.Header().Get(requestid.Header))
	})

	invalid := map[string]string{
		"spaces":   "id with spaces",
		"slashes":  "id/with/slashes",
		"markup":   "<script>",
		"newline":  "line\nbreak",
		"too long": strings.Repeat("a", 129),
	}
	for name, id := range invalid {
		t.Run("replaces "+name, func(t *testing.T) {
			t.Parallel()

			seen, _ := serve(t, id)
			assert.NotEqual(t, id, seen)
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "abc", requestid.FromContext(requestid.WithContext(context.Background(), "abc")))
}

func TestLogExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextExtractors(requestid.LogExtractor),
	)

	log.InfoContext(requestid.WithContext(context.Background(), "req-1"), "login")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	buf.Reset()
	log.InfoContext(context.Background(), "login")
	assert.NotContains(t, buf.String(), "request_id")
}
