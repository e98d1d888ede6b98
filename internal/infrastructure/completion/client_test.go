package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attriflow/backend/internal/domain"
)

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/test-model", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload generationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "extract the attributes", payload.Inputs)
		assert.False(t, payload.Parameters.ReturnFullText)
		assert.Equal(t, 1000, payload.Parameters.MaxNewTokens)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"generated_text": "here are the attributes"}]`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model")

	text, err := client.Complete(context.Background(), "extract the attributes")
	require.NoError(t, err)
	assert.Equal(t, "here are the attributes", text)
}

func TestComplete_SingleObjectResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generated_text": "single shape"}`))
	}))
	defer server.Close()

	client := NewClient("", server.URL, "test-model")

	text, err := client.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "single shape", text)
}

func TestComplete_NoAPIKeyOmitsAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[{"generated_text": "ok"}]`))
	}))
	defer server.Close()

	client := NewClient("", server.URL, "test-model")

	_, err := client.Complete(context.Background(), "prompt")
	require.NoError(t, err)
}

func TestComplete_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model")

	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, domain.ErrCompletionRateLimited)
}

func TestComplete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model")

	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, domain.ErrCompletionFailure)
}

func TestComplete_SingleAttempt(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model")

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDecodeGeneratedText(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "array shape", body: `[{"generated_text": "a"}]`, want: "a"},
		{name: "object shape", body: `{"generated_text": "b"}`, want: "b"},
		{name: "empty array", body: `[]`, wantErr: true},
		{name: "empty object", body: `{}`, wantErr: true},
		{name: "not json", body: `oops`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeGeneratedText([]byte(tc.body))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
