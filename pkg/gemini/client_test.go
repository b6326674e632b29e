package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"herbal/pkg/gemini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := gemini.NewClient(gemini.Config{})
	assert.Error(t, err)
}

func TestGenerate_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Turmeric "},{"text":"soothes joints."}]}}]}`))
	}))
	defer srv.Close()

	client, err := gemini.NewClient(gemini.Config{APIKey: "secret", Model: "test-model", BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)

	reply, err := client.Generate(context.Background(), "be helpful", "what is turmeric?")
	require.NoError(t, err)
	assert.Equal(t, "Turmeric soothes joints.", reply)
	assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
	assert.Equal(t, "secret", gotKey)
	assert.Contains(t, gotBody, "systemInstruction")
	assert.Contains(t, gotBody, "contents")
}

func TestGenerate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota"}}`))
	}))
	defer srv.Close()

	client, err := gemini.NewClient(gemini.Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "", "hi")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client, err := gemini.NewClient(gemini.Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "", "hi")
	assert.ErrorIs(t, err, gemini.ErrEmptyResponse)
}

func TestGenerate_CanceledContext(t *testing.T) {
	client, err := gemini.NewClient(gemini.Config{APIKey: "k", BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.Generate(ctx, "", "hi")
	assert.ErrorIs(t, err, context.Canceled)
}
