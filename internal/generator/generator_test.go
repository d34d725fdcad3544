package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "test-model",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	})
	return string(body)
}

func TestClient_Example(t *testing.T) {
	var gotAuth, gotModel, gotPrompt string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotModel = req.Model
		if len(req.Messages) > 0 {
			gotPrompt = req.Messages[0].Content
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("  I ate an apple.\nЯ съел яблоко.  ")))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"})

	text, err := client.Example(context.Background(), "apple")

	require.NoError(t, err)
	assert.Equal(t, "I ate an apple.\nЯ съел яблоко.", text)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotModel)
	assert.Contains(t, gotPrompt, `"apple"`)
}

func TestClient_Example_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		isEmpty bool
	}{
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"error":{"message":"boom","type":"server_error"}}`,
		},
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"error":{"message":"bad key","type":"invalid_request_error"}}`,
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`,
			isEmpty: true,
		},
		{
			name:    "blank content",
			status:  http.StatusOK,
			body:    completionBody("   "),
			isEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(Config{APIKey: "k", BaseURL: srv.URL})

			text, err := client.Example(context.Background(), "apple")

			assert.Error(t, err)
			assert.Empty(t, text)
			if tt.isEmpty {
				assert.ErrorIs(t, err, ErrEmptyCompletion)
			}
		})
	}
}

func TestClient_Example_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := client.Example(context.Background(), "apple")

	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k"})

	assert.Equal(t, DefaultModel, client.model)
	assert.Equal(t, DefaultTimeout, client.timeout)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("look after")

	assert.Contains(t, prompt, `"look after"`)
	assert.Contains(t, prompt, "Russian")
}
