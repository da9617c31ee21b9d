package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
)

type capturedRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

// completionServer answers every chat completion with content and records the last request.
func completionServer(t *testing.T, status int, content string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	var got capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "gpt-4o",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func newTestClient(srv *httptest.Server) *OpenAI {
	return NewOpenAI("test-key", WithBaseURL(srv.URL+"/"))
}

func TestRespond(t *testing.T) {
	srv, got := completionServer(t, http.StatusOK, "Take a slow breath with me.")

	reply := newTestClient(srv).Respond(context.Background(), "I feel anxious")

	assert.Equal(t, "Take a slow breath with me.", reply)
	assert.Equal(t, DefaultModel, got.Model)
	assert.Equal(t, 300, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "Healing Minds platform")
	assert.Equal(t, "I feel anxious", got.Messages[1].Content)
	assert.Nil(t, got.ResponseFormat)
}

func TestRespondFallbacks(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv, _ := completionServer(t, http.StatusInternalServerError, "")
		assert.Equal(t, FallbackReply, newTestClient(srv).Respond(context.Background(), "hi"))
	})

	t.Run("empty content", func(t *testing.T) {
		srv, _ := completionServer(t, http.StatusOK, "")
		assert.Equal(t, FallbackEmptyReply, newTestClient(srv).Respond(context.Background(), "hi"))
	})
}

func TestRecommend(t *testing.T) {
	srv, got := completionServer(t, http.StatusOK,
		`{"resources":[{"title":"Box breathing","description":"Four counts in, hold, out, hold.","resourceType":"Technique"}]}`)

	resources := newTestClient(srv).Recommend(context.Background(), "anxious", "work deadlines")

	require.Len(t, resources, 1)
	assert.Equal(t, "Box breathing", resources[0].Title)
	assert.Equal(t, ResourceTechnique, resources[0].ResourceType)
	assert.Equal(t, "My current mood is anxious. I'm concerned about: work deadlines", got.Messages[1].Content)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
}

func TestRecommendMalformedJSON(t *testing.T) {
	srv, _ := completionServer(t, http.StatusOK, "not json")

	resources := newTestClient(srv).Recommend(context.Background(), "sad", "sleep")

	assert.NotNil(t, resources)
	assert.Empty(t, resources)
}

func TestAnalyzeMood(t *testing.T) {
	srv, got := completionServer(t, http.StatusOK,
		`{"summary":"Mostly calm.","insights":["Mornings are better"],"suggestions":["Keep journaling"]}`)

	analysis := newTestClient(srv).AnalyzeMood(context.Background(), []entity.MoodSample{
		{Mood: "calm", Date: "2025-03-01", Note: "walk"},
	})

	assert.Equal(t, "Mostly calm.", analysis.Summary)
	assert.Equal(t, []string{"Mornings are better"}, analysis.Insights)
	assert.Equal(t, []string{"Keep journaling"}, analysis.Suggestions)
	assert.Equal(t, `Here are my mood entries: [{"mood":"calm","date":"2025-03-01","note":"walk"}]`, got.Messages[1].Content)
}

func TestAnalyzeMoodFallback(t *testing.T) {
	srv, _ := completionServer(t, http.StatusBadGateway, "")

	analysis := newTestClient(srv).AnalyzeMood(context.Background(), nil)

	assert.Equal(t, FallbackAnalysis(), analysis)
}

func TestOffline(t *testing.T) {
	var a Assistant = Offline{}
	ctx := context.Background()

	assert.Equal(t, FallbackReply, a.Respond(ctx, "hello"))
	assert.Empty(t, a.Recommend(ctx, "ok", "nothing"))
	assert.Equal(t, FallbackAnalysis(), a.AnalyzeMood(ctx, nil))
}
