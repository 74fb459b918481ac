package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestGeminiGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-2.5-flash:generateContent" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("api key header = %q", r.Header.Get("x-goog-api-key"))
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		if req.Contents[0].Parts[0].Text != "forecast please" {
			t.Errorf("prompt = %q", req.Contents[0].Parts[0].Text)
		}
		if req.GenerationConfig.MaxOutputTokens != 20000 {
			t.Errorf("maxOutputTokens = %d", req.GenerationConfig.MaxOutputTokens)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"locations\":"},{"text":"[]}"}]}}]}`))
	}))
	defer server.Close()

	g := NewGeminiGenerator("test-key", Options{Temperature: 0.7})
	g.baseURL = server.URL

	got, err := g.Generate(context.Background(), "forecast please")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != `{"locations":[]}` {
		t.Errorf("Generate() = %q", got)
	}
}

func TestGeminiGenerator_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, "boom"},
		{"no candidates", http.StatusOK, `{"candidates":[]}`},
		{"bad json", http.StatusOK, `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			g := NewGeminiGenerator("k", Options{})
			g.baseURL = server.URL

			if _, err := g.Generate(context.Background(), "p"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestOpenAIGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}

		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		if req["model"] != "gpt-3.5-turbo" {
			t.Errorf("model = %v", req["model"])
		}
		if req["max_tokens"] != float64(2000) {
			t.Errorf("max_tokens = %v", req["max_tokens"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-3.5-turbo",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]string{"role": "assistant", "content": "hello"},
				},
			},
		})
	}))
	defer server.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	g := NewOpenAIGeneratorWithConfig(cfg, Options{Temperature: 0.7})

	got, err := g.Generate(context.Background(), "forecast please")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("Generate() = %q, want hello", got)
	}
}

func TestOpenAIGenerator_ZeroTemperature(t *testing.T) {
	var sent map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer server.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	g := NewOpenAIGeneratorWithConfig(cfg, Options{Temperature: 0})

	if _, err := g.Generate(context.Background(), "p"); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	temp, ok := sent["temperature"].(float64)
	if !ok {
		t.Fatalf("temperature missing from request: %v", sent)
	}
	if temp <= 0 || temp > 0.001 {
		t.Errorf("temperature = %v, want a value just above zero", temp)
	}
}

func TestOpenAIGenerator_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	cfg := openai.DefaultConfig("nope")
	cfg.BaseURL = server.URL + "/v1"
	g := NewOpenAIGeneratorWithConfig(cfg, Options{})

	if _, err := g.Generate(context.Background(), "p"); err == nil {
		t.Error("expected error, got nil")
	}
}
