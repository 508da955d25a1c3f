package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type capturedRequest struct {
	path   string
	apiKey string
	body   map[string]any
}

func newGeminiServer(t *testing.T, status int, reply string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.apiKey = r.Header.Get("x-goog-api-key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &captured.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("NewGeminiClient() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestGeminiClientGenerate(t *testing.T) {
	srv, captured := newGeminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello"}]},"finishReason":"STOP"}]}`)

	client, err := NewGeminiClient(context.Background(), "test-key", "gemini-flash-latest", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewGeminiClient() error = %v", err)
	}

	got, err := client.Generate(context.Background(), Prompt{SystemInstruction: "be brief", Message: "hi"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "Hello" {
		t.Errorf("Generate() = %q, want %q", got, "Hello")
	}

	if captured.apiKey != "test-key" {
		t.Errorf("api key header = %q, want %q", captured.apiKey, "test-key")
	}
	if !strings.HasSuffix(captured.path, "gemini-flash-latest:generateContent") {
		t.Errorf("path = %q, want generateContent call", captured.path)
	}

	gen, ok := captured.body["generationConfig"].(map[string]any)
	if !ok {
		t.Fatalf("request has no generationConfig: %v", captured.body)
	}
	// float32 values may come back with float64 rounding noise
	if v, _ := gen["temperature"].(float64); math.Abs(v-0.5) > 1e-6 {
		t.Errorf("temperature = %v, want 0.5", gen["temperature"])
	}
	if v, _ := gen["topP"].(float64); math.Abs(v-0.8) > 1e-6 {
		t.Errorf("topP = %v, want 0.8", gen["topP"])
	}
	if gen["maxOutputTokens"] != float64(8192) {
		t.Errorf("maxOutputTokens = %v, want 8192", gen["maxOutputTokens"])
	}

	sys, _ := json.Marshal(captured.body["systemInstruction"])
	if !strings.Contains(string(sys), "be brief") {
		t.Errorf("systemInstruction = %s, want instruction text", sys)
	}
	contents, _ := json.Marshal(captured.body["contents"])
	if !strings.Contains(string(contents), "hi") {
		t.Errorf("contents = %s, want user message", contents)
	}
}

func TestGeminiClientGenerateErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		reply     string
		wantEmpty bool
	}{
		{name: "no candidates", status: http.StatusOK, reply: `{"candidates":[]}`, wantEmpty: true},
		{name: "empty text", status: http.StatusOK, reply: `{"candidates":[{"content":{"parts":[{"text":""}]}}]}`, wantEmpty: true},
		{name: "quota", status: http.StatusTooManyRequests, reply: `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`},
		{name: "server error", status: http.StatusInternalServerError, reply: `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newGeminiServer(t, tt.status, tt.reply)
			client, err := NewGeminiClient(context.Background(), "test-key", "", WithBaseURL(srv.URL))
			if err != nil {
				t.Fatalf("NewGeminiClient() error = %v", err)
			}

			got, err := client.Generate(context.Background(), Prompt{Message: "hi"})
			if err == nil {
				t.Fatalf("Generate() = %q, want error", got)
			}
			if tt.wantEmpty && !errors.Is(err, ErrEmptyResponse) {
				t.Errorf("Generate() error = %v, want ErrEmptyResponse", err)
			}
		})
	}
}
