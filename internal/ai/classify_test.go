package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIsOverloaded(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "googleapi 503", err: &googleapi.Error{Code: 503}, want: true},
		{name: "wrapped googleapi 503", err: fmt.Errorf("gemini generation error: %w", &googleapi.Error{Code: 503}), want: true},
		{name: "googleapi 429", err: &googleapi.Error{Code: 429, Message: "quota exceeded"}, want: false},
		{name: "googleapi body marker", err: &googleapi.Error{Code: 500, Body: `{"error":{"message":"The model is overloaded."}}`}, want: true},
		{name: "plain marker", err: errors.New("googleapi: Error 503: The model is overloaded. Please try again later."), want: true},
		{name: "marker is case sensitive", err: errors.New("Model Is Overloaded"), want: false},
		{name: "grpc unavailable", err: status.Error(codes.Unavailable, "try later"), want: true},
		{name: "grpc invalid argument", err: status.Error(codes.InvalidArgument, "bad"), want: false},
		{name: "openai api 503", err: &openai.APIError{HTTPStatusCode: 503, Message: "busy"}, want: true},
		{name: "openai api marker", err: &openai.APIError{HTTPStatusCode: 500, Message: "That model is overloaded with other requests."}, want: true},
		{name: "openai request 503", err: &openai.RequestError{HTTPStatusCode: 503, Err: errors.New("unavailable")}, want: true},
		{name: "openai 401", err: &openai.APIError{HTTPStatusCode: 401, Message: "invalid key"}, want: false},
		{name: "context deadline", err: context.DeadlineExceeded, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverloaded(tt.err); got != tt.want {
				t.Fatalf("IsOverloaded(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestOpenAIProviderGenerate(t *testing.T) {
	var gotMessages int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotMessages = len(req.Messages)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"message":{"role":"assistant","content":"{\"tripSummary\":\"Rome\"}"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider("test-key", "", srv.URL+"/v1")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	text, err := p.Generate(context.Background(), DefaultSeedHistory(), "plan Rome")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != `{"tripSummary":"Rome"}` {
		t.Fatalf("unexpected text %q", text)
	}
	if gotMessages != 3 {
		t.Fatalf("expected seed history plus prompt (3 messages), got %d", gotMessages)
	}
}

func TestOpenAIProviderOverloadIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"The engine is currently overloaded","type":"server_error"}}`))
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider("test-key", "", srv.URL+"/v1")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	_, err = p.Generate(context.Background(), nil, "plan Rome")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsOverloaded(err) {
		t.Fatalf("expected overload classification for %v", err)
	}
}

func TestNewGeneratorUnknownProvider(t *testing.T) {
	if _, _, err := NewGenerator(context.Background(), GeneratorConfig{Provider: "llama"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
