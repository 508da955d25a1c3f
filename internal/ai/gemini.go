package ai

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// Sampling parameters sent with every request.
const (
	Temperature     float32 = 0.5
	TopP            float32 = 0.8
	MaxOutputTokens int32   = 8192
)

const DefaultModel = "models/gemini-flash-latest"

var (
	ErrMissingAPIKey = errors.New("gemini api key is empty")
	ErrEmptyResponse = errors.New("Gemini returned an empty response.")
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

type GeminiOption func(*genai.ClientConfig)

// WithBaseURL points the client at another endpoint, e.g. a proxy or a test server.
func WithBaseURL(url string) GeminiOption {
	return func(cc *genai.ClientConfig) {
		cc.HTTPOptions.BaseURL = url
	}
}

func NewGeminiClient(ctx context.Context, apiKey, model string, opts ...GeminiOption) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cc)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	log.WithField("model", model).Info("Gemini client ready")
	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Model() string {
	return g.model
}

func (g *GeminiClient) Generate(ctx context.Context, p Prompt) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(p.SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(Temperature),
		TopP:              genai.Ptr(TopP),
		MaxOutputTokens:   MaxOutputTokens,
	}

	log.WithFields(log.Fields{
		"model":              g.model,
		"message_len":        len(p.Message),
		"instruction_length": len(p.SystemInstruction),
	}).Debug("Sending prompt to Gemini")

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(p.Message), cfg)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
