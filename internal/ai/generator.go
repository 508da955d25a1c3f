package ai

//go:generate mockgen -source=generator.go -destination=mock/generator.go -package=mock

import "context"

// Prompt is one single-turn request: the system instruction plus the user's message.
type Prompt struct {
	SystemInstruction string
	Message           string
}

// Generator produces a text reply for a prompt. GeminiClient is the
// production implementation.
type Generator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}
