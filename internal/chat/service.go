// Package chat answers single chat messages with the configured generator.
package chat

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/publicthrone547/inavora-chatbot/internal/ai"
)

// MaxRetries is how many attempts a caller is advised to make.
const MaxRetries = 3

type Request struct {
	Message    string
	RetryCount int
}

// InstructionSource builds the system instruction for a request.
type InstructionSource interface {
	Load() string
}

type Service struct {
	generator    ai.Generator
	instructions InstructionSource
}

// NewService wires the chat flow. generator may be nil when no API key was
// configured; every Reply then fails with ErrMissingAPIKey.
func NewService(generator ai.Generator, instructions InstructionSource) *Service {
	return &Service{generator: generator, instructions: instructions}
}

func (s *Service) Configured() bool {
	return s.generator != nil
}

func (s *Service) Reply(ctx context.Context, req Request) (string, error) {
	if s.generator == nil {
		return "", ErrMissingAPIKey
	}
	if req.Message == "" {
		return "", ErrEmptyMessage
	}
	if req.RetryCount < 0 {
		req.RetryCount = 0
	}

	prompt := ai.Prompt{
		SystemInstruction: s.instructions.Load(),
		Message:           req.Message,
	}

	start := time.Now()
	text, err := s.generator.Generate(ctx, prompt)
	if err == nil && text == "" {
		err = ai.ErrEmptyResponse
	}
	if err != nil {
		cerr := upstreamError(req.RetryCount, err)
		log.WithFields(log.Fields{
			"retry_count": req.RetryCount,
			"can_retry":   cerr.CanRetry,
			"elapsed":     time.Since(start),
		}).WithError(err).Error("Gemini request failed")
		return "", cerr
	}

	log.WithFields(log.Fields{
		"retry_count":  req.RetryCount,
		"response_len": len(text),
		"elapsed":      time.Since(start),
	}).Info("Gemini response received")
	return text, nil
}
