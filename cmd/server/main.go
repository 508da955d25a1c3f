package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/publicthrone547/inavora-chatbot/internal/ai"
	"github.com/publicthrone547/inavora-chatbot/internal/chat"
	"github.com/publicthrone547/inavora-chatbot/internal/config"
	"github.com/publicthrone547/inavora-chatbot/internal/handlers"
	"github.com/publicthrone547/inavora-chatbot/internal/instructions"
	"github.com/publicthrone547/inavora-chatbot/internal/routes"
)

func main() {
	cfg := config.Load()
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// left nil without a key so /chat reports the missing key per request
	var generator ai.Generator
	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("gemini client init failed: %v", err)
		}
		generator = client
	}

	loader := instructions.NewLoader(cfg.InstructionsPath)
	svc := chat.NewService(generator, loader)
	r := routes.New(handlers.NewChatHandler(svc))

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Infof("Starting server on %s (debug=%v)", cfg.Addr(), cfg.Debug)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}
