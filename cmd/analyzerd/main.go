package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nlpodyssey/openai-agents-go/agents"

	"findoc-analyzer/internal/analysis"
	"findoc-analyzer/internal/common"
	"findoc-analyzer/internal/docstore"
	"findoc-analyzer/internal/server"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// The agent framework resolves the backend credential from its default
	// client; set it once at startup.
	agents.SetDefaultOpenaiKey(cfg.LLM.APIKey, false)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := docstore.NewStore(cfg.Storage.DataDir, log)
	if err != nil {
		log.Error("creating document store", "error", err)
		os.Exit(1)
	}

	tools := analysis.NewTools(log)
	agentSet := analysis.NewAgents(cfg.LLM, cfg.Analysis, tools)
	analyzer := analysis.NewAgentAnalyzer(agentSet, cfg.Analysis, log)

	httpServer := server.NewHTTPServer(cfg.Server, store, analyzer, log)

	go func() {
		log.Info("http server listening", "addr", cfg.Server.Addr, "model", cfg.LLM.Model)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown incomplete", "error", err)
	}
	log.Info("stopped")
}
