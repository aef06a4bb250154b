package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/danielpatrickdp/coderank/go-ranker/internal/agents"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/config"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/console"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/eval"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/reranker"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/round"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting ranking console...")

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal("Failed to load config", zap.Error(err))
		}
	}

	st, err := store.NewStore(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open store", zap.String("path", cfg.Database.Path), zap.Error(err))
	}
	defer st.Close()

	genCfg := agents.DefaultConfig()
	if cfg.Generation.Endpoint != "" {
		genCfg.Endpoint = cfg.Generation.Endpoint
		genCfg.Token = cfg.Generation.Token
	}
	genCfg.Timeout = time.Duration(cfg.Generation.TimeoutSeconds) * time.Second
	gen := agents.NewGenerator(genCfg)

	scorerCfg := reranker.DefaultConfig()
	scorerCfg.URL = cfg.Reranker.URL
	scorerCfg.Base = cfg.Reranker.Base
	if cfg.Reranker.LoadDir != "" {
		scorerCfg.LoadDir = cfg.Reranker.LoadDir
	}
	scorer := reranker.NewClient(scorerCfg)

	loop := round.NewLoop(gen, scorer, st, round.LoopConfig{Logger: logger})
	evaluator := eval.NewEvaluator(scorer, st, st, eval.EvaluatorConfig{
		Model:  scorer.Model(),
		Logger: logger,
	})

	srv := console.NewServer(loop, evaluator, cfg.EvalLimit, logger)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Router(),
	}

	go func() {
		logger.Info("Console listening", zap.String("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
	}
	logger.Info("Console stopped")
}
