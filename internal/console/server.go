// Package console exposes the feedback loop over HTTP: a JSON API driving
// rounds through generation, pair display, human choice, and reranking, plus
// a small embedded page for running comparisons from a browser.
package console

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/coderank/go-ranker/internal/eval"
	"github.com/danielpatrickdp/coderank/go-ranker/internal/round"
)

// #region server
// Server handles HTTP requests for the ranking console.
type Server struct {
	loop      *round.Loop
	evaluator *eval.Evaluator
	evalLimit int
	logger    *zap.Logger

	mu     sync.Mutex
	rounds map[string]*round.Round // in-flight rounds by id
}

// NewServer creates a new console server.
func NewServer(loop *round.Loop, evaluator *eval.Evaluator, evalLimit int, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if evalLimit <= 0 {
		evalLimit = 200
	}
	return &Server{
		loop:      loop,
		evaluator: evaluator,
		evalLimit: evalLimit,
		logger:    logger,
		rounds:    make(map[string]*round.Round),
	}
}

// RegisterRoutes registers all console routes.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/rounds", s.StartRound)
		api.POST("/rounds/:id/choice", s.SubmitChoice)
		api.POST("/evaluate", s.Evaluate)
	}

	r.GET("/", s.Index)
	r.GET("/health", s.HealthCheck)
}

// Router returns a gin engine with all console routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	s.RegisterRoutes(r)
	return r
}

// #endregion server

// #region requests
type startRoundRequest struct {
	Query string `json:"query"`
}

type choiceRequest struct {
	Choice string `json:"choice"`
}

// #endregion requests

// #region handlers
// StartRound starts a round for a query and returns its comparison pair.
// The round is held in memory, suspended on the human choice, until the
// matching choice request arrives.
func (s *Server) StartRound(c *gin.Context) {
	var req startRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must not be empty"})
		return
	}

	r := s.loop.StartRound(c.Request.Context(), req.Query)
	pair, err := s.loop.SelectPair(r)
	if err != nil {
		if errors.Is(err, round.ErrInsufficientCandidates) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("pair selection failed", zap.String("round_id", r.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pair selection failed"})
		return
	}

	s.mu.Lock()
	s.rounds[r.ID] = r
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"round_id": r.ID,
		"query":    r.Query,
		"pair": gin.H{
			"a": gin.H{"agent": pair.A.Agent, "text": pair.A.Text},
			"b": gin.H{"agent": pair.B.Agent, "text": pair.B.Text},
		},
	})
}

// SubmitChoice resumes a suspended round with the human's A/B choice,
// reranks all candidates, and returns the final ordering.
func (s *Server) SubmitChoice(c *gin.Context) {
	var req choiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	s.mu.Lock()
	r, ok := s.rounds[id]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown round"})
		return
	}

	if err := s.loop.SubmitHumanChoice(r, req.Choice); err != nil {
		switch {
		case errors.Is(err, round.ErrInvalidChoice):
			// Round stays suspended; the client may retry with a valid choice.
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, round.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			s.logger.Error("choice submission failed", zap.String("round_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "choice submission failed"})
		}
		return
	}

	ranked, err := s.loop.Rerank(c.Request.Context(), r)
	if err != nil {
		if errors.Is(err, round.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		// Round stays in its reranking phase; a later retry can succeed.
		s.logger.Error("reranking failed", zap.String("round_id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "reranking failed"})
		return
	}

	// The finished round stays in the map so a repeated submission is
	// answered with a phase conflict instead of vanishing.
	out := make([]gin.H, 0, len(ranked))
	for _, cand := range ranked {
		out = append(out, gin.H{"agent": cand.Agent, "text": cand.Text, "score": cand.Score})
	}
	c.JSON(http.StatusOK, gin.H{
		"round_id":  id,
		"preferred": r.HumanChoice,
		"ranked":    out,
	})
}

// Evaluate runs an alignment evaluation over recorded feedback.
func (s *Server) Evaluate(c *gin.Context) {
	report, err := s.evaluator.Run(c.Request.Context(), s.evalLimit)
	if err != nil {
		if errors.Is(err, eval.ErrNoData) {
			c.JSON(http.StatusOK, gin.H{"no_data": true})
			return
		}
		s.logger.Error("evaluation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "evaluation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accuracy":               report.Accuracy,
		"pairs_evaluated":        report.PairsEvaluated,
		"kendall_tau":            report.KendallTau,
		"spearman_rho":           report.SpearmanRho,
		"correlation_meaningful": report.CorrelationMeaningful,
		"model":                  report.Model,
	})
}

// HealthCheck reports service health.
func (s *Server) HealthCheck(c *gin.Context) {
	s.mu.Lock()
	inflight := len(s.rounds)
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "rounds_in_flight": inflight})
}

// Index serves the embedded comparison page.
func (s *Server) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// #endregion handlers
