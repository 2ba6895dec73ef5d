package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qerope/resume-ats/internal/ai"
	"github.com/qerope/resume-ats/internal/ats"
	"github.com/qerope/resume-ats/internal/keywords"
	"github.com/qerope/resume-ats/internal/logger"
	"github.com/qerope/resume-ats/internal/resume"
)

type handlers struct {
	logger       *zap.Logger
	analyzer     ai.Analyzer
	keywords     *keywords.Config
	maxBodyBytes int64
}

type scoreRequest struct {
	Resume   json.RawMessage `json:"resume" binding:"required"`
	Keywords []string        `json:"keywords"`
}

type analyzeJobRequest struct {
	JobDescription string `json:"jobDescription"`
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *handlers) score(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)

	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, http.StatusBadRequest, "invalid_request", "Request body must be a JSON object with a resume", err.Error())
		return
	}

	doc, err := resume.Parse(req.Resume)
	if err != nil {
		var validationErr *resume.ValidationError
		if errors.As(err, &validationErr) {
			respondError(c, h.logger, http.StatusBadRequest, "invalid_resume", "Invalid resume format", validationErr.Errors)
			return
		}
		respondError(c, h.logger, http.StatusBadRequest, "invalid_resume", "Invalid resume format", err.Error())
		return
	}

	list, err := keywords.Prepare(c.Request.Context(), h.keywords, requestLogger(c, h.logger), req.Keywords...)
	if err != nil {
		respondError(c, h.logger, http.StatusInternalServerError, "internal", "Failed to prepare keywords", nil)
		return
	}

	result := ats.Score(doc, list)

	requestLogger(c, h.logger).Debug("resume scored",
		logger.ScoreFields("", result.OverallScore, len(list), len(result.KeywordMatches))...,
	)

	c.JSON(http.StatusOK, result)
}

func (h *handlers) analyzeJob(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)

	var req analyzeJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, http.StatusBadRequest, "invalid_request", "Request body must be a JSON object", err.Error())
		return
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		respondError(c, h.logger, http.StatusBadRequest, "invalid_request", "Job description is required", nil)
		return
	}

	analysis, err := h.analyzer.Analyze(c.Request.Context(), req.JobDescription)
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		respondError(c, h.logger, http.StatusServiceUnavailable, "not_configured", ai.ErrNotConfigured.Error(), nil)
		return
	case err != nil:
		requestLogger(c, h.logger).Error("job analysis failed", zap.Error(err))
		respondError(c, h.logger, http.StatusBadGateway, "analysis_failed", "Failed to analyze job description", nil)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func (h *handlers) tips(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tips": ats.Tips()})
}

func (h *handlers) exampleKeywords(c *gin.Context) {
	job := strings.TrimSpace(c.Query("job"))

	list := keywords.DefaultExample
	if job != "" {
		list = keywords.ForJob(job)
	}

	c.JSON(http.StatusOK, gin.H{"job": job, "keywords": list})
}

func (h *handlers) exampleResume(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", resume.ExampleJSON())
}
