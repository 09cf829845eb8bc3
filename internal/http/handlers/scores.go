package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/repos"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/http/response"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/observability"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/apperr"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/services"
)

type ScoreHandler struct {
	log      *logger.Logger
	deptRepo repos.DepartmentRepo
	cache    services.ScoreCacheService
	reviews  services.ReviewService
	metrics  *observability.Metrics
}

func NewScoreHandler(
	log *logger.Logger,
	deptRepo repos.DepartmentRepo,
	cache services.ScoreCacheService,
	reviews services.ReviewService,
	metrics *observability.Metrics,
) *ScoreHandler {
	return &ScoreHandler{
		log:      log.With("handler", "ScoreHandler"),
		deptRepo: deptRepo,
		cache:    cache,
		reviews:  reviews,
		metrics:  metrics,
	}
}

// GetSummary serves the totals-only summary, computing on a cache miss.
func (h *ScoreHandler) GetSummary(c *gin.Context) {
	deptID, year, err := resolveTarget(c, h.deptRepo)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}

	summary, err := h.cache.GetOrCompute(c.Request.Context(), deptID, year)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	if summary.FromCache {
		h.metrics.RecordCacheHit()
	} else {
		h.metrics.RecordCacheMiss()
	}
	// Totals-only view: the breakdown endpoint serves the items.
	summary.Sections = nil
	response.RespondOK(c, summary)
}

// GetBreakdown always runs the pipeline and returns the full per-item
// breakdown; with ?merged=true the caller's review overlay is applied and
// both variants are returned.
func (h *ScoreHandler) GetBreakdown(c *gin.Context) {
	deptID, year, err := resolveTarget(c, h.deptRepo)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}

	start := time.Now()
	auto, err := h.cache.Compute(c.Request.Context(), deptID, year)
	if err != nil {
		h.metrics.RecordCompute("error", time.Since(start))
		response.RespondAppError(c, err)
		return
	}
	h.metrics.RecordCompute("ok", time.Since(start))

	if c.Query("merged") != "true" {
		response.RespondOK(c, gin.H{"auto": auto})
		return
	}

	rev, err := h.reviews.GetReview(c.Request.Context(), expertEmail(c), deptID, year)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		response.RespondAppError(c, err)
		return
	}
	merged := services.MergeReview(*auto, rev)
	response.RespondOK(c, gin.H{"auto": auto, "merged": merged})
}

// Invalidate drops the cache row without recomputing.
func (h *ScoreHandler) Invalidate(c *gin.Context) {
	deptID, year, err := resolveTarget(c, h.deptRepo)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	if err := h.cache.Invalidate(c.Request.Context(), deptID, year); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"invalidated": true})
}

// Recompute drops the cache row and rebuilds it from source data.
func (h *ScoreHandler) Recompute(c *gin.Context) {
	deptID, year, err := resolveTarget(c, h.deptRepo)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	start := time.Now()
	summary, err := h.cache.InvalidateAndRecompute(c.Request.Context(), deptID, year)
	if err != nil {
		h.metrics.RecordCompute("error", time.Since(start))
		response.RespondAppError(c, err)
		return
	}
	h.metrics.RecordCompute("ok", time.Since(start))
	response.RespondOK(c, summary)
}
