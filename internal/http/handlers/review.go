package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/repos"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/http/response"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/observability"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/apperr"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/services"
)

type ReviewHandler struct {
	log      *logger.Logger
	deptRepo repos.DepartmentRepo
	reviews  services.ReviewService
	metrics  *observability.Metrics
}

func NewReviewHandler(
	log *logger.Logger,
	deptRepo repos.DepartmentRepo,
	reviews services.ReviewService,
	metrics *observability.Metrics,
) *ReviewHandler {
	return &ReviewHandler{
		log:      log.With("handler", "ReviewHandler"),
		deptRepo: deptRepo,
		reviews:  reviews,
		metrics:  metrics,
	}
}

func (h *ReviewHandler) Get(c *gin.Context) {
	deptID, year, err := resolveTarget(c, h.deptRepo)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	rev, err := h.reviews.GetReview(c.Request.Context(), expertEmail(c), deptID, year)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, rev)
}

func (h *ReviewHandler) Save(c *gin.Context) {
	deptID, year, err := resolveTarget(c, h.deptRepo)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	var in services.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondAppError(c, apperr.ErrInvalidArgument)
		return
	}
	rev, err := h.reviews.SaveReview(c.Request.Context(), expertEmail(c), deptID, year, in)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	h.metrics.RecordReviewSave()
	response.RespondOK(c, rev)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	deptID, year, err := resolveTarget(c, h.deptRepo)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	if err := h.reviews.DeleteReview(c.Request.Context(), expertEmail(c), deptID, year); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": true})
}

func (h *ReviewHandler) Lock(c *gin.Context) {
	deptID, year, err := resolveTarget(c, h.deptRepo)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	rev, err := h.reviews.Lock(c.Request.Context(), expertEmail(c), deptID, year)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	h.metrics.RecordReviewLock()
	response.RespondOK(c, rev)
}

func (h *ReviewHandler) Unlock(c *gin.Context) {
	deptID, year, err := resolveTarget(c, h.deptRepo)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	rev, err := h.reviews.Unlock(c.Request.Context(), expertEmail(c), deptID, year)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, rev)
}

// List returns every expert's review for a department-year; used by the
// coordination view.
func (h *ReviewHandler) List(c *gin.Context) {
	deptID, year, err := resolveTarget(c, h.deptRepo)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	revs, err := h.reviews.ListReviews(c.Request.Context(), deptID, year)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, revs)
}
