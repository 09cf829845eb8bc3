package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/repos"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/http/response"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/services"
)

type DocumentHandler struct {
	log      *logger.Logger
	deptRepo repos.DepartmentRepo
	docs     services.DocumentService
}

func NewDocumentHandler(log *logger.Logger, deptRepo repos.DepartmentRepo, docs services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		log:      log.With("handler", "DocumentHandler"),
		deptRepo: deptRepo,
		docs:     docs,
	}
}

func (h *DocumentHandler) List(c *gin.Context) {
	deptID, year, err := resolveTarget(c, h.deptRepo)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}

	filter := services.DocumentFilter{
		Section:     c.Query("section"),
		ProgramCode: c.Query("program"),
	}
	if raw := c.Query("serial"); raw != "" {
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			filter.SerialNumber = n
		}
	}
	if raw := c.Query("keywords"); raw != "" {
		for _, kw := range strings.Split(raw, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				filter.Keywords = append(filter.Keywords, kw)
			}
		}
	}

	docs, err := h.docs.Match(c.Request.Context(), deptID, year, filter)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, docs)
}
