package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/repos"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/yearkey"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/apperr"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/ctxutil"
)

// resolveTarget turns the :dept path param and the optional year query into
// a canonical (deptID, academicYear) pair. A missing year defaults to the
// current July to June cycle.
func resolveTarget(c *gin.Context, deptRepo repos.DepartmentRepo) (int, string, error) {
	raw := c.Param("dept")
	deptID, err := deptRepo.ResolveID(c.Request.Context(), nil, raw)
	if err != nil {
		return 0, "", err
	}
	if deptID == 0 {
		return 0, "", fmt.Errorf("%w: unknown department %q", apperr.ErrInvalidArgument, raw)
	}

	yearParam := c.Query("year")
	if yearParam == "" {
		return deptID, yearkey.Current(time.Now()).String(), nil
	}
	year, err := yearkey.Parse(yearParam)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", apperr.ErrInvalidArgument, err)
	}
	return deptID, year.String(), nil
}

// expertEmail returns the verified reviewer identity set by the auth
// middleware.
func expertEmail(c *gin.Context) string {
	if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil {
		return rd.ExpertEmail
	}
	return ""
}
