package http

import (
	"strconv"

	"donation-report-srv/internal/model"
	"donation-report-srv/internal/report"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGetReportRequest(c *gin.Context, period model.PeriodType) (getReportReq, error) {
	req := getReportReq{PeriodType: period}

	if raw := c.Query("force"); raw != "" {
		force, err := strconv.ParseBool(raw)
		if err != nil {
			return req, errInvalidForce
		}
		req.Force = force
	}

	if period == model.PeriodYearly {
		year, err := strconv.Atoi(c.Param("year"))
		if err != nil || year <= 0 {
			return req, errInvalidYear
		}
		req.Year = &year
	}
	return req, nil
}

func (h *handler) processGenerateRequest(c *gin.Context) (report.GetOrBuildInput, error) {
	var req generateReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGenerateRequest: ShouldBindJSON failed: %v", err)
		return report.GetOrBuildInput{}, errInvalidRequest
	}
	return req.toInput()
}

func (h *handler) processCleanupRequest(c *gin.Context) (int, error) {
	raw := c.DefaultQuery("days", strconv.Itoa(report.DefaultRetentionDays))
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0, errInvalidDays
	}
	return days, nil
}

func (h *handler) processRecentRequest(c *gin.Context) (int64, error) {
	raw := c.DefaultQuery("limit", strconv.Itoa(report.DefaultRecentLimit))
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return 0, errInvalidLimit
	}
	return limit, nil
}
