package http

import (
	"net/http"
	"path/filepath"

	"donation-report-srv/internal/model"
	"donation-report-srv/internal/reportcache"
	"donation-report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Download the weekly report
// @Description Serve the report for the last complete Monday to Sunday week, building it if the cached copy is stale
// @Tags Report
// @Produce application/pdf
// @Param force query bool false "Rebuild even if a valid cached report exists"
// @Success 200 {file} file
// @Success 307 "Redirect to the stored report"
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /reports/weekly [get]
func (h *handler) GetWeekly(c *gin.Context) {
	h.serveReport(c, model.PeriodWeekly)
}

// @Summary Download the monthly report
// @Description Serve the report for the last complete calendar month
// @Tags Report
// @Produce application/pdf
// @Param force query bool false "Rebuild even if a valid cached report exists"
// @Success 200 {file} file
// @Success 307 "Redirect to the stored report"
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /reports/monthly [get]
func (h *handler) GetMonthly(c *gin.Context) {
	h.serveReport(c, model.PeriodMonthly)
}

// @Summary Download a yearly report
// @Description Serve the report for a calendar year. The current year runs up to now.
// @Tags Report
// @Produce application/pdf
// @Param year path int true "Calendar year"
// @Param force query bool false "Rebuild even if a valid cached report exists"
// @Success 200 {file} file
// @Success 307 "Redirect to the stored report"
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /reports/yearly/{year} [get]
func (h *handler) GetYearly(c *gin.Context) {
	h.serveReport(c, model.PeriodYearly)
}

func (h *handler) serveReport(c *gin.Context, period model.PeriodType) {
	ctx := c.Request.Context()

	req, err := h.processGetReportRequest(c, period)
	if err != nil {
		h.l.Warnf(ctx, "report.delivery.http.serveReport: processGetReportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetOrBuild(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.serveReport: usecase GetOrBuild failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	if reportcache.IsRemoteLocation(o.Location) {
		c.Redirect(http.StatusTemporaryRedirect, o.Location)
		return
	}
	c.FileAttachment(o.Location, filepath.Base(o.Location))
}

// @Summary Generate a report
// @Description Return the location of a valid cached report or build a new one
// @Tags Report
// @Accept json
// @Produce json
// @Param body body generateReq true "Report request"
// @Success 200 {object} generateResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/generate [post]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processGenerateRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "report.delivery.http.Generate: processGenerateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetOrBuild(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Generate: usecase GetOrBuild failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGenerateResp(o))
}

// @Summary List generated reports
// @Description List PDF files in the output directory, newest first
// @Tags Report
// @Produce json
// @Success 200 {object} listReportsResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports [get]
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	files, err := h.uc.ListReports(ctx)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: usecase ListReports failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListReportsResp(files))
}

// @Summary List recently built report ids
// @Tags Report
// @Produce json
// @Param limit query int false "Maximum ids to return (default 100)"
// @Success 200 {object} recentResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/recent [get]
func (h *handler) ListRecent(c *gin.Context) {
	ctx := c.Request.Context()

	limit, err := h.processRecentRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	ids, err := h.uc.ListRecent(ctx, limit)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListRecent: usecase ListRecent failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRecentResp(ids))
}

// @Summary Delete old reports
// @Description Delete generated PDFs older than the given number of days
// @Tags Report
// @Produce json
// @Param days query int false "Retention in days (default 30)"
// @Success 200 {object} cleanupResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/reports/cleanup [post]
func (h *handler) Cleanup(c *gin.Context) {
	ctx := c.Request.Context()

	days, err := h.processCleanupRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	n, err := h.uc.CleanupOldReports(ctx, days)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Cleanup: usecase CleanupOldReports failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, cleanupResp{Deleted: n, Days: days})
}

// @Summary Invalidate the report cache
// @Description Drop every cached report entry. Files on disk are kept.
// @Tags Report
// @Produce json
// @Success 200 {object} invalidateResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/cache [delete]
func (h *handler) InvalidateCache(c *gin.Context) {
	ctx := c.Request.Context()

	n, err := h.uc.InvalidateAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.InvalidateCache: usecase InvalidateAll failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, invalidateResp{Cleared: n})
}
