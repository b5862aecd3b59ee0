package handler

import (
	"time"

	reportapp "github.com/rentops/backend/internal/application/report"
	"github.com/rentops/backend/internal/infrastructure/scheduler"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles commission report endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.CommissionReportService
	cronScheduler *scheduler.MonthlyReportScheduler
}

// NewReportHandler creates a new ReportHandler. cronScheduler may be nil when
// the scheduler is disabled.
func NewReportHandler(reportService *reportapp.CommissionReportService, cronScheduler *scheduler.MonthlyReportScheduler) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		cronScheduler: cronScheduler,
	}
}

// RegisterRoutes registers report endpoints
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/commission", h.CommissionReport)
		reports.GET("/scheduler/status", h.SchedulerStatus)
		reports.POST("/scheduler/run", h.TriggerSchedulerRun)
	}
}

// CommissionReport builds the commission report for a calendar month
// (?year&month) or an arbitrary period (?start&end, RFC3339)
func (h *ReportHandler) CommissionReport(c *gin.Context) {
	var req reportapp.CommissionReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	var resp *reportapp.CommissionReportResponse
	var err error
	switch {
	case req.Start != "" || req.End != "":
		start, perr := time.Parse(time.RFC3339, req.Start)
		if perr != nil {
			h.BadRequest(c, "start must be an RFC3339 timestamp")
			return
		}
		end, perr := time.Parse(time.RFC3339, req.End)
		if perr != nil {
			h.BadRequest(c, "end must be an RFC3339 timestamp")
			return
		}
		resp, err = h.reportService.GenerateForPeriod(c.Request.Context(), start, end)
	case req.Year != 0 && req.Month != 0:
		resp, err = h.reportService.GenerateMonthly(c.Request.Context(), req.Year, time.Month(req.Month))
	default:
		h.BadRequest(c, "either year and month or start and end are required")
		return
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SchedulerStatus reports the monthly report scheduler state
func (h *ReportHandler) SchedulerStatus(c *gin.Context) {
	if h.cronScheduler == nil {
		h.Success(c, gin.H{"enabled": false})
		return
	}
	h.Success(c, h.cronScheduler.GetStatus())
}

// TriggerSchedulerRun starts an out-of-schedule report run
func (h *ReportHandler) TriggerSchedulerRun(c *gin.Context) {
	if h.cronScheduler == nil {
		h.BadRequest(c, "Report scheduler is disabled")
		return
	}
	if err := h.cronScheduler.TriggerManualRun(); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"triggered": true})
}
