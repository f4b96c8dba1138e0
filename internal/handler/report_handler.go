package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"feedesk/internal/service"
)

// ReportHandler handles collection report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary handles GET /api/v1/reports/fees
func (h *ReportHandler) Summary(c *gin.Context) {
	filters, ok := parseBillFilters(c)
	if !ok {
		return
	}

	summary, err := h.reportService.CollectionSummary(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// Export handles GET /api/v1/reports/fees/export
// Streams the filtered bill set as a CSV download.
func (h *ReportHandler) Export(c *gin.Context) {
	filters, ok := parseBillFilters(c)
	if !ok {
		return
	}

	data, err := h.reportService.ExportCSV(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("fee-collection-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// Archive handles POST /api/v1/reports/fees/archive
// Stores a CSV export in object storage and returns a presigned link.
func (h *ReportHandler) Archive(c *gin.Context) {
	filters, ok := parseBillFilters(c)
	if !ok {
		return
	}

	result, err := h.reportService.ArchiveCSV(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// SendReminders handles POST /api/v1/reports/fees/reminders
func (h *ReportHandler) SendReminders(c *gin.Context) {
	sent, err := h.reportService.SendOverdueReminders(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"reminders_sent": sent})
}
