package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/budeir2006/ABED/internal/service"
	"github.com/budeir2006/ABED/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportExcel 导出某日期的代课安排为 xlsx
// GET /api/v1/export/substitutions.xlsx?date=2026-09-06
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, 10001, "date 不能为空")
		return
	}

	data, err := h.exportSvc.ExportExcel(c.Request.Context(), date)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	filename := url.QueryEscape("substitutions-" + date + ".xlsx")
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+filename)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// ExportICS 导出某日期的代课安排为 iCalendar
// GET /api/v1/export/substitutions.ics?date=2026-09-06
func (h *ExportHandler) ExportICS(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, 10001, "date 不能为空")
		return
	}

	body, err := h.exportSvc.ExportICS(c.Request.Context(), date)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	filename := url.QueryEscape("substitutions-" + date + ".ics")
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+filename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10002, "日期格式无效，应为 YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/export_handler.go
