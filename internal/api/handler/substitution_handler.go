package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/budeir2006/ABED/internal/dto"
	"github.com/budeir2006/ABED/internal/service"
	"github.com/budeir2006/ABED/pkg/response"
)

// SubstitutionHandler 代课模块 HTTP 处理器
type SubstitutionHandler struct {
	subsSvc service.SubstitutionService
}

// NewSubstitutionHandler 创建 SubstitutionHandler
func NewSubstitutionHandler(subsSvc service.SubstitutionService) *SubstitutionHandler {
	return &SubstitutionHandler{subsSvc: subsSvc}
}

// PlanSubstitutions 为某日期规划代课（整体替换该日期的旧结果）
// POST /api/v1/substitutions/plan
func (h *SubstitutionHandler) PlanSubstitutions(c *gin.Context) {
	var req dto.PlanSubstitutionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.subsSvc.Plan(c.Request.Context(), &req)
	if err != nil {
		h.handleSubstitutionError(c, err)
		return
	}
	response.OK(c, result)
}

// ListSubstitutions 获取某日期的代课记录
// GET /api/v1/substitutions?date=2026-09-06
func (h *SubstitutionHandler) ListSubstitutions(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, 10001, "date 不能为空")
		return
	}

	subs, err := h.subsSvc.ListByDate(c.Request.Context(), date)
	if err != nil {
		h.handleSubstitutionError(c, err)
		return
	}
	response.OK(c, gin.H{"list": subs})
}

// ClearSubstitutions 清空某日期的代课记录
// DELETE /api/v1/substitutions?date=2026-09-06
func (h *SubstitutionHandler) ClearSubstitutions(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, 10001, "date 不能为空")
		return
	}

	if err := h.subsSvc.ClearForDate(c.Request.Context(), date); err != nil {
		h.handleSubstitutionError(c, err)
		return
	}
	response.OK(c, nil)
}

// handleSubstitutionError 统一处理代课模块业务错误
func (h *SubstitutionHandler) handleSubstitutionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlanInProgress):
		response.Conflict(c, 16001, "已有代课规划正在执行，请稍后重试")
	case errors.Is(err, service.ErrPlanNoAbsences):
		response.BadRequest(c, 16002, "该日期没有缺勤记录")
	case errors.Is(err, service.ErrPlanNotSchoolDay):
		response.BadRequest(c, 16003, "日期不在教学周内（周日至周四）")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10002, "日期格式无效，应为 YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/substitution_handler.go
