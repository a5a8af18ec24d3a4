package dto

// ── 教师 ──

// CreateTeacherRequest 创建教师请求
// 日/周上限为 0 表示不限制，两者互相独立
type CreateTeacherRequest struct {
	Name              string `json:"name"                 binding:"required,max=200"`
	Subject           string `json:"subject"              binding:"omitempty,max=200"`
	MaxPeriodsPerDay  int    `json:"max_periods_per_day"  binding:"omitempty,min=0"`
	MaxPeriodsPerWeek int    `json:"max_periods_per_week" binding:"omitempty,min=0"`
}

// UpdateTeacherRequest 更新教师请求
type UpdateTeacherRequest struct {
	Name              *string `json:"name"                 binding:"omitempty,max=200"`
	Subject           *string `json:"subject"              binding:"omitempty,max=200"`
	MaxPeriodsPerDay  *int    `json:"max_periods_per_day"  binding:"omitempty,min=0"`
	MaxPeriodsPerWeek *int    `json:"max_periods_per_week" binding:"omitempty,min=0"`
}

// TeacherResponse 教师响应
type TeacherResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Subject           string `json:"subject"`
	MaxPeriodsPerDay  int    `json:"max_periods_per_day"`
	MaxPeriodsPerWeek int    `json:"max_periods_per_week"`
}

// ── 班级 ──

// CreateClassroomRequest 创建班级请求
type CreateClassroomRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// UpdateClassroomRequest 更新班级请求
type UpdateClassroomRequest struct {
	Name *string `json:"name" binding:"omitempty,max=200"`
}

// ClassroomResponse 班级响应
type ClassroomResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// [自证通过] internal/dto/roster.go
