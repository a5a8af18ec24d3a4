package dto

// CreateEntryRequest 创建课表明细请求
type CreateEntryRequest struct {
	Day         string `json:"day"          binding:"required,oneof=sunday monday tuesday wednesday thursday"`
	PeriodID    string `json:"period_id"    binding:"required"`
	TeacherID   string `json:"teacher_id"   binding:"required"`
	ClassroomID string `json:"classroom_id" binding:"required"`
	Subject     string `json:"subject"      binding:"omitempty,max=200"`
}

// UpdateEntryRequest 更新课表明细请求
type UpdateEntryRequest struct {
	Day         *string `json:"day"          binding:"omitempty,oneof=sunday monday tuesday wednesday thursday"`
	PeriodID    *string `json:"period_id"    binding:"omitempty"`
	TeacherID   *string `json:"teacher_id"   binding:"omitempty"`
	ClassroomID *string `json:"classroom_id" binding:"omitempty"`
	Subject     *string `json:"subject"      binding:"omitempty,max=200"`
}

// EntryResponse 课表明细响应
type EntryResponse struct {
	ID        string          `json:"id"`
	Day       string          `json:"day"`
	Subject   string          `json:"subject"`
	Period    *PeriodBrief    `json:"period,omitempty"`
	Teacher   *TeacherBrief   `json:"teacher,omitempty"`
	Classroom *ClassroomBrief `json:"classroom,omitempty"`
}
