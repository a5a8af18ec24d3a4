package dto

// CreateAbsenceRequest 登记缺勤请求
type CreateAbsenceRequest struct {
	Date      string `json:"date"       binding:"required,datetime=2006-01-02"`
	TeacherID string `json:"teacher_id" binding:"required"`
}

// AbsenceResponse 缺勤响应
type AbsenceResponse struct {
	ID      string        `json:"id"`
	Date    string        `json:"date"` // YYYY-MM-DD
	Teacher *TeacherBrief `json:"teacher,omitempty"`
}
