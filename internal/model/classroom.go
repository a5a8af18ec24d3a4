package model

// Classroom 班级表 — 对应 classrooms（不建模容量约束）
type Classroom struct {
	ClassroomID string `gorm:"type:varchar(36);primaryKey" json:"classroom_id"`
	Name        string `gorm:"type:varchar(200);not null"  json:"name"`
	BaseModel
}

// TableName 指定表名
func (Classroom) TableName() string { return "classrooms" }
