package model

// SchoolInfo 学校信息 — 对应 school_infos（单行，仅展示元数据）
type SchoolInfo struct {
	SchoolInfoID string `gorm:"type:varchar(36);primaryKey"            json:"school_info_id"`
	Name         string `gorm:"type:varchar(200);not null;default:''"  json:"name"`
	LogoURL      string `gorm:"type:varchar(500);not null;default:''"  json:"logo_url"`
	BaseModel
}

// TableName 指定表名
func (SchoolInfo) TableName() string { return "school_infos" }
