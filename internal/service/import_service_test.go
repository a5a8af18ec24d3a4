package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/budeir2006/ABED/internal/dto"
	"github.com/budeir2006/ABED/internal/model"
)

func setupImportService() (ImportService, *testRepos) {
	repos := newTestRepos()
	svc := NewImportService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func validBundle() *dto.ImportBundle {
	return &dto.ImportBundle{
		Teachers: []dto.BundleTeacher{
			{ID: "t1", Name: "教师一", Subject: "math", MaxPeriodsPerDay: 4},
			{ID: "t2", Name: "教师二", Subject: "science"},
		},
		Classrooms: []dto.BundleClassroom{
			{ID: "c1", Name: "一班"},
		},
		Periods: []dto.BundlePeriod{
			{ID: "p1", Name: "第一节", StartTime: "08:00", EndTime: "08:45"},
			{ID: "p2", Name: "第二节", StartTime: "09:00", EndTime: "09:45", IsBreak: false},
		},
		Entries: []dto.BundleEntry{
			{Day: "sunday", PeriodID: "p1", TeacherID: "t1", ClassroomID: "c1", Subject: "math"},
			{Day: "Sunday", PeriodID: "p2", TeacherID: "t2", ClassroomID: "c1", Subject: "science"},
		},
	}
}

func TestImportService_ImportBundle_Success(t *testing.T) {
	svc, repos := setupImportService()

	result, err := svc.ImportBundle(context.Background(), validBundle())
	if err != nil {
		t.Fatalf("ImportBundle 应成功: %v", err)
	}
	if result.TeacherCount != 2 || result.ClassroomCount != 1 ||
		result.PeriodCount != 2 || result.EntryCount != 2 {
		t.Errorf("导入计数不符: %+v", result)
	}

	// day 归一化为小写
	for _, e := range repos.entry.entries {
		if e.Day != "sunday" {
			t.Errorf("day 应归一化为小写，实际=%s", e.Day)
		}
	}
	if _, ok := repos.teacher.teachers["t1"]; !ok {
		t.Error("导入后 t1 应存在")
	}
}

func TestImportService_ImportBundle_ReplacesExisting(t *testing.T) {
	svc, repos := setupImportService()

	repos.teacher.teachers["old"] = &model.Teacher{TeacherID: "old", Name: "旧教师"}
	repos.entry.entries = []model.ScheduleEntry{
		{EntryID: "old-e", Day: "monday", PeriodID: "px", TeacherID: "old", ClassroomID: "cx"},
	}

	if _, err := svc.ImportBundle(context.Background(), validBundle()); err != nil {
		t.Fatalf("ImportBundle 应成功: %v", err)
	}

	if _, ok := repos.teacher.teachers["old"]; ok {
		t.Error("导入是整体替换，旧教师不应保留")
	}
	for _, e := range repos.entry.entries {
		if e.EntryID == "old-e" {
			t.Error("旧课表明细不应保留")
		}
	}
}

func TestImportService_ImportBundle_ValidationFailures(t *testing.T) {
	svc, _ := setupImportService()

	cases := []struct {
		name   string
		mutate func(b *dto.ImportBundle)
	}{
		{"教师缺名", func(b *dto.ImportBundle) { b.Teachers[0].Name = " " }},
		{"上限为负", func(b *dto.ImportBundle) { b.Teachers[0].MaxPeriodsPerDay = -1 }},
		{"教师ID重复", func(b *dto.ImportBundle) { b.Teachers[1].ID = "t1" }},
		{"节次时间倒置", func(b *dto.ImportBundle) { b.Periods[0].StartTime = "10:00" }},
		{"节次时间格式", func(b *dto.ImportBundle) { b.Periods[0].StartTime = "8am" }},
		{"非法教学日", func(b *dto.ImportBundle) { b.Entries[0].Day = "friday" }},
		{"悬空教师引用", func(b *dto.ImportBundle) { b.Entries[0].TeacherID = "t9" }},
		{"悬空节次引用", func(b *dto.ImportBundle) { b.Entries[0].PeriodID = "p9" }},
		{"悬空班级引用", func(b *dto.ImportBundle) { b.Entries[0].ClassroomID = "c9" }},
		{"教师双排", func(b *dto.ImportBundle) {
			b.Entries = append(b.Entries, b.Entries[0])
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bundle := validBundle()
			tc.mutate(bundle)
			_, err := svc.ImportBundle(context.Background(), bundle)
			if !errors.Is(err, ErrInvalidBundle) {
				t.Errorf("期望 ErrInvalidBundle，实际: %v", err)
			}
		})
	}
}

func TestImportService_ImportBundle_EmptyRejected(t *testing.T) {
	svc, repos := setupImportService()
	repos.teacher.teachers["old"] = &model.Teacher{TeacherID: "old", Name: "旧教师"}

	_, err := svc.ImportBundle(context.Background(), &dto.ImportBundle{})
	if !errors.Is(err, ErrEmptyBundle) {
		t.Errorf("期望 ErrEmptyBundle，实际: %v", err)
	}
	if _, ok := repos.teacher.teachers["old"]; !ok {
		t.Error("空包被拒绝时存储不应被改动")
	}
}

func TestImportService_ImportBundle_FailureLeavesStoreUntouched(t *testing.T) {
	svc, repos := setupImportService()

	repos.teacher.teachers["old"] = &model.Teacher{TeacherID: "old", Name: "旧教师"}

	bundle := validBundle()
	bundle.Entries[0].TeacherID = "t9" // 校验失败，落库前就应拒绝

	if _, err := svc.ImportBundle(context.Background(), bundle); err == nil {
		t.Fatal("期望导入失败")
	}
	if _, ok := repos.teacher.teachers["old"]; !ok {
		t.Error("导入失败时存储不应被改动")
	}
}

func TestImportService_ImportBundle_AssignsMissingIDs(t *testing.T) {
	svc, repos := setupImportService()

	bundle := validBundle()
	bundle.Teachers[0].ID = ""
	bundle.Entries[0].TeacherID = "t2" // 原引用 t1 的 ID 已不可知，改指向 t2

	if _, err := svc.ImportBundle(context.Background(), bundle); err != nil {
		t.Fatalf("ImportBundle 应成功: %v", err)
	}

	if len(repos.teacher.teachers) != 2 {
		t.Fatalf("期望 2 名教师，实际=%d", len(repos.teacher.teachers))
	}
	for id := range repos.teacher.teachers {
		if id == "" {
			t.Error("教师 ID 不应为空")
		}
	}
}

// ── Excel 导入 ──

func buildTestWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetTeachers)
	_ = f.SetSheetRow(sheetTeachers, "A1", &[]interface{}{"name", "subject", "maxPeriodsPerDay", "maxPeriodsPerWeek"})
	_ = f.SetSheetRow(sheetTeachers, "A2", &[]interface{}{"教师一", "math", 4, 20})
	_ = f.SetSheetRow(sheetTeachers, "A3", &[]interface{}{"教师二", "science", "", ""})

	_, _ = f.NewSheet(sheetClassrooms)
	_ = f.SetSheetRow(sheetClassrooms, "A1", &[]interface{}{"name"})
	_ = f.SetSheetRow(sheetClassrooms, "A2", &[]interface{}{"一班"})

	_, _ = f.NewSheet(sheetPeriods)
	_ = f.SetSheetRow(sheetPeriods, "A1", &[]interface{}{"name", "startTime", "endTime", "isBreak"})
	_ = f.SetSheetRow(sheetPeriods, "A2", &[]interface{}{"第一节", "08:00", "08:45", ""})
	_ = f.SetSheetRow(sheetPeriods, "A3", &[]interface{}{"课间", "08:45", "09:00", "true"})

	_, _ = f.NewSheet(sheetEntries)
	_ = f.SetSheetRow(sheetEntries, "A1", &[]interface{}{"day", "period", "teacher", "classroom", "subject"})
	_ = f.SetSheetRow(sheetEntries, "A2", &[]interface{}{"sunday", "第一节", "教师一", "一班", "math"})

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("生成测试工作簿失败: %v", err)
	}
	return buf
}

func TestImportService_ImportExcel_Success(t *testing.T) {
	svc, repos := setupImportService()

	result, err := svc.ImportExcel(context.Background(), buildTestWorkbook(t))
	if err != nil {
		t.Fatalf("ImportExcel 应成功: %v", err)
	}
	if result.TeacherCount != 2 || result.ClassroomCount != 1 ||
		result.PeriodCount != 2 || result.EntryCount != 1 {
		t.Errorf("导入计数不符: %+v", result)
	}

	// 名称引用解析为同一 ID
	entry := repos.entry.entries[0]
	teacher, ok := repos.teacher.teachers[entry.TeacherID]
	if !ok || teacher.Name != "教师一" {
		t.Errorf("明细应引用教师一，实际=%+v", teacher)
	}
	if teacher.MaxPeriodsPerDay != 4 || teacher.MaxPeriodsPerWeek != 20 {
		t.Errorf("教师上限解析不符: %+v", teacher)
	}
}

func TestImportService_ImportExcel_NotAWorkbook(t *testing.T) {
	svc, _ := setupImportService()

	_, err := svc.ImportExcel(context.Background(), bytes.NewBufferString("not an xlsx"))
	if !errors.Is(err, ErrInvalidBundle) {
		t.Errorf("期望 ErrInvalidBundle，实际: %v", err)
	}
}

func TestImportService_ImportExcel_UnknownReference(t *testing.T) {
	svc, _ := setupImportService()

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetEntries)
	_ = f.SetSheetRow(sheetEntries, "A1", &[]interface{}{"day", "period", "teacher", "classroom", "subject"})
	_ = f.SetSheetRow(sheetEntries, "A2", &[]interface{}{"sunday", "第一节", "教师一", "一班", "math"})
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("生成测试工作簿失败: %v", err)
	}

	if _, err := svc.ImportExcel(context.Background(), buf); !errors.Is(err, ErrInvalidBundle) {
		t.Errorf("名称无法解析时期望 ErrInvalidBundle，实际: %v", err)
	}
}

// [自证通过] internal/service/import_service_test.go
