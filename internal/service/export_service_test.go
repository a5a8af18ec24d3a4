package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/budeir2006/ABED/internal/model"
)

func setupExportService(t *testing.T) (ExportService, *testRepos) {
	t.Helper()
	repos := newTestRepos()
	seedPlanningData(t, repos)
	repos.subs.subs = []model.Substitution{
		{SubstitutionID: "s1", AbsenceID: "a1", Date: mustDate(t, "2026-09-06"), Day: "sunday",
			PeriodID: "p1", OriginalTeacherID: "t1", SubstituteTeacherID: "t3", ClassroomID: "c1"},
		{SubstitutionID: "s2", AbsenceID: "a1", Date: mustDate(t, "2026-09-06"), Day: "sunday",
			PeriodID: "p-gone", OriginalTeacherID: "t1", SubstituteTeacherID: "t2", ClassroomID: "c1"},
	}
	subsSvc := NewSubstitutionService(repos.toRepository(), nil, time.Minute, zap.NewNop())
	return NewExportService(subsSvc, zap.NewNop()), repos
}

func TestExportService_ExportExcel(t *testing.T) {
	svc, _ := setupExportService(t)

	data, err := svc.ExportExcel(context.Background(), "2026-09-06")
	if err != nil {
		t.Fatalf("ExportExcel 应成功: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("导出产物应是合法 xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	// 表头 + 2 条代课
	if len(rows) != 3 {
		t.Fatalf("期望 3 行，实际=%d", len(rows))
	}
	if rows[0][0] != "date" || rows[0][5] != "originalTeacher" {
		t.Errorf("表头不符: %v", rows[0])
	}
	if rows[1][6] != "教师三" {
		t.Errorf("期望替补为 教师三，实际=%s", rows[1][6])
	}
	// 悬空节次引用渲染为占位名
	if rows[2][2] != "未知节次" {
		t.Errorf("悬空节次应渲染为 未知节次，实际=%s", rows[2][2])
	}
}

func TestExportService_ExportICS(t *testing.T) {
	svc, _ := setupExportService(t)

	body, err := svc.ExportICS(context.Background(), "2026-09-06")
	if err != nil {
		t.Fatalf("ExportICS 应成功: %v", err)
	}

	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "END:VCALENDAR") {
		t.Error("产物应是 VCALENDAR")
	}
	if got := strings.Count(body, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("期望 2 个事件，实际=%d", got)
	}
	if !strings.Contains(body, "UID:s1") {
		t.Error("事件 UID 应为代课记录 ID")
	}
	if !strings.Contains(body, "LOCATION:一班") {
		t.Error("事件地点应为班级名")
	}
}

func TestExportService_EmptyDateStillValidDocument(t *testing.T) {
	svc, _ := setupExportService(t)

	// 无代课的日期：产物仍是合法文档，只是没有数据行/事件
	data, err := svc.ExportExcel(context.Background(), "2026-09-07")
	if err != nil {
		t.Fatalf("ExportExcel 应成功: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("导出产物应是合法 xlsx: %v", err)
	}
	f.Close()

	body, err := svc.ExportICS(context.Background(), "2026-09-07")
	if err != nil {
		t.Fatalf("ExportICS 应成功: %v", err)
	}
	if strings.Contains(body, "BEGIN:VEVENT") {
		t.Error("无代课日期不应有事件")
	}
}

func TestExportService_InvalidDate(t *testing.T) {
	svc, _ := setupExportService(t)

	if _, err := svc.ExportExcel(context.Background(), "bad"); err == nil {
		t.Error("非法日期应报错")
	}
	if _, err := svc.ExportICS(context.Background(), "bad"); err == nil {
		t.Error("非法日期应报错")
	}
}

// [自证通过] internal/service/export_service_test.go
