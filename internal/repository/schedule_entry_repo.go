package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/budeir2006/ABED/internal/model"
)

// ScheduleEntryRepository 基础课表数据访问接口
type ScheduleEntryRepository interface {
	Create(ctx context.Context, entry *model.ScheduleEntry) error
	GetByID(ctx context.Context, id string) (*model.ScheduleEntry, error)
	List(ctx context.Context) ([]model.ScheduleEntry, error)
	ListByDay(ctx context.Context, day string) ([]model.ScheduleEntry, error)
	// ExistsAt 检查某教师在 (day, periodID) 是否已有明细（排除 excludeID）
	ExistsAt(ctx context.Context, day, periodID, teacherID, excludeID string) (bool, error)
	Update(ctx context.Context, entry *model.ScheduleEntry) error
	Delete(ctx context.Context, id string) error
}

type scheduleEntryRepo struct {
	db *gorm.DB
}

// NewScheduleEntryRepo 创建 ScheduleEntryRepository 实例
func NewScheduleEntryRepo(db *gorm.DB) ScheduleEntryRepository {
	return &scheduleEntryRepo{db: db}
}

func (r *scheduleEntryRepo) Create(ctx context.Context, entry *model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *scheduleEntryRepo) GetByID(ctx context.Context, id string) (*model.ScheduleEntry, error) {
	var entry model.ScheduleEntry
	err := r.db.WithContext(ctx).Where("entry_id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleEntryRepo) List(ctx context.Context) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.WithContext(ctx).Order("day ASC, period_id ASC, entry_id ASC").Find(&entries).Error
	return entries, err
}

func (r *scheduleEntryRepo) ListByDay(ctx context.Context, day string) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("day = ?", day).
		Order("period_id ASC, entry_id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *scheduleEntryRepo) ExistsAt(ctx context.Context, day, periodID, teacherID, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&model.ScheduleEntry{}).
		Where("day = ? AND period_id = ? AND teacher_id = ?", day, periodID, teacherID)
	if excludeID != "" {
		q = q.Where("entry_id != ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *scheduleEntryRepo) Update(ctx context.Context, entry *model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *scheduleEntryRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("entry_id = ?", id).
		Delete(&model.ScheduleEntry{}).Error
}
