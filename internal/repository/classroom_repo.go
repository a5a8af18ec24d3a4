package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/budeir2006/ABED/internal/model"
)

// ClassroomRepository 班级数据访问接口
type ClassroomRepository interface {
	Create(ctx context.Context, classroom *model.Classroom) error
	GetByID(ctx context.Context, id string) (*model.Classroom, error)
	List(ctx context.Context) ([]model.Classroom, error)
	Update(ctx context.Context, classroom *model.Classroom) error
	Delete(ctx context.Context, id string) error
}

type classroomRepo struct {
	db *gorm.DB
}

// NewClassroomRepo 创建 ClassroomRepository 实例
func NewClassroomRepo(db *gorm.DB) ClassroomRepository {
	return &classroomRepo{db: db}
}

func (r *classroomRepo) Create(ctx context.Context, classroom *model.Classroom) error {
	return r.db.WithContext(ctx).Create(classroom).Error
}

func (r *classroomRepo) GetByID(ctx context.Context, id string) (*model.Classroom, error) {
	var classroom model.Classroom
	err := r.db.WithContext(ctx).Where("classroom_id = ?", id).First(&classroom).Error
	if err != nil {
		return nil, err
	}
	return &classroom, nil
}

func (r *classroomRepo) List(ctx context.Context) ([]model.Classroom, error) {
	var classrooms []model.Classroom
	err := r.db.WithContext(ctx).Order("name ASC, classroom_id ASC").Find(&classrooms).Error
	return classrooms, err
}

func (r *classroomRepo) Update(ctx context.Context, classroom *model.Classroom) error {
	return r.db.WithContext(ctx).Save(classroom).Error
}

func (r *classroomRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("classroom_id = ?", id).
		Delete(&model.Classroom{}).Error
}
