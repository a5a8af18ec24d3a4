package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/budeir2006/ABED/internal/model"
)

// SchoolInfoRepository 学校信息数据访问接口（单行表）
type SchoolInfoRepository interface {
	Get(ctx context.Context) (*model.SchoolInfo, error)
	Save(ctx context.Context, info *model.SchoolInfo) error
}

type schoolInfoRepo struct {
	db *gorm.DB
}

// NewSchoolInfoRepo 创建 SchoolInfoRepository 实例
func NewSchoolInfoRepo(db *gorm.DB) SchoolInfoRepository {
	return &schoolInfoRepo{db: db}
}

func (r *schoolInfoRepo) Get(ctx context.Context) (*model.SchoolInfo, error) {
	var info model.SchoolInfo
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *schoolInfoRepo) Save(ctx context.Context, info *model.SchoolInfo) error {
	return r.db.WithContext(ctx).Save(info).Error
}
