package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/budeir2006/ABED/internal/dto"
	"github.com/budeir2006/ABED/internal/model"
	"github.com/budeir2006/ABED/internal/repository"
	"github.com/budeir2006/ABED/pkg/redis"
)

// ── 代课模块业务错误 ──

var (
	ErrPlanInProgress   = errors.New("已有代课规划正在执行，请稍后重试")
	ErrPlanNotSchoolDay = errors.New("日期不在教学周内（周日至周四）")
	ErrPlanNoAbsences   = errors.New("该日期没有缺勤记录")
	ErrInvalidDate      = errors.New("日期格式无效，应为 YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

// SubstitutionService 代课规划业务接口
type SubstitutionService interface {
	// Plan 为某日期的缺勤教师规划替补并整体替换该日期的代课集合
	Plan(ctx context.Context, req *dto.PlanSubstitutionsRequest) (*dto.PlanSubstitutionsResponse, error)
	// ListByDate 列出某日期的代课记录
	ListByDate(ctx context.Context, date string) ([]dto.SubstitutionResponse, error)
	// ClearForDate 清空某日期的代课记录
	ClearForDate(ctx context.Context, date string) error
}

type substitutionService struct {
	repo    *repository.Repository
	rdb     *redis.Client // 可为 nil：降级为进程内锁
	lockTTL time.Duration
	logger  *zap.Logger

	mu       sync.Mutex
	planning map[string]bool // date → 规划进行中（rdb 为 nil 时的单飞保证）
}

// NewSubstitutionService 创建 SubstitutionService 实例
func NewSubstitutionService(repo *repository.Repository, rdb *redis.Client, lockTTL time.Duration, logger *zap.Logger) SubstitutionService {
	return &substitutionService{
		repo:     repo,
		rdb:      rdb,
		lockTTL:  lockTTL,
		logger:   logger,
		planning: make(map[string]bool),
	}
}

// ════════════════════════════════════════════════════════════
// Plan — 确定性代课规划
// ════════════════════════════════════════════════════════════
//
// 算法：
//   1. 取该日期的缺勤教师（可用 teacher_ids 收窄），按教师 ID 升序
//   2. 对每名缺勤教师，按节次开始时间枚举其当日基础课表明细
//   3. 候选池 = 全体教师 − 缺勤集合，过滤该时段空闲者
//   4. 排序：同科目优先 → 当日已排节次少者优先 → 教师 ID 兜底（确定性）
//   5. 取首个通过 validateSubstitution 的候选；本轮已选的替补
//      计入快照，后续节次视其为"忙"
//   6. 无合格候选的节次进入 unassigned，不中断整轮规划
//   7. 产出整体替换该日期的旧代课集合（单事务）

func (s *substitutionService) Plan(ctx context.Context, req *dto.PlanSubstitutionsRequest) (*dto.PlanSubstitutionsResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	day := req.Day
	if day == "" {
		var ok bool
		day, ok = model.WeekdayOf(date)
		if !ok {
			return nil, ErrPlanNotSchoolDay
		}
	}

	// ── 单飞：同一存储上不允许两次规划并发执行 ──
	release, err := s.acquirePlanLock(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	// ── 数据准备 ──

	absences, err := s.repo.Absence.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("查询缺勤记录失败", zap.Error(err))
		return nil, err
	}
	if len(req.TeacherIDs) > 0 {
		wanted := make(map[string]bool, len(req.TeacherIDs))
		for _, id := range req.TeacherIDs {
			wanted[id] = true
		}
		filtered := absences[:0]
		for _, a := range absences {
			if wanted[a.TeacherID] {
				filtered = append(filtered, a)
			}
		}
		absences = filtered
	}
	if len(absences) == 0 {
		return nil, ErrPlanNoAbsences
	}

	teachers, err := s.repo.Teacher.List(ctx)
	if err != nil {
		s.logger.Error("查询教师列表失败", zap.Error(err))
		return nil, err
	}
	periods, err := s.repo.Period.List(ctx)
	if err != nil {
		s.logger.Error("查询节次列表失败", zap.Error(err))
		return nil, err
	}
	entries, err := s.repo.ScheduleEntry.List(ctx)
	if err != nil {
		s.logger.Error("查询基础课表失败", zap.Error(err))
		return nil, err
	}

	// 本教学周已有代课（目标日期的旧记录即将被替换，不计入快照）
	weekFrom, weekTo := weekRangeOf(date)
	weekSubs, err := s.repo.Substitution.ListByDateRange(ctx, weekFrom, weekTo)
	if err != nil {
		s.logger.Error("查询本周代课记录失败", zap.Error(err))
		return nil, err
	}
	snapSubs := make([]model.Substitution, 0, len(weekSubs))
	for _, sub := range weekSubs {
		if !sub.Date.Equal(date) {
			snapSubs = append(snapSubs, sub)
		}
	}

	teacherMap := make(map[string]*model.Teacher, len(teachers))
	for i := range teachers {
		teacherMap[teachers[i].TeacherID] = &teachers[i]
	}
	periodMap := make(map[string]*model.Period, len(periods))
	for i := range periods {
		periodMap[periods[i].PeriodID] = &periods[i]
	}

	snap := &scheduleSnapshot{
		teachers: teacherMap,
		entries:  entries,
		subs:     snapSubs,
	}

	absentSet := make(map[string]bool, len(absences))
	absenceByTeacher := make(map[string]string, len(absences))
	for _, a := range absences {
		absentSet[a.TeacherID] = true
		absenceByTeacher[a.TeacherID] = a.AbsenceID
	}
	absentIDs := make([]string, 0, len(absentSet))
	for id := range absentSet {
		absentIDs = append(absentIDs, id)
	}
	sort.Strings(absentIDs)

	// ── 逐节次贪心指派 ──

	var proposals []model.Substitution
	var unassigned []dto.UnassignedPeriod
	total := 0

	for _, absentID := range absentIDs {
		// 该缺勤教师当日的基础课表，按节次开始时间排序（未知节次排最后）
		var dayEntries []model.ScheduleEntry
		for _, e := range entries {
			if e.TeacherID == absentID && e.Day == day {
				dayEntries = append(dayEntries, e)
			}
		}
		sort.Slice(dayEntries, func(i, j int) bool {
			ki := entrySortKey(periodMap, &dayEntries[i])
			kj := entrySortKey(periodMap, &dayEntries[j])
			if ki != kj {
				return ki < kj
			}
			return dayEntries[i].EntryID < dayEntries[j].EntryID
		})

		for _, entry := range dayEntries {
			total++

			// 候选池：全体教师 − 缺勤集合，该时段空闲者
			type scoredCandidate struct {
				teacher     *model.Teacher
				sameSubject bool
				dayLoad     int
			}
			var pool []scoredCandidate
			for i := range teachers {
				t := &teachers[i]
				if absentSet[t.TeacherID] {
					continue
				}
				if !isTeacherFree(snap, t.TeacherID, day, entry.PeriodID, entry.EntryID) {
					continue
				}
				pool = append(pool, scoredCandidate{
					teacher:     t,
					sameSubject: t.Subject != "" && t.Subject == entry.Subject,
					dayLoad:     countAssignedPeriods(snap, t.TeacherID, day),
				})
			}

			// 同科目优先 → 当日负载少者优先 → ID 兜底保证确定性
			sort.Slice(pool, func(i, j int) bool {
				if pool[i].sameSubject != pool[j].sameSubject {
					return pool[i].sameSubject
				}
				if pool[i].dayLoad != pool[j].dayLoad {
					return pool[i].dayLoad < pool[j].dayLoad
				}
				return pool[i].teacher.TeacherID < pool[j].teacher.TeacherID
			})

			assigned := false
			for _, c := range pool {
				cand := model.Substitution{
					SubstitutionID:      uuid.NewString(),
					AbsenceID:           absenceByTeacher[absentID],
					Date:                date,
					Day:                 day,
					PeriodID:            entry.PeriodID,
					OriginalTeacherID:   absentID,
					SubstituteTeacherID: c.teacher.TeacherID,
					ClassroomID:         entry.ClassroomID,
				}
				if res := validateSubstitution(snap, &cand); !res.valid() {
					continue
				}
				proposals = append(proposals, cand)
				snap.subs = append(snap.subs, cand) // 暂定代课计入快照
				assigned = true
				break
			}

			if !assigned {
				unassigned = append(unassigned, dto.UnassignedPeriod{
					Day:               day,
					PeriodID:          entry.PeriodID,
					OriginalTeacherID: absentID,
				})
			}
		}
	}

	// ── 持久化：整体替换该日期的代课集合 ──

	if err := s.repo.Substitution.ReplaceForDate(ctx, date, proposals); err != nil {
		s.logger.Error("替换代课集合失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("代课规划完成",
		zap.String("date", req.Date),
		zap.String("day", day),
		zap.Int("total", total),
		zap.Int("filled", len(proposals)),
		zap.Int("unassigned", len(unassigned)),
	)

	classrooms, err := s.repo.Classroom.List(ctx)
	if err != nil {
		s.logger.Error("查询班级列表失败", zap.Error(err))
		return nil, err
	}
	classroomMap := make(map[string]*model.Classroom, len(classrooms))
	for i := range classrooms {
		classroomMap[classrooms[i].ClassroomID] = &classrooms[i]
	}

	resp := &dto.PlanSubstitutionsResponse{
		Date:          req.Date,
		Day:           day,
		Substitutions: make([]dto.SubstitutionResponse, 0, len(proposals)),
		Unassigned:    unassigned,
		TotalPeriods:  total,
		FilledPeriods: len(proposals),
	}
	if resp.Unassigned == nil {
		resp.Unassigned = []dto.UnassignedPeriod{}
	}
	for i := range proposals {
		resp.Substitutions = append(resp.Substitutions,
			toSubstitutionResponse(&proposals[i], teacherMap, periodMap, classroomMap))
	}

	return resp, nil
}

// ════════════════════════════════════════════════════════════
// ListByDate / ClearForDate
// ════════════════════════════════════════════════════════════

func (s *substitutionService) ListByDate(ctx context.Context, dateStr string) ([]dto.SubstitutionResponse, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	subs, err := s.repo.Substitution.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("查询代课记录失败", zap.Error(err))
		return nil, err
	}

	teacherMap, periodMap, classroomMap, err := s.loadLookups(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SubstitutionResponse, 0, len(subs))
	for i := range subs {
		result = append(result, toSubstitutionResponse(&subs[i], teacherMap, periodMap, classroomMap))
	}
	return result, nil
}

func (s *substitutionService) ClearForDate(ctx context.Context, dateStr string) error {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return ErrInvalidDate
	}
	if err := s.repo.Substitution.DeleteByDate(ctx, date); err != nil {
		s.logger.Error("清空代课记录失败", zap.Error(err))
		return err
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// 内部辅助方法
// ════════════════════════════════════════════════════════════

// acquirePlanLock 获取规划单飞锁，返回释放函数
// Redis 可用时走 SETNX；否则退化为进程内 map 锁
func (s *substitutionService) acquirePlanLock(ctx context.Context, date string) (func(), error) {
	if s.rdb != nil {
		ok, err := s.rdb.AcquirePlanLock(ctx, date, s.lockTTL)
		if err != nil {
			s.logger.Warn("获取 Redis 规划锁失败，降级为进程内锁", zap.Error(err))
		} else {
			if !ok {
				return nil, ErrPlanInProgress
			}
			return func() {
				if err := s.rdb.ReleasePlanLock(context.Background(), date); err != nil {
					s.logger.Warn("释放 Redis 规划锁失败", zap.Error(err))
				}
			}, nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.planning[date] {
		return nil, ErrPlanInProgress
	}
	s.planning[date] = true
	return func() {
		s.mu.Lock()
		delete(s.planning, date)
		s.mu.Unlock()
	}, nil
}

// loadLookups 加载响应组装所需的三张索引
func (s *substitutionService) loadLookups(ctx context.Context) (map[string]*model.Teacher, map[string]*model.Period, map[string]*model.Classroom, error) {
	teachers, err := s.repo.Teacher.List(ctx)
	if err != nil {
		s.logger.Error("查询教师列表失败", zap.Error(err))
		return nil, nil, nil, err
	}
	periods, err := s.repo.Period.List(ctx)
	if err != nil {
		s.logger.Error("查询节次列表失败", zap.Error(err))
		return nil, nil, nil, err
	}
	classrooms, err := s.repo.Classroom.List(ctx)
	if err != nil {
		s.logger.Error("查询班级列表失败", zap.Error(err))
		return nil, nil, nil, err
	}

	teacherMap := make(map[string]*model.Teacher, len(teachers))
	for i := range teachers {
		teacherMap[teachers[i].TeacherID] = &teachers[i]
	}
	periodMap := make(map[string]*model.Period, len(periods))
	for i := range periods {
		periodMap[periods[i].PeriodID] = &periods[i]
	}
	classroomMap := make(map[string]*model.Classroom, len(classrooms))
	for i := range classrooms {
		classroomMap[classrooms[i].ClassroomID] = &classrooms[i]
	}
	return teacherMap, periodMap, classroomMap, nil
}

// entrySortKey 节次排序键：已知节次按开始时间，悬空引用排最后
func entrySortKey(periodMap map[string]*model.Period, e *model.ScheduleEntry) string {
	if p, ok := periodMap[e.PeriodID]; ok {
		return p.StartTime + ":" + e.PeriodID
	}
	return "~" + e.PeriodID // '~' 大于所有数字字符
}

// weekRangeOf 日期所在教学周的 [周日, 周四] 闭区间
func weekRangeOf(date time.Time) (time.Time, time.Time) {
	offset := int(date.Weekday()) // Sunday = 0
	from := date.AddDate(0, 0, -offset)
	return from, from.AddDate(0, 0, 4)
}

// toSubstitutionResponse 组装代课响应（容忍悬空引用）
func toSubstitutionResponse(
	sub *model.Substitution,
	teacherMap map[string]*model.Teacher,
	periodMap map[string]*model.Period,
	classroomMap map[string]*model.Classroom,
) dto.SubstitutionResponse {
	return dto.SubstitutionResponse{
		ID:                sub.SubstitutionID,
		AbsenceID:         sub.AbsenceID,
		Date:              sub.Date.Format(dateLayout),
		Day:               sub.Day,
		Period:            resolvePeriod(periodMap, sub.PeriodID),
		OriginalTeacher:   resolveTeacher(teacherMap, sub.OriginalTeacherID),
		SubstituteTeacher: resolveTeacher(teacherMap, sub.SubstituteTeacherID),
		Classroom:         resolveClassroom(classroomMap, sub.ClassroomID),
	}
}

// [自证通过] internal/service/substitution_service.go
