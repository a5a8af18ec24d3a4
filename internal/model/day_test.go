package model

import (
	"testing"
	"time"
)

func TestIsWeekday(t *testing.T) {
	for _, day := range Weekdays {
		if !IsWeekday(day) {
			t.Errorf("%s 应属于教学周", day)
		}
	}
	for _, day := range []string{"friday", "saturday", "Sunday", ""} {
		if IsWeekday(day) {
			t.Errorf("%s 不应属于教学周", day)
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	cases := []struct {
		date string
		day  string
		ok   bool
	}{
		{"2026-09-06", DaySunday, true},
		{"2026-09-07", DayMonday, true},
		{"2026-09-10", DayThursday, true},
		{"2026-09-11", "", false}, // 周五
		{"2026-09-12", "", false}, // 周六
	}
	for _, tc := range cases {
		d, err := time.Parse("2006-01-02", tc.date)
		if err != nil {
			t.Fatalf("解析日期失败: %v", err)
		}
		day, ok := WeekdayOf(d)
		if ok != tc.ok || day != tc.day {
			t.Errorf("WeekdayOf(%s) = (%q, %v)，期望 (%q, %v)", tc.date, day, ok, tc.day, tc.ok)
		}
	}
}

// [自证通过] internal/model/day_test.go
