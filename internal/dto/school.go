package dto

// UpdateSchoolInfoRequest 更新学校信息请求（字段级合并，不做校验）
type UpdateSchoolInfoRequest struct {
	Name    *string `json:"name"     binding:"omitempty,max=200"`
	LogoURL *string `json:"logo_url" binding:"omitempty,max=500"`
}

// SchoolInfoResponse 学校信息响应
type SchoolInfoResponse struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}
