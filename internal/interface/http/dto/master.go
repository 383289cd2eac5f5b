package dto

// MasterResponse 主数据响应(语言/分类共用)
type MasterResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CreateMasterRequest 主数据创建请求(语言/分类共用)
type CreateMasterRequest struct {
	Name string `json:"name" binding:"required"`
}
