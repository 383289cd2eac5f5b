package dto

import (
	"github.com/pustakalay/inventory/internal/domain/activity"
)

// ActivityRequest 活动日志写入/更新请求
type ActivityRequest struct {
	OrderID  *uint  `json:"orderId"`
	ReaderID *uint  `json:"readerId"`
	Action   string `json:"action" binding:"required"`
	Details  string `json:"details"`
}

// ToEntity 请求 → 领域实体
func (r *ActivityRequest) ToEntity() *activity.ActivityLog {
	return &activity.ActivityLog{
		OrderID:  r.OrderID,
		ReaderID: r.ReaderID,
		Action:   r.Action,
		Details:  r.Details,
	}
}

// ActivityResponse 活动日志响应
type ActivityResponse struct {
	ID        uint   `json:"id"`
	OrderID   *uint  `json:"orderId"`
	ReaderID  *uint  `json:"readerId"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	CreatedAt string `json:"createdAt"`
}

// NewActivityResponse 领域实体 → 响应DTO
func NewActivityResponse(l *activity.ActivityLog) *ActivityResponse {
	return &ActivityResponse{
		ID:        l.ID,
		OrderID:   l.OrderID,
		ReaderID:  l.ReaderID,
		Action:    l.Action,
		Details:   l.Details,
		CreatedAt: l.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// NewActivityResponses 批量转换
func NewActivityResponses(logs []*activity.ActivityLog) []*ActivityResponse {
	out := make([]*ActivityResponse, len(logs))
	for i, l := range logs {
		out[i] = NewActivityResponse(l)
	}
	return out
}
