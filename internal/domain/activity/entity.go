package activity

import (
	"time"
)

// ActivityLog 活动日志实体
// 记录围绕借阅单/读者发生的操作流水(创建、审批、归还等)
// OrderID/ReaderID均可空:允许记录与具体单据无关的系统事件
type ActivityLog struct {
	ID        uint      `json:"id"`
	OrderID   *uint     `json:"orderId"`
	ReaderID  *uint     `json:"readerId"`
	Action    string    `json:"action"`  // 操作名称(如order_created)
	Details   string    `json:"details"` // 详情描述
	CreatedAt time.Time `json:"createdAt"`
}
