package order

import (
	"time"
)

// OrderStatus 借阅单状态
// 设计说明:
// 1. 使用int类型而非string(节省存储空间,便于索引)
// 2. 定义为具名类型,便于添加方法
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 1 // 待审批
	OrderStatusApproved  OrderStatus = 2 // 已借出
	OrderStatusReturned  OrderStatus = 3 // 已归还
	OrderStatusCancelled OrderStatus = 4 // 已取消
)

// String 实现Stringer接口(方便日志输出与响应序列化)
func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPending:
		return "pending"
	case OrderStatusApproved:
		return "approved"
	case OrderStatusReturned:
		return "returned"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ParseStatus 解析状态字符串
func ParseStatus(s string) (OrderStatus, bool) {
	switch s {
	case "pending":
		return OrderStatusPending, true
	case "approved":
		return OrderStatusApproved, true
	case "returned":
		return OrderStatusReturned, true
	case "cancelled":
		return OrderStatusCancelled, true
	default:
		return 0, false
	}
}

// Reader 读者实体
// 借阅单的发起人,图书借出对象
type Reader struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// Order 借阅单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,OrderedBook是子实体
// 2. 一张借阅单可以包含多本图书
type Order struct {
	ID        uint
	ReaderID  uint          // 读者ID
	Status    OrderStatus   // 借阅单状态
	Notes     string        // 备注
	Books     []OrderedBook // 借阅明细(聚合内的子实体)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderedBook 借阅明细项
// 不是独立聚合根,必须通过Order访问;只保存BookID避免跨聚合引用
type OrderedBook struct {
	ID       uint
	OrderID  uint // 所属借阅单ID
	BookID   uint // 图书ID
	Quantity int  // 借阅数量
}

// NewOrder 创建新借阅单(工厂方法)
// 初始状态为Pending(待审批)
func NewOrder(readerID uint, books []OrderedBook, notes string) *Order {
	now := time.Now()
	return &Order{
		ReaderID:  readerID,
		Status:    OrderStatusPending,
		Notes:     notes,
		Books:     books,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CanTransitionTo 检查是否可以转换到目标状态
// 状态机设计,防止非法状态跳转(如已归还的借阅单不能再取消)
func (o *Order) CanTransitionTo(target OrderStatus) bool {
	transitions := map[OrderStatus][]OrderStatus{
		OrderStatusPending:   {OrderStatusApproved, OrderStatusCancelled},
		OrderStatusApproved:  {OrderStatusReturned},
		OrderStatusReturned:  {},
		OrderStatusCancelled: {},
	}

	allowed, exists := transitions[o.Status]
	if !exists {
		return false
	}

	for _, a := range allowed {
		if a == target {
			return true
		}
	}
	return false
}

// TransitionTo 状态转换
func (o *Order) TransitionTo(target OrderStatus) error {
	if !o.CanTransitionTo(target) {
		return ErrInvalidStatusTransition
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// TotalQuantity 借阅单图书总册数
func (o *Order) TotalQuantity() int {
	var total int
	for _, b := range o.Books {
		total += b.Quantity
	}
	return total
}
