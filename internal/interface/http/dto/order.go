package dto

import (
	"github.com/pustakalay/inventory/internal/domain/order"
	"github.com/pustakalay/inventory/pkg/response"
)

// CreateOrderRequest 创建借阅单请求
type CreateOrderRequest struct {
	ReaderID uint               `json:"readerId" binding:"required"`
	Notes    string             `json:"notes"`
	Books    []OrderedBookInput `json:"books" binding:"required"`
}

// OrderedBookInput 借阅明细输入项
type OrderedBookInput struct {
	BookID   uint `json:"bookId" binding:"required"`
	Quantity int  `json:"quantity"`
}

// ToOrderedBooks 输入明细 → 领域明细(数量缺省为1)
func ToOrderedBooks(inputs []OrderedBookInput) []order.OrderedBook {
	books := make([]order.OrderedBook, 0, len(inputs))
	for _, in := range inputs {
		qty := in.Quantity
		if qty <= 0 {
			qty = 1
		}
		books = append(books, order.OrderedBook{BookID: in.BookID, Quantity: qty})
	}
	return books
}

// UpdateOrderStatusRequest 状态流转请求
// status取值:pending/approved/returned/cancelled
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// CreateReaderRequest 创建读者请求
type CreateReaderRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderedBookResponse 借阅明细响应项
type OrderedBookResponse struct {
	ID       uint `json:"id"`
	BookID   uint `json:"bookId"`
	Quantity int  `json:"quantity"`
}

// OrderResponse 借阅单响应
type OrderResponse struct {
	ID            uint                  `json:"id"`
	ReaderID      uint                  `json:"readerId"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes"`
	Books         []OrderedBookResponse `json:"books"`
	TotalQuantity int                   `json:"totalQuantity"`
	CreatedAt     string                `json:"createdAt"`
	UpdatedAt     string                `json:"updatedAt"`
}

// NewOrderResponse 领域实体 → 响应DTO
func NewOrderResponse(o *order.Order) *OrderResponse {
	books := make([]OrderedBookResponse, 0, len(o.Books))
	for _, b := range o.Books {
		books = append(books, OrderedBookResponse{ID: b.ID, BookID: b.BookID, Quantity: b.Quantity})
	}

	return &OrderResponse{
		ID:            o.ID,
		ReaderID:      o.ReaderID,
		Status:        o.Status.String(),
		Notes:         o.Notes,
		Books:         books,
		TotalQuantity: o.TotalQuantity(),
		CreatedAt:     o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     o.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ListOrdersResponse 借阅单列表响应信封
type ListOrdersResponse struct {
	Orders     []*OrderResponse    `json:"orders"`
	Pagination response.Pagination `json:"pagination"`
}
