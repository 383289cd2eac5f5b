package book

import (
	"context"

	"github.com/pustakalay/inventory/internal/domain/book"
)

// CreateBookUseCase 创建图书用例
// 设计说明:
// 1. 应用层负责编排:解析封面图 → 调用领域服务持久化
// 2. 字段归一化已在DTO层完成,这里只处理图片与流程
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// Execute 执行创建
// front/back为两个槽位的图片输入,未提供的槽位落库为NULL
func (uc *CreateBookUseCase) Execute(ctx context.Context, b *book.Book, front, back ImageInput) (*book.Book, error) {
	b.FrontImage = front.Resolve()
	b.BackImage = back.Resolve()

	if err := uc.bookService.CreateBook(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
