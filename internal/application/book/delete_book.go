package book

import (
	"context"

	"github.com/pustakalay/inventory/internal/domain/book"
)

// DeleteBookUseCase 删除图书用例
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService}
}

// Execute 根据ID删除,记录不存在时返回NotFound
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	return uc.bookService.DeleteBook(ctx, id)
}

// BulkDeleteUseCase 批量删除用例
type BulkDeleteUseCase struct {
	bookService book.Service
}

// NewBulkDeleteUseCase 创建用例
func NewBulkDeleteUseCase(bookService book.Service) *BulkDeleteUseCase {
	return &BulkDeleteUseCase{bookService: bookService}
}

// Execute 按ID集合删除,返回实际删除的行数
// 不存在的ID静默跳过,不视为错误
func (uc *BulkDeleteUseCase) Execute(ctx context.Context, ids []uint) (int64, error) {
	return uc.bookService.DeleteBooks(ctx, ids)
}
