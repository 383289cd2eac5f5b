package book

import (
	"context"

	"github.com/pustakalay/inventory/internal/domain/book"
)

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// Execute 根据ID获取图书(含关联的语言/分类)
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*book.Book, error) {
	return uc.bookService.GetBook(ctx, id)
}

// GetImageUseCase 封面图获取用例
// 直接返回原始字节,由HTTP层设置content-type
type GetImageUseCase struct {
	bookService book.Service
}

// NewGetImageUseCase 创建用例
func NewGetImageUseCase(bookService book.Service) *GetImageUseCase {
	return &GetImageUseCase{bookService: bookService}
}

// Execute 获取指定槽位的图片字节
// 槽位取值非front/back时直接拒绝
func (uc *GetImageUseCase) Execute(ctx context.Context, id uint, slot string) ([]byte, error) {
	if !book.ValidSlot(slot) {
		return nil, book.ErrInvalidSlot
	}
	return uc.bookService.GetImage(ctx, id, book.ImageSlot(slot))
}
