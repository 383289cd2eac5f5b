package book

import (
	"context"

	"github.com/pustakalay/inventory/internal/domain/book"
)

// UpdateBookUseCase 更新图书用例
// 文本/数值字段整体覆盖;图片槽位只有显式提交了新数据才覆盖,
// 否则保留库中原值
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// Execute 执行更新,返回更新后的完整记录
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, b *book.Book, front, back ImageInput) (*book.Book, error) {
	existing, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	b.ID = id
	b.CreatedAt = existing.CreatedAt

	if front.Present() {
		b.FrontImage = front.Resolve()
	} else {
		b.FrontImage = existing.FrontImage
	}
	if back.Present() {
		b.BackImage = back.Resolve()
	} else {
		b.BackImage = existing.BackImage
	}

	if err := uc.bookService.UpdateBook(ctx, b); err != nil {
		return nil, err
	}

	// 重新读取,带上关联的语言/分类
	return uc.bookService.GetBook(ctx, id)
}
