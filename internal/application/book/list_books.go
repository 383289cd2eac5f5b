package book

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pustakalay/inventory/internal/domain/book"
)

// ListBooksUseCase 目录查询用例
// 设计说明:
// 1. 同一过滤条件下的记录查询与总数统计并发执行,
//    两者都完成后才产出结果(errgroup聚合错误)
// 2. 分页元信息由调用方基于total/page/limit计算
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// ListBooksResult 查询结果
type ListBooksResult struct {
	Books []*book.Book
	Total int64
	Page  book.Page // 归一化后的分页参数
}

// Execute 执行查询
// 超出总页数的页码返回空列表而不是错误
func (uc *ListBooksUseCase) Execute(ctx context.Context, f book.Filter, p book.Page) (*ListBooksResult, error) {
	p = p.Normalize()

	var (
		books []*book.Book
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		books, err = uc.bookService.SearchBooks(gctx, f, p)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.bookService.CountBooks(gctx, f)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if books == nil {
		books = []*book.Book{}
	}
	return &ListBooksResult{Books: books, Total: total, Page: p}, nil
}
