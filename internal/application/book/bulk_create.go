package book

import (
	"context"
	"fmt"
	"time"

	"github.com/pustakalay/inventory/internal/domain/book"
	apperrors "github.com/pustakalay/inventory/pkg/errors"
	"github.com/pustakalay/inventory/pkg/metrics"
)

// BulkCreateUseCase 批量导入用例
// 设计说明:
// 1. 逐条顺序处理,单条失败只记录原因,不影响已提交的兄弟条目,
//    也不回滚(整个批次显式非原子)
// 2. 失败原因按输入位置(index)记录,保证结果可对账
// 3. 必填校验(title+bookCode)在入库前完成,校验失败的条目不触达存储
type BulkCreateUseCase struct {
	bookService book.Service
}

// NewBulkCreateUseCase 创建用例
func NewBulkCreateUseCase(bookService book.Service) *BulkCreateUseCase {
	return &BulkCreateUseCase{bookService: bookService}
}

// BulkItem 批次中的单个候选条目
// Entity为已归一化的实体;MissingRequired标记必填字段缺失
// (归一化细节留在DTO层,引擎只关心结果)
type BulkItem struct {
	Entity          *book.Book
	MissingRequired bool
	Front           ImageInput // 按位置定位的封面文件或内联数据
	Back            ImageInput
}

// BulkItemFailure 单条失败记录
type BulkItemFailure struct {
	Index  int
	Reason string
}

// BulkResult 批次处理摘要
type BulkResult struct {
	TotalProcessed int
	Created        []*book.Book
	Failures       []BulkItemFailure
}

// Failed 失败条数
func (r *BulkResult) Failed() int {
	return len(r.Failures)
}

// Execute 执行批量导入
func (uc *BulkCreateUseCase) Execute(ctx context.Context, items []BulkItem) (*BulkResult, error) {
	start := time.Now()

	result := &BulkResult{
		TotalProcessed: len(items),
		Created:        []*book.Book{},
	}

	for i, item := range items {
		if item.MissingRequired {
			result.Failures = append(result.Failures, BulkItemFailure{
				Index:  i,
				Reason: book.ErrMissingTitleOrCode.Message,
			})
			continue
		}

		b := item.Entity
		b.FrontImage = item.Front.Resolve()
		b.BackImage = item.Back.Resolve()

		if err := uc.bookService.CreateBook(ctx, b); err != nil {
			result.Failures = append(result.Failures, BulkItemFailure{
				Index:  i,
				Reason: failureReason(err),
			})
			continue
		}

		result.Created = append(result.Created, b)
	}

	observeBulk(result, time.Since(start))
	return result, nil
}

// failureReason 提取对外暴露的失败原因
func failureReason(err error) string {
	appErr := apperrors.GetAppError(err)
	return appErr.Message
}

// observeBulk 上报批次指标(未初始化时跳过,便于单测)
func observeBulk(r *BulkResult, elapsed time.Duration) {
	if metrics.BooksIngestedTotal == nil {
		return
	}
	metrics.BooksIngestedTotal.Add(float64(len(r.Created)))
	metrics.BooksIngestFailedTotal.Add(float64(r.Failed()))
	metrics.BulkIngestDuration.Observe(elapsed.Seconds())
}

// BulkFileKey 批次中第i条某槽位的multipart字段名
// 约定为 books[i][frontImage] / books[i][backImage]
func BulkFileKey(index int, slot book.ImageSlot) string {
	return fmt.Sprintf("books[%d][%sImage]", index, slot)
}
