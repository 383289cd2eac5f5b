package master

import (
	"context"
)

// Repository 主数据仓储接口
// 语言/分类没有过滤需求,列表即全表查询
type Repository interface {
	// ListLanguages 查询全部语言
	ListLanguages(ctx context.Context) ([]*Language, error)

	// CreateLanguage 创建语言
	CreateLanguage(ctx context.Context, l *Language) error

	// ListCategories 查询全部分类
	ListCategories(ctx context.Context) ([]*Category, error)

	// CreateCategory 创建分类
	CreateCategory(ctx context.Context, c *Category) error
}
