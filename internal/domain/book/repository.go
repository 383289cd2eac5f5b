package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. FindMany与Count拆分为两个方法:目录查询服务会对同一Filter
//    并发执行这两个调用(获取当前页数据+总命中数)
type Repository interface {
	// Create 创建图书,回填自增ID和创建时间
	Create(ctx context.Context, b *Book) error

	// FindByID 根据ID查找图书(预加载Language/Category)
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindImage 读取指定槽位的图片字节
	// 只查询图片列,避免大字段拖慢普通查询
	FindImage(ctx context.Context, id uint, slot ImageSlot) ([]byte, error)

	// FindMany 按过滤条件分页查询(预加载Language/Category)
	// 排序固定为 created_at DESC,时间相同按ID降序保持稳定
	FindMany(ctx context.Context, f Filter, p Page) ([]*Book, error)

	// Count 统计满足过滤条件的总记录数(与分页无关)
	Count(ctx context.Context, f Filter) (int64, error)

	// Update 全字段更新图书
	Update(ctx context.Context, b *Book) error

	// Delete 根据ID删除图书
	Delete(ctx context.Context, id uint) error

	// DeleteByIDs 批量删除,返回实际删除的行数
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
}
