package book

import (
	"context"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 封装实体级业务规则校验(必填字段、非负库存)
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - 书名必填
	// - 库存不能为负数
	// - bookCode存在时不能与已有记录重复
	CreateBook(ctx context.Context, b *Book) error

	// GetBook 根据ID获取图书详情
	GetBook(ctx context.Context, id uint) (*Book, error)

	// GetImage 获取指定槽位的封面图字节
	GetImage(ctx context.Context, id uint, slot ImageSlot) ([]byte, error)

	// SearchBooks 按过滤条件分页查询
	SearchBooks(ctx context.Context, f Filter, p Page) ([]*Book, error)

	// CountBooks 统计满足过滤条件的总数
	CountBooks(ctx context.Context, f Filter) (int64, error)

	// UpdateBook 全字段更新
	UpdateBook(ctx context.Context, b *Book) error

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id uint) error

	// DeleteBooks 批量删除,返回删除行数
	DeleteBooks(ctx context.Context, ids []uint) (int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, b *Book) error {
	if err := validateBook(b); err != nil {
		return err
	}
	return s.repo.Create(ctx, b)
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// GetImage 获取封面图字节
func (s *service) GetImage(ctx context.Context, id uint, slot ImageSlot) ([]byte, error) {
	img, err := s.repo.FindImage(ctx, id, slot)
	if err != nil {
		return nil, err
	}
	if len(img) == 0 {
		return nil, ErrImageNotFound
	}
	return img, nil
}

// SearchBooks 分页查询
func (s *service) SearchBooks(ctx context.Context, f Filter, p Page) ([]*Book, error) {
	return s.repo.FindMany(ctx, f, p.Normalize())
}

// CountBooks 统计总数
func (s *service) CountBooks(ctx context.Context, f Filter) (int64, error) {
	return s.repo.Count(ctx, f)
}

// UpdateBook 全字段更新
func (s *service) UpdateBook(ctx context.Context, b *Book) error {
	if err := validateBook(b); err != nil {
		return err
	}
	return s.repo.Update(ctx, b)
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// DeleteBooks 批量删除
func (s *service) DeleteBooks(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoIDs
	}
	return s.repo.DeleteByIDs(ctx, ids)
}

// validateBook 实体级业务规则校验
func validateBook(b *Book) error {
	if b.Title == "" {
		return ErrTitleRequired
	}
	if b.StockQty < 0 {
		b.StockQty = 0
	}
	if b.Price < 0 {
		b.Price = 0
	}
	return nil
}
