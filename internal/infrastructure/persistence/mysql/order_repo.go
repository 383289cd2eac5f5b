package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pustakalay/inventory/internal/domain/order"
)

// orderRepository 借阅单仓储实现(MySQL)
// 设计说明:
// 1. 借阅单与明细通过GORM关联在同一事务中写入
// 2. 状态以int落库,实体层转换为具名类型
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建借阅单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建借阅单(含明细)
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := &OrderModel{
		ReaderID: o.ReaderID,
		Status:   int(o.Status),
		Notes:    o.Notes,
	}
	for _, b := range o.Books {
		model.Books = append(model.Books, OrderedBookModel{
			BookID:   b.BookID,
			Quantity: b.Quantity,
		})
	}

	// Create会级联写入Books明细(同一事务)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt
	for i := range model.Books {
		o.Books[i].ID = model.Books[i].ID
		o.Books[i].OrderID = model.ID
	}

	return nil
}

// FindByID 根据ID查找借阅单(含明细)
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := r.db.WithContext(ctx).Preload("Books").First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, err
	}

	return toOrderEntity(&model), nil
}

// Update 更新借阅单(状态/备注)
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	result := r.db.WithContext(ctx).
		Model(&OrderModel{ID: o.ID}).
		Updates(map[string]interface{}{
			"status": int(o.Status),
			"notes":  o.Notes,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// List 分页查询全部借阅单
func (r *orderRepository) List(ctx context.Context, page, limit int) ([]*order.Order, int64, error) {
	return r.list(ctx, nil, page, limit)
}

// ListByReader 查询某读者的借阅单
func (r *orderRepository) ListByReader(ctx context.Context, readerID uint, page, limit int) ([]*order.Order, int64, error) {
	return r.list(ctx, &readerID, page, limit)
}

// list 借阅单分页查询的公共实现
func (r *orderRepository) list(ctx context.Context, readerID *uint, page, limit int) ([]*order.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	tx := r.db.WithContext(ctx).Model(&OrderModel{})
	if readerID != nil {
		tx = tx.Where("reader_id = ?", *readerID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []OrderModel
	err := tx.
		Preload("Books").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}

	return orders, total, nil
}

// StatsByBook 统计某图书的借阅情况
func (r *orderRepository) StatsByBook(ctx context.Context, bookID uint) (*order.BookStats, error) {
	stats := &order.BookStats{BookID: bookID}

	row := r.db.WithContext(ctx).
		Model(&OrderedBookModel{}).
		Select("COUNT(DISTINCT order_id) AS total_orders, COALESCE(SUM(quantity), 0) AS total_qty").
		Where("book_id = ?", bookID).
		Row()

	if err := row.Scan(&stats.TotalOrders, &stats.TotalQty); err != nil {
		return nil, err
	}

	return stats, nil
}

// FindReader 根据ID查找读者
func (r *orderRepository) FindReader(ctx context.Context, id uint) (*order.Reader, error) {
	var model ReaderModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrReaderNotFound
		}
		return nil, err
	}

	return &order.Reader{
		ID:        model.ID,
		Name:      model.Name,
		Phone:     model.Phone,
		Address:   model.Address,
		CreatedAt: model.CreatedAt,
	}, nil
}

// CreateReader 创建读者
func (r *orderRepository) CreateReader(ctx context.Context, reader *order.Reader) error {
	model := &ReaderModel{
		Name:    reader.Name,
		Phone:   reader.Phone,
		Address: reader.Address,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	reader.ID = model.ID
	reader.CreatedAt = model.CreatedAt
	return nil
}

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(m *OrderModel) *order.Order {
	o := &order.Order{
		ID:        m.ID,
		ReaderID:  m.ReaderID,
		Status:    order.OrderStatus(m.Status),
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for _, b := range m.Books {
		o.Books = append(o.Books, order.OrderedBook{
			ID:       b.ID,
			OrderID:  b.OrderID,
			BookID:   b.BookID,
			Quantity: b.Quantity,
		})
	}
	return o
}
