package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pustakalay/inventory/internal/domain/activity"
)

// activityRepository 活动日志仓储实现(MySQL)
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository 创建活动日志仓储
func NewActivityRepository(db *gorm.DB) activity.Repository {
	return &activityRepository{db: db}
}

// Create 写入一条日志
func (r *activityRepository) Create(ctx context.Context, l *activity.ActivityLog) error {
	model := &ActivityLogModel{
		OrderID:  l.OrderID,
		ReaderID: l.ReaderID,
		Action:   l.Action,
		Details:  l.Details,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	l.ID = model.ID
	l.CreatedAt = model.CreatedAt
	return nil
}

// FindByID 根据ID查找日志
func (r *activityRepository) FindByID(ctx context.Context, id uint) (*activity.ActivityLog, error) {
	var model ActivityLogModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, activity.ErrNotFound
		}
		return nil, err
	}

	return toActivityEntity(&model), nil
}

// List 查询全部日志(时间倒序)
func (r *activityRepository) List(ctx context.Context) ([]*activity.ActivityLog, error) {
	return r.listWhere(ctx, "", nil)
}

// ListByOrder 查询某借阅单的日志
func (r *activityRepository) ListByOrder(ctx context.Context, orderID uint) ([]*activity.ActivityLog, error) {
	return r.listWhere(ctx, "order_id = ?", orderID)
}

// ListByReader 查询某读者的日志
func (r *activityRepository) ListByReader(ctx context.Context, readerID uint) ([]*activity.ActivityLog, error) {
	return r.listWhere(ctx, "reader_id = ?", readerID)
}

// listWhere 日志查询的公共实现
func (r *activityRepository) listWhere(ctx context.Context, query string, arg interface{}) ([]*activity.ActivityLog, error) {
	tx := r.db.WithContext(ctx).Model(&ActivityLogModel{})
	if query != "" {
		tx = tx.Where(query, arg)
	}

	var models []ActivityLogModel
	if err := tx.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	logs := make([]*activity.ActivityLog, len(models))
	for i := range models {
		logs[i] = toActivityEntity(&models[i])
	}
	return logs, nil
}

// Update 更新日志
func (r *activityRepository) Update(ctx context.Context, l *activity.ActivityLog) error {
	result := r.db.WithContext(ctx).
		Model(&ActivityLogModel{ID: l.ID}).
		Updates(map[string]interface{}{
			"order_id":  l.OrderID,
			"reader_id": l.ReaderID,
			"action":    l.Action,
			"details":   l.Details,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return activity.ErrNotFound
	}
	return nil
}

// Delete 删除日志
func (r *activityRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&ActivityLogModel{}, id)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return activity.ErrNotFound
	}
	return nil
}

// toActivityEntity GORM模型 → 领域实体
func toActivityEntity(m *ActivityLogModel) *activity.ActivityLog {
	return &activity.ActivityLog{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ReaderID:  m.ReaderID,
		Action:    m.Action,
		Details:   m.Details,
		CreatedAt: m.CreatedAt,
	}
}
