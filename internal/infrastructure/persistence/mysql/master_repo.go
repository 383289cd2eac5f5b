package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/pustakalay/inventory/internal/domain/master"
)

// masterRepository 主数据仓储实现(MySQL)
// 语言/分类为全表小数据量,不做分页
type masterRepository struct {
	db *gorm.DB
}

// NewMasterRepository 创建主数据仓储
func NewMasterRepository(db *gorm.DB) master.Repository {
	return &masterRepository{db: db}
}

// ListLanguages 查询全部语言
func (r *masterRepository) ListLanguages(ctx context.Context) ([]*master.Language, error) {
	var models []LanguageModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}

	languages := make([]*master.Language, len(models))
	for i, m := range models {
		languages[i] = &master.Language{ID: m.ID, Name: m.Name}
	}
	return languages, nil
}

// CreateLanguage 创建语言
func (r *masterRepository) CreateLanguage(ctx context.Context, l *master.Language) error {
	model := &LanguageModel{Name: l.Name}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	l.ID = model.ID
	return nil
}

// ListCategories 查询全部分类
func (r *masterRepository) ListCategories(ctx context.Context) ([]*master.Category, error) {
	var models []CategoryModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}

	categories := make([]*master.Category, len(models))
	for i, m := range models {
		categories[i] = &master.Category{ID: m.ID, Name: m.Name}
	}
	return categories, nil
}

// CreateCategory 创建分类
func (r *masterRepository) CreateCategory(ctx context.Context, c *master.Category) error {
	model := &CategoryModel{Name: c.Name}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	c.ID = model.ID
	return nil
}
