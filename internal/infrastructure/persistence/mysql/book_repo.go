package mysql

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/pustakalay/inventory/internal/domain/book"
	"github.com/pustakalay/inventory/internal/domain/master"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如bookCode重复),转换为业务错误;
//    其余持久化错误原样向上传递(对外表现为500+原始错误消息)
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// =========================================
// 谓词构建
// =========================================

// condition 单个过滤谓词片段
// 显式的(SQL,参数)结构:缺失的过滤条件不会产生片段,
// 所有片段之间按AND组合
type condition struct {
	query string
	args  []interface{}
}

// buildConditions 将领域过滤条件翻译为谓词片段列表
// 规则(与对外API语义一一对应):
// - search: title/author模糊匹配(不区分大小写) OR bookCode精确匹配
//   (仅当search可解析为整数时bookCode分支才参与)
// - languageId/categoryId: 单值→相等,多值→IN
// - isAvailable: 三态,nil不过滤
// - minPages/maxPages: 任一边存在即参与,只约束给定的边
func buildConditions(f book.Filter) []condition {
	var conds []condition

	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		query := "LOWER(title) LIKE ? OR LOWER(author) LIKE ?"
		args := []interface{}{like, like}

		if code, err := strconv.Atoi(strings.TrimSpace(f.Search)); err == nil {
			query += " OR book_code = ?"
			args = append(args, code)
		}

		conds = append(conds, condition{"(" + query + ")", args})
	}

	if len(f.LanguageIDs) == 1 {
		conds = append(conds, condition{"language_id = ?", []interface{}{f.LanguageIDs[0]}})
	} else if len(f.LanguageIDs) > 1 {
		conds = append(conds, condition{"language_id IN ?", []interface{}{f.LanguageIDs}})
	}

	if len(f.CategoryIDs) == 1 {
		conds = append(conds, condition{"category_id = ?", []interface{}{f.CategoryIDs[0]}})
	} else if len(f.CategoryIDs) > 1 {
		conds = append(conds, condition{"category_id IN ?", []interface{}{f.CategoryIDs}})
	}

	if f.IsAvailable != nil {
		conds = append(conds, condition{"is_available = ?", []interface{}{*f.IsAvailable}})
	}

	if f.KabatNumber != nil {
		conds = append(conds, condition{"kabat_number = ?", []interface{}{*f.KabatNumber}})
	}

	if f.BookSize != "" {
		conds = append(conds, condition{"LOWER(book_size) LIKE ?", []interface{}{"%" + strings.ToLower(f.BookSize) + "%"}})
	}

	if f.MinPages != nil {
		conds = append(conds, condition{"pages >= ?", []interface{}{*f.MinPages}})
	}
	if f.MaxPages != nil {
		conds = append(conds, condition{"pages <= ?", []interface{}{*f.MaxPages}})
	}

	if f.YearAD != nil {
		conds = append(conds, condition{"year_ad = ?", []interface{}{*f.YearAD}})
	}
	if f.VikramSamvat != nil {
		conds = append(conds, condition{"vikram_samvat = ?", []interface{}{*f.VikramSamvat}})
	}
	if f.VeerSamvat != nil {
		conds = append(conds, condition{"veer_samvat = ?", []interface{}{*f.VeerSamvat}})
	}

	return conds
}

// applyConditions 把谓词片段依次挂到查询上(GORM多个Where即AND)
func applyConditions(tx *gorm.DB, conds []condition) *gorm.DB {
	for _, c := range conds {
		tx = tx.Where(c.query, c.args...)
	}
	return tx
}

// =========================================
// Repository实现
// =========================================

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := r.db.WithContext(ctx).Omit("Language", "Category").Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrBookCodeDuplicate
		}
		return err
	}

	// 回填自增ID与创建时间
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt

	return nil
}

// FindByID 根据ID查找图书(预加载关联)
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).
		Preload("Language").
		Preload("Category").
		First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, err
	}

	return toBookEntity(&model), nil
}

// FindImage 读取指定槽位的图片字节(只查询图片列)
func (r *bookRepository) FindImage(ctx context.Context, id uint, slot book.ImageSlot) ([]byte, error) {
	column := "front_image"
	if slot == book.SlotBack {
		column = "back_image"
	}

	var model BookModel
	err := r.db.WithContext(ctx).
		Select("id", column).
		First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, err
	}

	if slot == book.SlotBack {
		return model.BackImage, nil
	}
	return model.FrontImage, nil
}

// FindMany 按过滤条件分页查询
// 排序:创建时间降序,时间相同按ID降序(后插入的在前)
func (r *bookRepository) FindMany(ctx context.Context, f book.Filter, p book.Page) ([]*book.Book, error) {
	var models []BookModel

	tx := r.db.WithContext(ctx).Model(&BookModel{})
	tx = applyConditions(tx, buildConditions(f))

	err := tx.
		Preload("Language").
		Preload("Category").
		Order("created_at DESC, id DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, nil
}

// Count 统计满足过滤条件的总记录数
func (r *bookRepository) Count(ctx context.Context, f book.Filter) (int64, error) {
	var total int64

	tx := r.db.WithContext(ctx).Model(&BookModel{})
	tx = applyConditions(tx, buildConditions(f))

	if err := tx.Count(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

// Update 全字段更新图书
// 使用Select("*")强制写入零值字段(false/0/NULL都要落库)
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	result := r.db.WithContext(ctx).
		Model(&BookModel{ID: b.ID}).
		Select("*").
		Omit("id", "created_at", "Language", "Category").
		Updates(model)

	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return book.ErrBookCodeDuplicate
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Updates对不存在的行不报错,需要显式确认
		var count int64
		if err := r.db.WithContext(ctx).Model(&BookModel{}).Where("id = ?", b.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return book.ErrBookNotFound
		}
	}

	return nil
}

// Delete 根据ID删除图书
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&BookModel{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// DeleteByIDs 批量删除
func (r *bookRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&BookModel{}, ids)

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:           b.ID,
		Title:        b.Title,
		Description:  b.Description,
		Author:       b.Author,
		Tikakar:      b.Tikakar,
		Prakashak:    b.Prakashak,
		Sampadak:     b.Sampadak,
		Anuvadak:     b.Anuvadak,
		Vishay:       b.Vishay,
		Shreni1:      b.Shreni1,
		Shreni2:      b.Shreni2,
		Shreni3:      b.Shreni3,
		BookSize:     b.BookSize,
		Prakar:       b.Prakar,
		Pages:        b.Pages,
		YearAD:       b.YearAD,
		VikramSamvat: b.VikramSamvat,
		VeerSamvat:   b.VeerSamvat,
		Edition:      b.Edition,
		BookCode:     b.BookCode,
		KabatNumber:  b.KabatNumber,
		Price:        b.Price,
		StockQty:     b.StockQty,
		IsAvailable:  b.IsAvailable,
		Featured:     b.Featured,
		FrontImage:   b.FrontImage,
		BackImage:    b.BackImage,
		LanguageID:   b.LanguageID,
		CategoryID:   b.CategoryID,
		CreatedAt:    b.CreatedAt,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) *book.Book {
	b := &book.Book{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Author:       m.Author,
		Tikakar:      m.Tikakar,
		Prakashak:    m.Prakashak,
		Sampadak:     m.Sampadak,
		Anuvadak:     m.Anuvadak,
		Vishay:       m.Vishay,
		Shreni1:      m.Shreni1,
		Shreni2:      m.Shreni2,
		Shreni3:      m.Shreni3,
		BookSize:     m.BookSize,
		Prakar:       m.Prakar,
		Pages:        m.Pages,
		YearAD:       m.YearAD,
		VikramSamvat: m.VikramSamvat,
		VeerSamvat:   m.VeerSamvat,
		Edition:      m.Edition,
		BookCode:     m.BookCode,
		KabatNumber:  m.KabatNumber,
		Price:        m.Price,
		StockQty:     m.StockQty,
		IsAvailable:  m.IsAvailable,
		Featured:     m.Featured,
		FrontImage:   m.FrontImage,
		BackImage:    m.BackImage,
		LanguageID:   m.LanguageID,
		CategoryID:   m.CategoryID,
		CreatedAt:    m.CreatedAt,
	}

	if m.Language != nil {
		b.Language = &master.Language{ID: m.Language.ID, Name: m.Language.Name}
	}
	if m.Category != nil {
		b.Category = &master.Category{ID: m.Category.ID, Name: m.Category.Name}
	}

	return b
}
