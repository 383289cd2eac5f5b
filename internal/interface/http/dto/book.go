package dto

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/pustakalay/inventory/internal/domain/book"
	"github.com/pustakalay/inventory/pkg/response"
)

// BookForm 图书表单(multipart)
// 创建与更新共用:所有字段以原始字符串接收,在ToEntity中统一归一化。
// FrontImage/BackImage承载内联base64(data-URL),文件上传优先于内联数据,
// 由应用层的图片解析器决定最终存储内容。
type BookForm struct {
	Title        string `form:"title"`
	Description  string `form:"description"`
	Author       string `form:"author"`
	Tikakar      string `form:"tikakar"`
	Prakashak    string `form:"prakashak"`
	Sampadak     string `form:"sampadak"`
	Anuvadak     string `form:"anuvadak"`
	Vishay       string `form:"vishay"`
	Shreni1      string `form:"shreni1"`
	Shreni2      string `form:"shreni2"`
	Shreni3      string `form:"shreni3"`
	Pages        string `form:"pages"`
	YearAD       string `form:"yearAD"`
	VikramSamvat string `form:"vikramSamvat"`
	VeerSamvat   string `form:"veerSamvat"`
	Edition      string `form:"edition"`
	BookCode     string `form:"bookCode"`
	KabatNumber  string `form:"kabatNumber"`
	Price        string `form:"price"`
	StockQty     string `form:"stockQty"`
	IsAvailable  string `form:"isAvailable"`
	Featured     string `form:"featured"`
	BookSize     string `form:"bookSize"`
	Prakar       string `form:"prakar"`
	LanguageID   string `form:"languageId"`
	CategoryID   string `form:"categoryId"`
	FrontImage   string `form:"frontImage"`
	BackImage    string `form:"backImage"`
}

// ToEntity 表单 → 领域实体
// 图片字段不在这里处理,由应用层的图片解析器填充
func (f *BookForm) ToEntity() *book.Book {
	b := &book.Book{
		Title:        strings.TrimSpace(f.Title),
		Description:  StrOrNil(f.Description),
		Author:       StrOrNil(f.Author),
		Tikakar:      StrOrNil(f.Tikakar),
		Prakashak:    StrOrNil(f.Prakashak),
		Sampadak:     StrOrNil(f.Sampadak),
		Anuvadak:     StrOrNil(f.Anuvadak),
		Vishay:       StrOrNil(f.Vishay),
		Shreni1:      StrOrNil(f.Shreni1),
		Shreni2:      StrOrNil(f.Shreni2),
		Shreni3:      StrOrNil(f.Shreni3),
		BookSize:     StrOrNil(f.BookSize),
		Prakar:       StrOrNil(f.Prakar),
		Pages:        ParseIntSafe(f.Pages),
		YearAD:       ParseIntSafe(f.YearAD),
		VikramSamvat: ParseIntSafe(f.VikramSamvat),
		VeerSamvat:   ParseIntSafe(f.VeerSamvat),
		Edition:      ParseIntSafe(f.Edition),
		BookCode:     ParseIntSafe(f.BookCode),
		KabatNumber:  ParseIntSafe(f.KabatNumber),
		Price:        ParseFloatOrZero(f.Price),
		IsAvailable:  ParseBool(f.IsAvailable),
		Featured:     ParseBool(f.Featured),
	}

	if n := ParseIntSafe(f.StockQty); n != nil && *n > 0 {
		b.StockQty = *n
	}
	if id := ParseIntSafe(f.LanguageID); id != nil && *id > 0 {
		v := uint(*id)
		b.LanguageID = &v
	}
	if id := ParseIntSafe(f.CategoryID); id != nil && *id > 0 {
		v := uint(*id)
		b.CategoryID = &v
	}
	return b
}

// FilterFromQuery 查询串 → 过滤条件 + 分页参数
// 关键约定:isAvailable是三态的,只有参数出现时才参与过滤
func FilterFromQuery(q url.Values) (book.Filter, book.Page) {
	f := book.Filter{
		Search:       strings.TrimSpace(q.Get("search")),
		LanguageIDs:  parseIDList(q["languageId"]),
		CategoryIDs:  parseIDList(q["categoryId"]),
		KabatNumber:  ParseIntSafe(q.Get("kabatNumber")),
		BookSize:     strings.TrimSpace(q.Get("bookSize")),
		MinPages:     ParseIntSafe(q.Get("minPages")),
		MaxPages:     ParseIntSafe(q.Get("maxPages")),
		YearAD:       ParseIntSafe(q.Get("yearAD")),
		VikramSamvat: ParseIntSafe(q.Get("vikramSamvat")),
		VeerSamvat:   ParseIntSafe(q.Get("veerSamvat")),
	}

	if _, ok := q["isAvailable"]; ok {
		v := ParseBool(q.Get("isAvailable"))
		f.IsAvailable = &v
	}

	p := book.Page{}
	if n := ParseIntSafe(q.Get("page")); n != nil {
		p.Page = *n
	}
	if n := ParseIntSafe(q.Get("limit")); n != nil {
		p.Limit = *n
	}
	return f, p.Normalize()
}

// parseIDList 解析ID列表(无效片段丢弃)
// 同时兼容两种数组写法:重复参数(?languageId=1&languageId=2)
// 与逗号分隔(?languageId=1,2)
func parseIDList(values []string) []int {
	var ids []int
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if n := ParseIntSafe(part); n != nil {
				ids = append(ids, *n)
			}
		}
	}
	return ids
}

// =========================================
// 批量导入DTO
// =========================================

// BulkBookItem 批量导入的单条记录
// 所有字段使用宽容类型:数字/字符串/布尔/null均可接受
type BulkBookItem struct {
	Title        FlexString `json:"title"`
	Description  FlexString `json:"description"`
	Author       FlexString `json:"author"`
	Tikakar      FlexString `json:"tikakar"`
	Prakashak    FlexString `json:"prakashak"`
	Sampadak     FlexString `json:"sampadak"`
	Anuvadak     FlexString `json:"anuvadak"`
	Vishay       FlexString `json:"vishay"`
	Shreni1      FlexString `json:"shreni1"`
	Shreni2      FlexString `json:"shreni2"`
	Shreni3      FlexString `json:"shreni3"`
	Pages        FlexInt    `json:"pages"`
	YearAD       FlexInt    `json:"yearAD"`
	VikramSamvat FlexInt    `json:"vikramSamvat"`
	VeerSamvat   FlexInt    `json:"veerSamvat"`
	Edition      FlexInt    `json:"edition"`
	BookCode     FlexString `json:"bookCode"`
	KabatNumber  FlexInt    `json:"kabatNumber"`
	Price        FlexFloat  `json:"price"`
	StockQty     FlexInt    `json:"stockQty"`
	IsAvailable  FlexBool   `json:"isAvailable"`
	Featured     FlexBool   `json:"featured"`
	BookSize     FlexString `json:"bookSize"`
	Prakar       FlexString `json:"prakar"`
	LanguageID   FlexInt    `json:"languageId"`
	CategoryID   FlexInt    `json:"categoryId"`
	FrontImage   FlexString `json:"frontImage"`
	BackImage    FlexString `json:"backImage"`
}

// Valid 必填校验:title与bookCode同时存在才算合法
func (it *BulkBookItem) Valid() bool {
	return it.Title.Str() != "" && it.BookCode.IntValue() != nil
}

// ToEntity 批量条目 → 领域实体
func (it *BulkBookItem) ToEntity() *book.Book {
	b := &book.Book{
		Title:        it.Title.Str(),
		Description:  it.Description.Value,
		Author:       it.Author.Value,
		Tikakar:      it.Tikakar.Value,
		Prakashak:    it.Prakashak.Value,
		Sampadak:     it.Sampadak.Value,
		Anuvadak:     it.Anuvadak.Value,
		Vishay:       it.Vishay.Value,
		Shreni1:      it.Shreni1.Value,
		Shreni2:      it.Shreni2.Value,
		Shreni3:      it.Shreni3.Value,
		BookSize:     it.BookSize.Value,
		Prakar:       it.Prakar.Value,
		Pages:        it.Pages.Value,
		YearAD:       it.YearAD.Value,
		VikramSamvat: it.VikramSamvat.Value,
		VeerSamvat:   it.VeerSamvat.Value,
		Edition:      it.Edition.Value,
		BookCode:     it.BookCode.IntValue(),
		KabatNumber:  it.KabatNumber.Value,
		Price:        it.Price.FloatOrZero(),
		IsAvailable:  it.IsAvailable.Value,
		Featured:     it.Featured.Value,
	}

	if it.StockQty.Value != nil && *it.StockQty.Value > 0 {
		b.StockQty = *it.StockQty.Value
	}
	if it.LanguageID.Value != nil && *it.LanguageID.Value > 0 {
		v := uint(*it.LanguageID.Value)
		b.LanguageID = &v
	}
	if it.CategoryID.Value != nil && *it.CategoryID.Value > 0 {
		v := uint(*it.CategoryID.Value)
		b.CategoryID = &v
	}
	return b
}

// DecodeBulkBooks 解析批量导入请求体
// 兼容两种形状:{"books":[...]} 包装对象,或裸数组
// 两者都不是时整体拒绝,不做逐条处理
func DecodeBulkBooks(data []byte) ([]BulkBookItem, error) {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 {
		return nil, book.ErrNotAnArray
	}

	if data[0] == '{' {
		var wrapper struct {
			Books json.RawMessage `json:"books"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil || len(wrapper.Books) == 0 {
			return nil, book.ErrNotAnArray
		}
		data = wrapper.Books
	}

	var items []BulkBookItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, book.ErrNotAnArray
	}
	// 字面量null能成功解析为nil切片,同样不是数组
	if items == nil {
		return nil, book.ErrNotAnArray
	}
	return items, nil
}

// BulkDeleteRequest 批量删除请求
type BulkDeleteRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

// =========================================
// 图书响应DTO
// =========================================

// BookResponse 图书JSON表示
// 可选字段序列化为null而不是缺失;图片以取图URL暴露,无图为null
type BookResponse struct {
	ID           uint              `json:"id"`
	Title        string            `json:"title"`
	Description  *string           `json:"description"`
	Author       *string           `json:"author"`
	Tikakar      *string           `json:"tikakar"`
	Prakashak    *string           `json:"prakashak"`
	Sampadak     *string           `json:"sampadak"`
	Anuvadak     *string           `json:"anuvadak"`
	Vishay       *string           `json:"vishay"`
	Shreni1      *string           `json:"shreni1"`
	Shreni2      *string           `json:"shreni2"`
	Shreni3      *string           `json:"shreni3"`
	Pages        *int              `json:"pages"`
	YearAD       *int              `json:"yearAD"`
	VikramSamvat *int              `json:"vikramSamvat"`
	VeerSamvat   *int              `json:"veerSamvat"`
	Edition      *int              `json:"edition"`
	BookCode     *int              `json:"bookCode"`
	KabatNumber  *int              `json:"kabatNumber"`
	Price        float64           `json:"price"`
	StockQty     int               `json:"stockQty"`
	IsAvailable  bool              `json:"isAvailable"`
	Featured     bool              `json:"featured"`
	BookSize     *string           `json:"bookSize"`
	Prakar       *string           `json:"prakar"`
	FrontImage   *string           `json:"frontImage"`
	BackImage    *string           `json:"backImage"`
	LanguageID   *uint             `json:"languageId"`
	CategoryID   *uint             `json:"categoryId"`
	Language     *MasterResponse   `json:"language"`
	Category     *MasterResponse   `json:"category"`
	CreatedAt    string            `json:"createdAt"`
}

// NewBookResponse 领域实体 → 响应DTO
// baseURL用于拼接取图URL(如 http://localhost:8080)
func NewBookResponse(b *book.Book, baseURL string) *BookResponse {
	resp := &BookResponse{
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
		BookSize:     b.BookSize,
		Prakar:       b.Prakar,
		LanguageID:   b.LanguageID,
		CategoryID:   b.CategoryID,
		CreatedAt:    b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if b.HasImage(book.SlotFront) {
		u := imageURL(baseURL, b.ID, book.SlotFront)
		resp.FrontImage = &u
	}
	if b.HasImage(book.SlotBack) {
		u := imageURL(baseURL, b.ID, book.SlotBack)
		resp.BackImage = &u
	}

	if b.Language != nil {
		resp.Language = &MasterResponse{ID: b.Language.ID, Name: b.Language.Name}
	}
	if b.Category != nil {
		resp.Category = &MasterResponse{ID: b.Category.ID, Name: b.Category.Name}
	}
	return resp
}

// imageURL 拼接取图URL
func imageURL(baseURL string, id uint, slot book.ImageSlot) string {
	return fmt.Sprintf("%s/api/books/%d/image/%s", strings.TrimRight(baseURL, "/"), id, slot)
}

// ListBooksResponse 目录列表响应信封
type ListBooksResponse struct {
	Books      []*BookResponse     `json:"books"`
	Pagination response.Pagination `json:"pagination"`
}

// BulkItemError 批量导入的单条失败记录
type BulkItemError struct {
	Index int    `json:"index"` // 在输入列表中的位置
	Error string `json:"error"` // 失败原因
}

// BulkCreateResponse 批量导入结果摘要
type BulkCreateResponse struct {
	Message        string          `json:"message"`
	Count          int             `json:"count"`          // 成功条数
	TotalProcessed int             `json:"totalProcessed"` // 提交总数
	Failed         int             `json:"failed"`         // 失败条数
	CreatedBooks   []*BookResponse `json:"createdBooks"`
	Errors         []BulkItemError `json:"errors,omitempty"`
}

// BulkDeleteResponse 批量删除结果
type BulkDeleteResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"` // 实际删除条数
}
