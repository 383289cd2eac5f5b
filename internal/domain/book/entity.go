package book

import (
	"time"

	"github.com/pustakalay/inventory/internal/domain/master"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. 所有可选的文本/数值字段使用指针,缺失时持久化为NULL并以null序列化
//    (原系统约定:可选字段绝不存空字符串)
// 2. BookCode是业务编号,存在时全库唯一(由数据库唯一索引保证,NULL不参与)
// 3. FrontImage/BackImage保存封面原始字节,对外只暴露取图URL,二者互斥
// 4. 多个字段名沿用馆藏系统的印地语术语(tikakar注释者、prakashak出版者等)
type Book struct {
	ID          uint
	Title       string  // 书名(必填)
	Description *string // 描述
	Author      *string // 作者
	Tikakar     *string // 注释者
	Prakashak   *string // 出版者
	Sampadak    *string // 编辑
	Anuvadak    *string // 译者
	Vishay      *string // 主题
	Shreni1     *string // 分类标签1
	Shreni2     *string // 分类标签2
	Shreni3     *string // 分类标签3
	BookSize    *string // 开本
	Prakar      *string // 类型

	Pages        *int // 页数
	YearAD       *int // 公元年份
	VikramSamvat *int // 维克拉姆纪年
	VeerSamvat   *int // 维尔纪年
	Edition      *int // 版次
	BookCode     *int // 图书编号(存在时唯一)
	KabatNumber  *int // 柜号

	Price       float64 // 价格(缺失时为0)
	StockQty    int     // 库存数量(非负,默认0)
	IsAvailable bool    // 是否可借
	Featured    bool    // 是否推荐

	FrontImage []byte // 封面(原始字节,可为空)
	BackImage  []byte // 封底(原始字节,可为空)

	LanguageID *uint // 语言外键(可空)
	CategoryID *uint // 分类外键(可空)

	Language *master.Language // 关联语言(查询时预加载)
	Category *master.Category // 关联分类(查询时预加载)

	CreatedAt time.Time
}

// ImageSlot 封面图槽位(front/back)
type ImageSlot string

const (
	SlotFront ImageSlot = "front"
	SlotBack  ImageSlot = "back"
)

// ValidSlot 校验槽位取值
func ValidSlot(s string) bool {
	return ImageSlot(s) == SlotFront || ImageSlot(s) == SlotBack
}

// Image 返回指定槽位的图片字节
func (b *Book) Image(slot ImageSlot) []byte {
	if slot == SlotFront {
		return b.FrontImage
	}
	return b.BackImage
}

// HasImage 指定槽位是否存有图片
func (b *Book) HasImage(slot ImageSlot) bool {
	return len(b.Image(slot)) > 0
}
