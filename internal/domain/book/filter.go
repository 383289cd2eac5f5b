package book

// Filter 目录列表过滤条件
// 设计说明:
// 1. 每个字段都是可选的:零值/空切片/nil表示该条件不参与过滤,
//    绝不会产生排除全部记录的子句
// 2. 所有存在的条件之间是逻辑AND关系
// 3. Search在仓储层展开为 title/author 模糊匹配 OR bookCode精确匹配
//    (当Search可解析为整数时)的复合条件,文本匹配不区分大小写
// 4. IsAvailable是三态的:nil表示不过滤,区别于false
type Filter struct {
	Search       string // 自由文本搜索(书名/作者/bookCode)
	LanguageIDs  []int  // 语言ID:单个→相等,多个→IN集合
	CategoryIDs  []int  // 分类ID:单个→相等,多个→IN集合
	IsAvailable  *bool  // 可借状态(nil=不过滤)
	KabatNumber  *int   // 柜号
	BookSize     string // 开本(模糊匹配,不区分大小写)
	MinPages     *int   // 页数下限(单边有效)
	MaxPages     *int   // 页数上限(单边有效)
	YearAD       *int   // 公元年份
	VikramSamvat *int   // 维克拉姆纪年
	VeerSamvat   *int   // 维尔纪年
}

// Page 分页参数
// page/limit缺失或非数值时由调用方回退到默认值1/10
type Page struct {
	Page  int // 页码(从1开始)
	Limit int // 每页数量
}

// Offset 计算偏移量
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Normalize 应用默认值
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p
}
