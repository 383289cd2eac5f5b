package master

// 主数据实体:语言与分类
// 设计说明:
// 1. 两者都只有ID+名称,被Book通过外键引用
// 2. 删除被引用的记录不做业务层保护,由数据库外键约束兜底
//    (约束冲突以持久化错误形式浮出)

// Language 语言
type Language struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Category 分类
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
