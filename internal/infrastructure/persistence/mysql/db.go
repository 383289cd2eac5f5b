package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pustakalay/inventory/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Println("database connected")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&LanguageModel{},
		&CategoryModel{},
		&BookModel{},
		&ReaderModel{},
		&OrderModel{},
		&OrderedBookModel{},
		&ActivityLogModel{},
	)
}

// LanguageModel GORM语言模型
type LanguageModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;comment:语言名称"`
}

// TableName 指定表名
func (LanguageModel) TableName() string {
	return "languages"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;comment:分类名称"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 可选字段全部使用指针,缺失时落库为NULL(原系统约定:绝不存空字符串)
// 2. BookCode唯一索引:MySQL唯一索引允许多个NULL,未填编号的记录不受约束
// 3. 封面图以longblob存储原始字节,读取走专用查询避免拖慢列表
// 4. LanguageID/CategoryID可空外键,删除被引用的主数据由数据库约束兜底
type BookModel struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"index:idx_search;size:300;not null;comment:书名"`
	Description *string `gorm:"type:text;comment:描述"`
	Author      *string `gorm:"index:idx_search;size:200;comment:作者"`
	Tikakar     *string `gorm:"size:200;comment:注释者"`
	Prakashak   *string `gorm:"size:200;comment:出版者"`
	Sampadak    *string `gorm:"size:200;comment:编辑"`
	Anuvadak    *string `gorm:"size:200;comment:译者"`
	Vishay      *string `gorm:"size:200;comment:主题"`
	Shreni1     *string `gorm:"size:100;comment:分类标签1"`
	Shreni2     *string `gorm:"size:100;comment:分类标签2"`
	Shreni3     *string `gorm:"size:100;comment:分类标签3"`
	BookSize    *string `gorm:"size:50;comment:开本"`
	Prakar      *string `gorm:"size:100;comment:类型"`

	Pages        *int `gorm:"comment:页数"`
	YearAD       *int `gorm:"comment:公元年份"`
	VikramSamvat *int `gorm:"comment:维克拉姆纪年"`
	VeerSamvat   *int `gorm:"comment:维尔纪年"`
	Edition      *int `gorm:"comment:版次"`
	BookCode     *int `gorm:"uniqueIndex;comment:图书编号"`
	KabatNumber  *int `gorm:"index;comment:柜号"`

	Price       float64 `gorm:"type:decimal(10,2);default:0;comment:价格"`
	StockQty    int     `gorm:"default:0;comment:库存数量"`
	IsAvailable bool    `gorm:"index;default:false;comment:是否可借"`
	Featured    bool    `gorm:"default:false;comment:是否推荐"`

	FrontImage []byte `gorm:"type:longblob;comment:封面"`
	BackImage  []byte `gorm:"type:longblob;comment:封底"`

	LanguageID *uint          `gorm:"index;comment:语言ID"`
	CategoryID *uint          `gorm:"index;comment:分类ID"`
	Language   *LanguageModel `gorm:"foreignKey:LanguageID"`
	Category   *CategoryModel `gorm:"foreignKey:CategoryID"`

	CreatedAt time.Time `gorm:"index:idx_list;comment:创建时间"` // 排序索引
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// ReaderModel GORM读者模型
type ReaderModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:200;not null;comment:姓名"`
	Phone     string    `gorm:"size:20;comment:电话"`
	Address   string    `gorm:"size:500;comment:地址"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (ReaderModel) TableName() string {
	return "readers"
}

// OrderModel GORM借阅单模型
// 与OrderedBookModel是一对多关系
type OrderModel struct {
	ID        uint               `gorm:"primaryKey"`
	ReaderID  uint               `gorm:"index;not null;comment:读者ID"`
	Status    int                `gorm:"index;type:tinyint;default:1;comment:状态(1待审批2已借出3已归还4已取消)"`
	Notes     string             `gorm:"size:1000;comment:备注"`
	Books     []OrderedBookModel `gorm:"foreignKey:OrderID"` // 一对多关联
	CreatedAt time.Time          `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time          `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderedBookModel GORM借阅明细模型
type OrderedBookModel struct {
	ID       uint `gorm:"primaryKey"`
	OrderID  uint `gorm:"index;not null;comment:借阅单ID"`
	BookID   uint `gorm:"index;not null;comment:图书ID"`
	Quantity int  `gorm:"not null;default:1;comment:数量"`
}

// TableName 指定表名
func (OrderedBookModel) TableName() string {
	return "ordered_books"
}

// ActivityLogModel GORM活动日志模型
type ActivityLogModel struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   *uint     `gorm:"index;comment:借阅单ID"`
	ReaderID  *uint     `gorm:"index;comment:读者ID"`
	Action    string    `gorm:"size:100;not null;comment:操作"`
	Details   string    `gorm:"size:2000;comment:详情"`
	CreatedAt time.Time `gorm:"index;comment:创建时间"`
}

// TableName 指定表名
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
