//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 运行 `wire gen ./cmd/api` 生成wire_gen.go,
// main.go中的手动组装与这里的依赖图保持一致
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appbook "github.com/pustakalay/inventory/internal/application/book"
	apporder "github.com/pustakalay/inventory/internal/application/order"
	"github.com/pustakalay/inventory/internal/domain/book"
	"github.com/pustakalay/inventory/internal/infrastructure/config"
	"github.com/pustakalay/inventory/internal/infrastructure/persistence/mysql"
	"github.com/pustakalay/inventory/internal/interface/http/handler"
	"github.com/pustakalay/inventory/internal/interface/http/middleware"
	"github.com/pustakalay/inventory/pkg/metrics"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,
	mysql.NewMasterRepository,
	mysql.NewOrderRepository,
	mysql.NewActivityRepository,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewGetImageUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewBulkCreateUseCase,
	appbook.NewBulkDeleteUseCase,
	apporder.NewCreateOrderUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewUpdateOrderStatusUseCase,
	apporder.NewBookStatsUseCase,
	apporder.NewCreateReaderUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	provideBaseURL,
	handler.NewBookHandler,
	handler.NewMasterHandler,
	handler.NewOrderHandler,
	handler.NewActivityHandler,
)

// provideBaseURL 从配置提取取图URL前缀
// handler.NewBookHandler的baseURL参数是裸string,Wire需要显式Provider
func provideBaseURL(cfg *config.Config) string {
	return cfg.Server.BaseURL
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	masterHandler *handler.MasterHandler,
	orderHandler *handler.OrderHandler,
	activityHandler *handler.ActivityHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(metrics.GinMiddleware())

	registerRoutes(r, bookHandler, masterHandler, orderHandler, activityHandler)
	return r
}

// InitializeApp 初始化整个应用
// Wire会在编译期分析依赖链并生成组装代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
