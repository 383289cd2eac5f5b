package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appbook "github.com/pustakalay/inventory/internal/application/book"
	apporder "github.com/pustakalay/inventory/internal/application/order"
	"github.com/pustakalay/inventory/internal/domain/book"
	"github.com/pustakalay/inventory/internal/infrastructure/config"
	"github.com/pustakalay/inventory/internal/infrastructure/persistence/mysql"
	"github.com/pustakalay/inventory/internal/interface/http/handler"
	"github.com/pustakalay/inventory/internal/interface/http/middleware"
	"github.com/pustakalay/inventory/pkg/metrics"
)

// @title        Pustakalay Inventory API
// @version      1.0
// @description  图书馆馆藏管理API:图书目录、主数据、借阅单与活动日志
// @BasePath     /

// main 主程序入口
// 依赖注入链:Repository ← Service ← UseCase ← Handler
// (wire.go中有等价的Wire注入器,运行wire gen可生成自动组装代码)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// 2. 初始化指标
	metrics.InitMetrics()

	// 3. 初始化数据库连接(附带自动迁移)
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 依赖注入(手动组装)

	// 基础设施层
	bookRepo := mysql.NewBookRepository(db)
	masterRepo := mysql.NewMasterRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	activityRepo := mysql.NewActivityRepository(db)

	// 领域层
	bookService := book.NewService(bookRepo)

	// 应用层
	listBooksUC := appbook.NewListBooksUseCase(bookService)
	getBookUC := appbook.NewGetBookUseCase(bookService)
	getImageUC := appbook.NewGetImageUseCase(bookService)
	createBookUC := appbook.NewCreateBookUseCase(bookService)
	updateBookUC := appbook.NewUpdateBookUseCase(bookService)
	deleteBookUC := appbook.NewDeleteBookUseCase(bookService)
	bulkCreateUC := appbook.NewBulkCreateUseCase(bookService)
	bulkDeleteUC := appbook.NewBulkDeleteUseCase(bookService)

	createOrderUC := apporder.NewCreateOrderUseCase(orderRepo, bookService, activityRepo)
	getOrderUC := apporder.NewGetOrderUseCase(orderRepo)
	listOrdersUC := apporder.NewListOrdersUseCase(orderRepo)
	updateStatusUC := apporder.NewUpdateOrderStatusUseCase(orderRepo, activityRepo)
	bookStatsUC := apporder.NewBookStatsUseCase(orderRepo)
	createReaderUC := apporder.NewCreateReaderUseCase(orderRepo)

	// 接口层
	bookHandler := handler.NewBookHandler(
		listBooksUC, getBookUC, getImageUC, createBookUC,
		updateBookUC, deleteBookUC, bulkCreateUC, bulkDeleteUC,
		cfg.Server.BaseURL,
	)
	masterHandler := handler.NewMasterHandler(masterRepo)
	orderHandler := handler.NewOrderHandler(
		createOrderUC, getOrderUC, listOrdersUC,
		updateStatusUC, bookStatsUC, createReaderUC,
	)
	activityHandler := handler.NewActivityHandler(activityRepo)

	// 5. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(metrics.GinMiddleware())

	// 6. 注册路由
	registerRoutes(r, bookHandler, masterHandler, orderHandler, activityHandler)

	// 7. 启动服务(带优雅停机)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("\n🚀 服务启动成功！\n")
		fmt.Printf("   访问地址: http://localhost%s\n", addr)
		fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
		fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
		fmt.Printf("\n按Ctrl+C停止服务\n\n")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	<-ctx.Done()
	stop()

	// 给在途请求10秒收尾时间
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("停机超时,强制退出: %v", err)
	}
	fmt.Println("服务已停止")
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	bookHandler *handler.BookHandler,
	masterHandler *handler.MasterHandler,
	orderHandler *handler.OrderHandler,
	activityHandler *handler.ActivityHandler,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "healthy"})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger文档(swag init生成)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// 图书模块
		books := api.Group("/books")
		{
			books.GET("", bookHandler.List)
			books.POST("", bookHandler.Create)
			books.POST("/bulk", bookHandler.BulkCreate)
			books.DELETE("/bulk-delete", bookHandler.BulkDelete)
			books.GET("/:id", bookHandler.Get)
			books.PUT("/:id", bookHandler.Update)
			books.DELETE("/:id", bookHandler.Delete)
			books.GET("/:id/image/:type", bookHandler.GetImage)
		}

		// 主数据模块
		masters := api.Group("/masters")
		{
			masters.GET("/languages", masterHandler.ListLanguages)
			masters.POST("/languages", masterHandler.CreateLanguage)
			masters.GET("/categories", masterHandler.ListCategories)
			masters.POST("/categories", masterHandler.CreateCategory)
		}

		// 借阅模块
		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.List)
			orders.POST("", orderHandler.Create)
			orders.GET("/:id", orderHandler.Get)
			orders.PUT("/:id/status", orderHandler.UpdateStatus)
			orders.GET("/reader/:readerId", orderHandler.ListByReader)
			orders.GET("/book/:bookId/stats", orderHandler.BookStats)
		}
		api.POST("/readers", orderHandler.CreateReader)

		// 活动日志模块
		activities := api.Group("/activities")
		{
			activities.GET("", activityHandler.List)
			activities.POST("", activityHandler.Create)
			activities.GET("/:id", activityHandler.Get)
			activities.PUT("/:id", activityHandler.Update)
			activities.DELETE("/:id", activityHandler.Delete)
			activities.GET("/order/:orderId", activityHandler.ListByOrder)
			activities.GET("/reader/:readerId", activityHandler.ListByReader)
		}
	}
}
