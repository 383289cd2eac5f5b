package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apporder "github.com/pustakalay/inventory/internal/application/order"
	"github.com/pustakalay/inventory/internal/domain/order"
	"github.com/pustakalay/inventory/internal/interface/http/dto"
	apperrors "github.com/pustakalay/inventory/pkg/errors"
	"github.com/pustakalay/inventory/pkg/response"
)

// OrderHandler 借阅单HTTP处理器
type OrderHandler struct {
	createUC       *apporder.CreateOrderUseCase
	getUC          *apporder.GetOrderUseCase
	listUC         *apporder.ListOrdersUseCase
	updateStatusUC *apporder.UpdateOrderStatusUseCase
	statsUC        *apporder.BookStatsUseCase
	createReaderUC *apporder.CreateReaderUseCase
}

// NewOrderHandler 创建借阅单处理器
func NewOrderHandler(
	createUC *apporder.CreateOrderUseCase,
	getUC *apporder.GetOrderUseCase,
	listUC *apporder.ListOrdersUseCase,
	updateStatusUC *apporder.UpdateOrderStatusUseCase,
	statsUC *apporder.BookStatsUseCase,
	createReaderUC *apporder.CreateReaderUseCase,
) *OrderHandler {
	return &OrderHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateStatusUC: updateStatusUC,
		statsUC:        statsUC,
		createReaderUC: createReaderUC,
	}
}

// Create 创建借阅单
// @Summary      创建借阅单
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "借阅单"
// @Success      201 {object} dto.OrderResponse
// @Failure      400 {object} map[string]string
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	o, err := h.createUC.Execute(c.Request.Context(), req.ReaderID, dto.ToOrderedBooks(req.Books), req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewOrderResponse(o))
}

// Get 借阅单详情
// @Summary      借阅单详情
// @Tags         借阅
// @Produce      json
// @Param        id path int true "借阅单ID"
// @Success      200 {object} dto.OrderResponse
// @Failure      404 {object} map[string]string
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	o, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewOrderResponse(o))
}

// List 借阅单列表
// @Summary      借阅单列表
// @Tags         借阅
// @Produce      json
// @Param        page  query int false "页码"
// @Param        limit query int false "每页数量"
// @Success      200 {object} dto.ListOrdersResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	h.list(c, 0)
}

// ListByReader 某读者的借阅单
// @Summary      读者借阅单列表
// @Tags         借阅
// @Produce      json
// @Param        readerId path int true "读者ID"
// @Success      200 {object} dto.ListOrdersResponse
// @Router       /api/orders/reader/{readerId} [get]
func (h *OrderHandler) ListByReader(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("readerId"))
	if err != nil || n < 1 {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}
	h.list(c, uint(n))
}

// list 列表查询的公共实现
func (h *OrderHandler) list(c *gin.Context, readerID uint) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	orders, total, err := h.listUC.Execute(c.Request.Context(), readerID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ListOrdersResponse{
		Orders:     make([]*dto.OrderResponse, len(orders)),
		Pagination: response.NewPagination(total, page, limit),
	}
	for i, o := range orders {
		resp.Orders[i] = dto.NewOrderResponse(o)
	}
	response.OK(c, resp)
}

// UpdateStatus 借阅单状态流转
// @Summary      状态流转
// @Description  pending→approved/cancelled,approved→returned
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        id      path int                          true "借阅单ID"
// @Param        request body dto.UpdateOrderStatusRequest true "目标状态"
// @Success      200 {object} dto.OrderResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, order.ErrInvalidStatus)
		return
	}

	o, err := h.updateStatusUC.Execute(c.Request.Context(), id, req.Status, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewOrderResponse(o))
}

// BookStats 图书借阅统计
// @Summary      图书借阅统计
// @Tags         借阅
// @Produce      json
// @Param        bookId path int true "图书ID"
// @Success      200 {object} order.BookStats
// @Router       /api/orders/book/{bookId}/stats [get]
func (h *OrderHandler) BookStats(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("bookId"))
	if err != nil || n < 1 {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	stats, err := h.statsUC.Execute(c.Request.Context(), uint(n))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// CreateReader 创建读者
// @Summary      创建读者
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateReaderRequest true "读者信息"
// @Success      201 {object} order.Reader
// @Failure      400 {object} map[string]string
// @Router       /api/readers [post]
func (h *OrderHandler) CreateReader(c *gin.Context) {
	var req dto.CreateReaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	r := &order.Reader{Name: req.Name, Phone: req.Phone, Address: req.Address}
	if err := h.createReaderUC.Execute(c.Request.Context(), r); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, r)
}

// queryInt 读取整数查询参数,缺失或非法时回退默认值
func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 1 {
		return def
	}
	return n
}
