package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pustakalay/inventory/internal/domain/activity"
	"github.com/pustakalay/inventory/internal/interface/http/dto"
	apperrors "github.com/pustakalay/inventory/pkg/errors"
	"github.com/pustakalay/inventory/pkg/response"
)

// ActivityHandler 活动日志HTTP处理器
// 日志是简单流水,CRUD直接走仓储
type ActivityHandler struct {
	repo activity.Repository
}

// NewActivityHandler 创建活动日志处理器
func NewActivityHandler(repo activity.Repository) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

// List 日志列表(时间倒序)
// @Summary      活动日志列表
// @Tags         活动日志
// @Produce      json
// @Success      200 {array} dto.ActivityResponse
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	logs, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewActivityResponses(logs))
}

// Get 日志详情
// @Summary      日志详情
// @Tags         活动日志
// @Produce      json
// @Param        id path int true "日志ID"
// @Success      200 {object} dto.ActivityResponse
// @Failure      404 {object} map[string]string
// @Router       /api/activities/{id} [get]
func (h *ActivityHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	l, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewActivityResponse(l))
}

// ListByOrder 某借阅单的日志
// @Summary      借阅单日志
// @Tags         活动日志
// @Produce      json
// @Param        orderId path int true "借阅单ID"
// @Success      200 {array} dto.ActivityResponse
// @Router       /api/activities/order/{orderId} [get]
func (h *ActivityHandler) ListByOrder(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("orderId"))
	if err != nil || n < 1 {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	logs, repoErr := h.repo.ListByOrder(c.Request.Context(), uint(n))
	if repoErr != nil {
		response.Error(c, repoErr)
		return
	}
	response.OK(c, dto.NewActivityResponses(logs))
}

// ListByReader 某读者的日志
// @Summary      读者日志
// @Tags         活动日志
// @Produce      json
// @Param        readerId path int true "读者ID"
// @Success      200 {array} dto.ActivityResponse
// @Router       /api/activities/reader/{readerId} [get]
func (h *ActivityHandler) ListByReader(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("readerId"))
	if err != nil || n < 1 {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	logs, repoErr := h.repo.ListByReader(c.Request.Context(), uint(n))
	if repoErr != nil {
		response.Error(c, repoErr)
		return
	}
	response.OK(c, dto.NewActivityResponses(logs))
}

// Create 写入日志
// @Summary      写入日志
// @Tags         活动日志
// @Accept       json
// @Produce      json
// @Param        request body dto.ActivityRequest true "日志内容"
// @Success      201 {object} dto.ActivityResponse
// @Failure      400 {object} map[string]string
// @Router       /api/activities [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, activity.ErrActionRequired)
		return
	}

	l := req.ToEntity()
	if err := h.repo.Create(c.Request.Context(), l); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewActivityResponse(l))
}

// Update 更新日志
// @Summary      更新日志
// @Tags         活动日志
// @Accept       json
// @Produce      json
// @Param        id      path int                 true "日志ID"
// @Param        request body dto.ActivityRequest true "日志内容"
// @Success      200 {object} dto.ActivityResponse
// @Failure      404 {object} map[string]string
// @Router       /api/activities/{id} [put]
func (h *ActivityHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, activity.ErrActionRequired)
		return
	}

	l := req.ToEntity()
	l.ID = id
	if err := h.repo.Update(c.Request.Context(), l); err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewActivityResponse(updated))
}

// Delete 删除日志
// @Summary      删除日志
// @Tags         活动日志
// @Produce      json
// @Param        id path int true "日志ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/activities/{id} [delete]
func (h *ActivityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Activity log deleted successfully")
}
