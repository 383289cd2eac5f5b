package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pustakalay/inventory/internal/domain/master"
	"github.com/pustakalay/inventory/internal/interface/http/dto"
	"github.com/pustakalay/inventory/pkg/response"
)

// MasterHandler 主数据HTTP处理器(语言/分类)
// 主数据只有全表查询和创建,不经过用例层,直接使用仓储
type MasterHandler struct {
	repo master.Repository
}

// NewMasterHandler 创建主数据处理器
func NewMasterHandler(repo master.Repository) *MasterHandler {
	return &MasterHandler{repo: repo}
}

// ListLanguages 语言列表
// @Summary      语言列表
// @Tags         主数据
// @Produce      json
// @Success      200 {array} master.Language
// @Router       /api/masters/languages [get]
func (h *MasterHandler) ListLanguages(c *gin.Context) {
	langs, err := h.repo.ListLanguages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if langs == nil {
		langs = []*master.Language{}
	}
	response.OK(c, langs)
}

// CreateLanguage 创建语言
// @Summary      创建语言
// @Tags         主数据
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMasterRequest true "名称"
// @Success      201 {object} master.Language
// @Failure      400 {object} map[string]string
// @Router       /api/masters/languages [post]
func (h *MasterHandler) CreateLanguage(c *gin.Context) {
	var req dto.CreateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, master.ErrNameRequired)
		return
	}

	lang := &master.Language{Name: req.Name}
	if err := h.repo.CreateLanguage(c.Request.Context(), lang); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, lang)
}

// ListCategories 分类列表
// @Summary      分类列表
// @Tags         主数据
// @Produce      json
// @Success      200 {array} master.Category
// @Router       /api/masters/categories [get]
func (h *MasterHandler) ListCategories(c *gin.Context) {
	cats, err := h.repo.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if cats == nil {
		cats = []*master.Category{}
	}
	response.OK(c, cats)
}

// CreateCategory 创建分类
// @Summary      创建分类
// @Tags         主数据
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMasterRequest true "名称"
// @Success      201 {object} master.Category
// @Failure      400 {object} map[string]string
// @Router       /api/masters/categories [post]
func (h *MasterHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, master.ErrNameRequired)
		return
	}

	cat := &master.Category{Name: req.Name}
	if err := h.repo.CreateCategory(c.Request.Context(), cat); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, cat)
}
