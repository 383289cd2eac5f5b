package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appbook "github.com/pustakalay/inventory/internal/application/book"
	"github.com/pustakalay/inventory/internal/domain/book"
	"github.com/pustakalay/inventory/internal/interface/http/dto"
	apperrors "github.com/pustakalay/inventory/pkg/errors"
	"github.com/pustakalay/inventory/pkg/response"
)

// BookHandler 图书HTTP处理器
// 设计说明:
// 1. 处理器只做参数绑定、归一化入口和响应拼装,业务逻辑在用例层
// 2. baseURL用于拼接封面取图URL
type BookHandler struct {
	listUC       *appbook.ListBooksUseCase
	getUC        *appbook.GetBookUseCase
	imageUC      *appbook.GetImageUseCase
	createUC     *appbook.CreateBookUseCase
	updateUC     *appbook.UpdateBookUseCase
	deleteUC     *appbook.DeleteBookUseCase
	bulkCreateUC *appbook.BulkCreateUseCase
	bulkDeleteUC *appbook.BulkDeleteUseCase
	baseURL      string
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listUC *appbook.ListBooksUseCase,
	getUC *appbook.GetBookUseCase,
	imageUC *appbook.GetImageUseCase,
	createUC *appbook.CreateBookUseCase,
	updateUC *appbook.UpdateBookUseCase,
	deleteUC *appbook.DeleteBookUseCase,
	bulkCreateUC *appbook.BulkCreateUseCase,
	bulkDeleteUC *appbook.BulkDeleteUseCase,
	baseURL string,
) *BookHandler {
	return &BookHandler{
		listUC:       listUC,
		getUC:        getUC,
		imageUC:      imageUC,
		createUC:     createUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		bulkCreateUC: bulkCreateUC,
		bulkDeleteUC: bulkDeleteUC,
		baseURL:      baseURL,
	}
}

// List 目录查询
// @Summary      图书列表
// @Description  按过滤条件分页查询图书目录
// @Tags         图书
// @Produce      json
// @Param        search       query string false "自由文本搜索(书名/作者/编号)"
// @Param        page         query int    false "页码(默认1)"
// @Param        limit        query int    false "每页数量(默认10)"
// @Param        languageId   query string false "语言ID(可逗号分隔多个)"
// @Param        categoryId   query string false "分类ID(可逗号分隔多个)"
// @Param        isAvailable  query string false "可借状态(true/false,缺省不过滤)"
// @Param        kabatNumber  query int    false "柜号"
// @Param        bookSize     query string false "开本"
// @Param        minPages     query int    false "页数下限"
// @Param        maxPages     query int    false "页数上限"
// @Param        yearAD       query int    false "公元年份"
// @Param        vikramSamvat query int    false "维克拉姆纪年"
// @Param        veerSamvat   query int    false "维尔纪年"
// @Success      200 {object} dto.ListBooksResponse
// @Router       /api/books [get]
func (h *BookHandler) List(c *gin.Context) {
	filter, page := dto.FilterFromQuery(c.Request.URL.Query())

	result, err := h.listUC.Execute(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	books := make([]*dto.BookResponse, len(result.Books))
	for i, b := range result.Books {
		books[i] = dto.NewBookResponse(b, h.baseURL)
	}

	response.OK(c, dto.ListBooksResponse{
		Books:      books,
		Pagination: response.NewPagination(result.Total, result.Page.Page, result.Page.Limit),
	})
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} map[string]string
// @Router       /api/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewBookResponse(b, h.baseURL))
}

// GetImage 封面图
// @Summary      封面图
// @Description  按槽位(front/back)返回封面原始字节
// @Tags         图书
// @Produce      jpeg
// @Param        id   path int    true "图书ID"
// @Param        type path string true "槽位" Enums(front, back)
// @Success      200 {file} binary
// @Failure      404 {object} map[string]string
// @Router       /api/books/{id}/image/{type} [get]
func (h *BookHandler) GetImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	data, err := h.imageUC.Execute(c.Request.Context(), id, c.Param("type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "image/jpeg", data)
}

// Create 创建图书
// @Summary      创建图书
// @Description  multipart表单,frontImage/backImage支持文件或内联base64
// @Tags         图书
// @Accept       multipart/form-data
// @Produce      json
// @Param        title formData string true "书名"
// @Success      201 {object} dto.BookResponse
// @Failure      400 {object} map[string]string
// @Router       /api/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var form dto.BookForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), form.ToEntity(),
		h.formImage(c, "frontImage", form.FrontImage),
		h.formImage(c, "backImage", form.BackImage))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewBookResponse(b, h.baseURL))
}

// Update 更新图书
// @Summary      更新图书
// @Description  文本/数值字段整体覆盖,图片槽位仅在提交新数据时覆盖
// @Tags         图书
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} map[string]string
// @Router       /api/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form dto.BookForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), id, form.ToEntity(),
		h.formImage(c, "frontImage", form.FrontImage),
		h.formImage(c, "backImage", form.BackImage))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewBookResponse(b, h.baseURL))
}

// Delete 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Book deleted successfully")
}

// BulkCreate 批量导入
// @Summary      批量导入图书
// @Description  接受{"books":[...]}或裸数组;multipart时图片文件按books[i][frontImage]定位
// @Tags         图书
// @Accept       json
// @Produce      json
// @Success      201 {object} dto.BulkCreateResponse
// @Failure      400 {object} map[string]string
// @Router       /api/books/bulk [post]
func (h *BookHandler) BulkCreate(c *gin.Context) {
	items, err := h.readBulkItems(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.bulkCreateUC.Execute(c.Request.Context(), items)
	if err != nil {
		response.Error(c, err)
		return
	}

	created := make([]*dto.BookResponse, len(result.Created))
	for i, b := range result.Created {
		created[i] = dto.NewBookResponse(b, h.baseURL)
	}

	resp := dto.BulkCreateResponse{
		Message:        strconv.Itoa(len(created)) + " books created successfully",
		Count:          len(created),
		TotalProcessed: result.TotalProcessed,
		Failed:         result.Failed(),
		CreatedBooks:   created,
	}
	for _, f := range result.Failures {
		resp.Errors = append(resp.Errors, dto.BulkItemError{Index: f.Index, Error: f.Reason})
	}

	response.Created(c, resp)
}

// BulkDelete 批量删除
// @Summary      批量删除图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.BulkDeleteRequest true "ID集合"
// @Success      200 {object} dto.BulkDeleteResponse
// @Failure      400 {object} map[string]string
// @Router       /api/books/bulk-delete [delete]
func (h *BookHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, book.ErrNoIDs)
		return
	}

	count, err := h.bulkDeleteUC.Execute(c.Request.Context(), req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BulkDeleteResponse{
		Message: "Books deleted successfully",
		Count:   count,
	})
}

// readBulkItems 解析批量导入请求
// JSON请求直接读流;multipart请求从books字段取JSON,
// 图片文件按 books[i][frontImage] 字段名对位
func (h *BookHandler) readBulkItems(c *gin.Context) ([]appbook.BulkItem, error) {
	var (
		raw       []byte
		multipart bool
	)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			return nil, book.ErrNotAnArray
		}
		raw = []byte(c.Request.FormValue("books"))
		multipart = true
	} else {
		data, err := c.GetRawData()
		if err != nil {
			return nil, book.ErrNotAnArray
		}
		raw = data
	}

	dtoItems, err := dto.DecodeBulkBooks(raw)
	if err != nil {
		return nil, err
	}

	items := make([]appbook.BulkItem, len(dtoItems))
	for i := range dtoItems {
		it := &dtoItems[i]
		item := appbook.BulkItem{
			Entity:          it.ToEntity(),
			MissingRequired: !it.Valid(),
			Front:           appbook.ImageInput{Inline: it.FrontImage.Str()},
			Back:            appbook.ImageInput{Inline: it.BackImage.Str()},
		}

		if multipart && c.Request.MultipartForm != nil {
			if fhs := c.Request.MultipartForm.File[appbook.BulkFileKey(i, book.SlotFront)]; len(fhs) > 0 {
				item.Front.File = fhs[0]
			}
			if fhs := c.Request.MultipartForm.File[appbook.BulkFileKey(i, book.SlotBack)]; len(fhs) > 0 {
				item.Back.File = fhs[0]
			}
		}
		items[i] = item
	}
	return items, nil
}

// formImage 组装单个槽位的图片输入(文件优先,内联base64兜底)
func (h *BookHandler) formImage(c *gin.Context, field, inline string) appbook.ImageInput {
	in := appbook.ImageInput{Inline: inline}
	if fh, err := c.FormFile(field); err == nil {
		in.File = fh
	}
	return in
}

// parseID 解析路径中的数字ID,非法时直接响应400
func parseID(c *gin.Context) (uint, bool) {
	n, err := strconv.Atoi(c.Param("id"))
	if err != nil || n < 1 {
		response.Error(c, apperrors.ErrInvalidParams)
		return 0, false
	}
	return uint(n), true
}
