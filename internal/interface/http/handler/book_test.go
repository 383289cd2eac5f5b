package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/pustakalay/inventory/internal/application/book"
	"github.com/pustakalay/inventory/internal/domain/book"
)

// fakeBookService 内存图书服务,覆盖处理器测试所需的行为
type fakeBookService struct {
	nextID uint
	books  map[uint]*book.Book
}

func newFakeService() *fakeBookService {
	return &fakeBookService{nextID: 1, books: make(map[uint]*book.Book)}
}

func (s *fakeBookService) CreateBook(ctx context.Context, b *book.Book) error {
	if b.Title == "" {
		return book.ErrTitleRequired
	}
	b.ID = s.nextID
	s.nextID++
	stored := *b
	s.books[b.ID] = &stored
	return nil
}

func (s *fakeBookService) GetBook(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := s.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *fakeBookService) GetImage(ctx context.Context, id uint, slot book.ImageSlot) ([]byte, error) {
	b, err := s.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.HasImage(slot) {
		return nil, book.ErrImageNotFound
	}
	return b.Image(slot), nil
}

func (s *fakeBookService) SearchBooks(ctx context.Context, f book.Filter, p book.Page) ([]*book.Book, error) {
	var all []*book.Book
	for _, b := range s.books {
		copied := *b
		all = append(all, &copied)
	}
	if all == nil {
		all = []*book.Book{}
	}
	return all, nil
}

func (s *fakeBookService) CountBooks(ctx context.Context, f book.Filter) (int64, error) {
	return int64(len(s.books)), nil
}

func (s *fakeBookService) UpdateBook(ctx context.Context, b *book.Book) error {
	if _, ok := s.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	stored := *b
	s.books[b.ID] = &stored
	return nil
}

func (s *fakeBookService) DeleteBook(ctx context.Context, id uint) error {
	if _, ok := s.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(s.books, id)
	return nil
}

func (s *fakeBookService) DeleteBooks(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, book.ErrNoIDs
	}
	var deleted int64
	for _, id := range ids {
		if _, ok := s.books[id]; ok {
			delete(s.books, id)
			deleted++
		}
	}
	return deleted, nil
}

// setupRouter 组装测试路由(与生产注册保持一致的图书路由)
func setupRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewBookHandler(
		appbook.NewListBooksUseCase(svc),
		appbook.NewGetBookUseCase(svc),
		appbook.NewGetImageUseCase(svc),
		appbook.NewCreateBookUseCase(svc),
		appbook.NewUpdateBookUseCase(svc),
		appbook.NewDeleteBookUseCase(svc),
		appbook.NewBulkCreateUseCase(svc),
		appbook.NewBulkDeleteUseCase(svc),
		"http://localhost:8080",
	)

	r := gin.New()
	books := r.Group("/api/books")
	{
		books.GET("", h.List)
		books.POST("", h.Create)
		books.POST("/bulk", h.BulkCreate)
		books.DELETE("/bulk-delete", h.BulkDelete)
		books.GET("/:id", h.Get)
		books.PUT("/:id", h.Update)
		books.DELETE("/:id", h.Delete)
		books.GET("/:id/image/:type", h.GetImage)
	}
	return r
}

// newMultipart 构造multipart表单体,返回Content-Type
func newMultipart(t *testing.T, buf *bytes.Buffer, fields map[string]string) string {
	t.Helper()

	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return mw.FormDataContentType()
}

func doRequest(r *gin.Engine, method, path string, body []byte, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetBookNotFound(t *testing.T) {
	r := setupRouter(newFakeService())

	w := doRequest(r, http.MethodGet, "/api/books/42", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Book not found"}`, w.Body.String())
}

func TestGetBookInvalidID(t *testing.T) {
	r := setupRouter(newFakeService())

	w := doRequest(r, http.MethodGet, "/api/books/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBook(t *testing.T) {
	svc := newFakeService()
	require.NoError(t, svc.CreateBook(context.Background(), &book.Book{Title: "Doomed"}))
	r := setupRouter(svc)

	w := doRequest(r, http.MethodDelete, "/api/books/1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Book deleted successfully"}`, w.Body.String())

	// 再删一次:404
	w = doRequest(r, http.MethodDelete, "/api/books/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBooksEnvelope(t *testing.T) {
	svc := newFakeService()
	ctx := context.Background()
	require.NoError(t, svc.CreateBook(ctx, &book.Book{Title: "A"}))
	require.NoError(t, svc.CreateBook(ctx, &book.Book{Title: "B"}))
	r := setupRouter(svc)

	w := doRequest(r, http.MethodGet, "/api/books?page=1&limit=10", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Books      []json.RawMessage `json:"books"`
		Pagination struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	assert.Len(t, envelope.Books, 2)
	assert.Equal(t, int64(2), envelope.Pagination.Total)
	assert.Equal(t, 1, envelope.Pagination.Page)
	assert.Equal(t, 10, envelope.Pagination.Limit)
	assert.Equal(t, 1, envelope.Pagination.TotalPages)
}

func TestCreateBookMultipart(t *testing.T) {
	r := setupRouter(newFakeService())

	body := &bytes.Buffer{}
	form := newMultipart(t, body, map[string]string{
		"title":       "Bhagavad Gita",
		"bookCode":    "1001",
		"price":       "150.50",
		"isAvailable": "true",
	})

	w := doRequest(r, http.MethodPost, "/api/books", body.Bytes(), form)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bhagavad Gita", resp["title"])
	assert.Equal(t, float64(1001), resp["bookCode"])
	assert.Equal(t, 150.50, resp["price"])
	assert.Equal(t, true, resp["isAvailable"])
	assert.Nil(t, resp["author"], "未提供的可选字段序列化为null")
	assert.Nil(t, resp["frontImage"])
}

func TestCreateBookMissingTitle(t *testing.T) {
	r := setupRouter(newFakeService())

	body := &bytes.Buffer{}
	form := newMultipart(t, body, map[string]string{"bookCode": "1001"})

	w := doRequest(r, http.MethodPost, "/api/books", body.Bytes(), form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Title is required"}`, w.Body.String())
}

func TestBulkCreateNotAnArray(t *testing.T) {
	r := setupRouter(newFakeService())

	w := doRequest(r, http.MethodPost, "/api/books/bulk",
		[]byte(`{"title":"not a list"}`), "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Data must be an array of books"}`, w.Body.String())
}

func TestBulkCreateSummary(t *testing.T) {
	r := setupRouter(newFakeService())

	payload := `{"books":[
		{"title":"One","bookCode":1},
		{"title":"Two","bookCode":"2"},
		{"bookCode":3},
		{"title":"Four","bookCode":4}
	]}`

	w := doRequest(r, http.MethodPost, "/api/books/bulk", []byte(payload), "application/json")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message        string `json:"message"`
		Count          int    `json:"count"`
		TotalProcessed int    `json:"totalProcessed"`
		Failed         int    `json:"failed"`
		CreatedBooks   []struct {
			Title string `json:"title"`
		} `json:"createdBooks"`
		Errors []struct {
			Index int    `json:"index"`
			Error string `json:"error"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "3 books created successfully", resp.Message)
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, 4, resp.TotalProcessed)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, 2, resp.Errors[0].Index)
	assert.Equal(t, "Missing title or bookCode", resp.Errors[0].Error)
}

func TestBulkCreateNoErrorsKeyWhenAllSucceed(t *testing.T) {
	r := setupRouter(newFakeService())

	w := doRequest(r, http.MethodPost, "/api/books/bulk",
		[]byte(`[{"title":"One","bookCode":1}]`), "application/json")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	_, present := resp["errors"]
	assert.False(t, present, "全部成功时省略errors字段")
}

func TestBulkDelete(t *testing.T) {
	svc := newFakeService()
	ctx := context.Background()
	require.NoError(t, svc.CreateBook(ctx, &book.Book{Title: "A"}))
	require.NoError(t, svc.CreateBook(ctx, &book.Book{Title: "B"}))
	r := setupRouter(svc)

	w := doRequest(r, http.MethodDelete, "/api/books/bulk-delete",
		[]byte(`{"ids":[1,2,99]}`), "application/json")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
		Count   int64  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Count)
}

func TestGetImage(t *testing.T) {
	svc := newFakeService()
	payload := []byte{0xff, 0xd8, 0xff}
	require.NoError(t, svc.CreateBook(context.Background(),
		&book.Book{Title: "Cover", FrontImage: payload}))
	r := setupRouter(svc)

	t.Run("封面字节与content-type", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/books/1/image/front", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
		assert.Equal(t, payload, w.Body.Bytes())
	})

	t.Run("空槽位404", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/books/1/image/back", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Image not found"}`, w.Body.String())
	})

	t.Run("非法槽位400", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/books/1/image/inside", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Image type must be front or back"}`, w.Body.String())
	})
}
