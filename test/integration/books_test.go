package integration

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 图书模块端到端测试
// 场景覆盖:批量导入→列表过滤→详情→删除 的完整闭环

// bookPayload 批量导入条目
type bookPayload map[string]interface{}

// bulkSummary 批量导入结果
type bulkSummary struct {
	Message        string `json:"message"`
	Count          int    `json:"count"`
	TotalProcessed int    `json:"totalProcessed"`
	Failed         int    `json:"failed"`
	CreatedBooks   []struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
	} `json:"createdBooks"`
	Errors []struct {
		Index int    `json:"index"`
		Error string `json:"error"`
	} `json:"errors"`
}

// listEnvelope 目录列表信封
type listEnvelope struct {
	Books []struct {
		ID          uint    `json:"id"`
		Title       string  `json:"title"`
		Author      *string `json:"author"`
		IsAvailable bool    `json:"isAvailable"`
	} `json:"books"`
	Pagination struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalPages int   `json:"totalPages"`
	} `json:"pagination"`
}

// uniqueCode 以时间戳生成不与既有数据冲突的bookCode
func uniqueCode(offset int) int {
	return int(time.Now().Unix()%100_000_000)*10 + offset
}

func TestBookLifecycle(t *testing.T) {
	base := BaseURL(t)
	marker := fmt.Sprintf("it-%d", time.Now().UnixNano())

	var created bulkSummary

	t.Run("批量导入含一条坏记录", func(t *testing.T) {
		payload := map[string]interface{}{
			"books": []bookPayload{
				{"title": marker + " One", "bookCode": uniqueCode(1), "author": marker, "isAvailable": "true"},
				{"title": marker + " Two", "bookCode": fmt.Sprint(uniqueCode(2)), "author": marker},
				{"bookCode": uniqueCode(3)}, // 缺title
			},
		}

		status := PostJSON(t, base+"/api/books/bulk", payload, &created)
		require.Equal(t, 201, status)

		assert.Equal(t, 2, created.Count)
		assert.Equal(t, 3, created.TotalProcessed)
		assert.Equal(t, 1, created.Failed)
		require.Len(t, created.Errors, 1)
		assert.Equal(t, 2, created.Errors[0].Index)
		assert.Equal(t, "Missing title or bookCode", created.Errors[0].Error)
	})

	t.Run("按作者搜索只命中导入的记录", func(t *testing.T) {
		var envelope listEnvelope
		status := GetJSON(t, base+"/api/books?search="+marker, &envelope)
		require.Equal(t, 200, status)

		assert.Equal(t, int64(2), envelope.Pagination.Total)
		for _, b := range envelope.Books {
			require.NotNil(t, b.Author)
			assert.Equal(t, marker, *b.Author)
		}
	})

	t.Run("详情返回null可选字段", func(t *testing.T) {
		require.NotEmpty(t, created.CreatedBooks)

		var detail struct {
			ID          uint        `json:"id"`
			Title       string      `json:"title"`
			Description interface{} `json:"description"`
			FrontImage  interface{} `json:"frontImage"`
		}
		status := GetJSON(t, fmt.Sprintf("%s/api/books/%d", base, created.CreatedBooks[0].ID), &detail)
		require.Equal(t, 200, status)

		assert.Nil(t, detail.Description)
		assert.Nil(t, detail.FrontImage)
	})

	t.Run("批量删除清理", func(t *testing.T) {
		ids := make([]uint, len(created.CreatedBooks))
		for i, b := range created.CreatedBooks {
			ids[i] = b.ID
		}

		var resp struct {
			Count int64 `json:"count"`
		}
		status := DeleteJSON(t, base+"/api/books/bulk-delete", map[string]interface{}{"ids": ids}, &resp)
		require.Equal(t, 200, status)
		assert.Equal(t, int64(len(ids)), resp.Count)
	})

	t.Run("删除后详情404", func(t *testing.T) {
		var errResp struct {
			Error string `json:"error"`
		}
		status := GetJSON(t, fmt.Sprintf("%s/api/books/%d", base, created.CreatedBooks[0].ID), &errResp)
		assert.Equal(t, 404, status)
		assert.Equal(t, "Book not found", errResp.Error)
	})
}

func TestMastersRoundTrip(t *testing.T) {
	base := BaseURL(t)
	name := fmt.Sprintf("it-lang-%d", time.Now().UnixNano())

	var lang struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	status := PostJSON(t, base+"/api/masters/languages", map[string]string{"name": name}, &lang)
	require.Equal(t, 201, status)
	assert.NotZero(t, lang.ID)

	var langs []struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	status = GetJSON(t, base+"/api/masters/languages", &langs)
	require.Equal(t, 200, status)

	var found bool
	for _, l := range langs {
		if l.ID == lang.ID {
			found = true
			assert.Equal(t, name, l.Name)
		}
	}
	assert.True(t, found, "新建的语言应出现在全表列表中")
}
