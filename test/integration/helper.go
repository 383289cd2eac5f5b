package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 这些测试需要一个正在运行的服务实例和真实数据库,
// 通过环境变量PUSTAKALAY_TEST_BASE_URL指定服务地址,
// 未设置时整个测试文件跳过(不影响常规单元测试)

const Timeout = 10 * time.Second

// BaseURL 被测服务地址(如 http://localhost:8080)
func BaseURL(t *testing.T) string {
	t.Helper()

	base := os.Getenv("PUSTAKALAY_TEST_BASE_URL")
	if base == "" {
		t.Skip("集成测试需要设置PUSTAKALAY_TEST_BASE_URL")
	}
	return base
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Get(url)
	require.NoError(t, err, "GET %s", url)
	defer resp.Body.Close()

	decodeBody(t, resp, out)
	return resp.StatusCode
}

// PostJSON 发送POST请求(JSON体)
func PostJSON(t *testing.T, url string, body interface{}, out interface{}) int {
	t.Helper()
	return sendJSON(t, http.MethodPost, url, body, out)
}

// DeleteJSON 发送DELETE请求(可带JSON体)
func DeleteJSON(t *testing.T, url string, body interface{}, out interface{}) int {
	t.Helper()
	return sendJSON(t, http.MethodDelete, url, body, out)
}

func sendJSON(t *testing.T, method, url string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "%s %s", method, url)
	defer resp.Body.Close()

	decodeBody(t, resp, out)
	return resp.StatusCode
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return
	}

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out), "响应体: %s", string(data))
}
