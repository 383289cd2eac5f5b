package book

import (
	"encoding/base64"
	"io"
	"mime/multipart"
	"strings"
)

// 封面图解析器
// 设计说明:
// 1. 每个槽位的最终内容按优先级决定:
//    本次请求上传的文件 > 请求体内联的base64数据 > 不提供
// 2. 创建时"不提供"落库为NULL;更新时"不提供"保持原值不变
//    (只有显式提交了新数据的槽位才会被覆盖)
// 3. 内联数据兼容data-URL前缀(data:image/jpeg;base64,xxx)和裸base64

// ImageInput 单个槽位的输入
type ImageInput struct {
	File   *multipart.FileHeader // 上传的文件(可空)
	Inline string                // 内联base64字符串(可空)
}

// Resolve 解析为最终存储的字节
// 文件读取失败按未提供处理(与解析失败静默归零的归一化约定一致)
func (in ImageInput) Resolve() []byte {
	if in.File != nil {
		if data := readFile(in.File); len(data) > 0 {
			return data
		}
	}
	return decodeInline(in.Inline)
}

// Present 本槽位是否提交了新数据(更新时用于判断是否覆盖)
func (in ImageInput) Present() bool {
	return in.File != nil || strings.TrimSpace(in.Inline) != ""
}

// readFile 读取上传文件的全部字节
func readFile(fh *multipart.FileHeader) []byte {
	f, err := fh.Open()
	if err != nil {
		return nil
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil
	}
	return data
}

// decodeInline 解码内联base64(容忍data-URL前缀,失败返回nil)
func decodeInline(s string) []byte {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	// 剥离 data:image/...;base64, 前缀
	if strings.HasPrefix(s, "data:") {
		idx := strings.Index(s, "base64,")
		if idx < 0 {
			return nil
		}
		s = s[idx+len("base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil
	}
	return data
}
