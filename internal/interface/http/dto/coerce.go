package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// 输入归一化工具
// 前端提交的字段类型并不稳定:同一个字段可能是数字、数字字符串、
// 布尔、布尔字符串甚至null。这里统一在DTO层把异构输入归一到
// 语义类型,解析失败一律回退到零值/空值,绝不让错误向下传播。

// ParseIntSafe 安全解析整数
// 解析失败返回nil而不是错误,调用方据此区分"未提供/无效"与具体数值
func ParseIntSafe(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// ParseFloatOrZero 解析小数,缺失或无法解析时归零
func ParseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseBool 布尔归一:仅字面量"true"为真,其余(含缺失)一律为假
func ParseBool(s string) bool {
	return strings.TrimSpace(s) == "true"
}

// StrOrNil 空白字符串归一为nil,其余去除首尾空白后返回指针
func StrOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// FlexInt 宽容整数
// JSON反序列化时同时接受数字、数字字符串和null
type FlexInt struct {
	Value  *int
	Exists bool // 字段是否出现在原始JSON中
}

// UnmarshalJSON 实现json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	f.Exists = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		f.Value = &n
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Value = ParseIntSafe(s)
	}
	return nil // 无法解析按未提供处理
}

// FlexFloat 宽容小数,接受数字、数字字符串和null
type FlexFloat struct {
	Value  *float64
	Exists bool
}

// UnmarshalJSON 实现json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	f.Exists = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		f.Value = &v
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if parsed, perr := strconv.ParseFloat(s, 64); perr == nil {
			f.Value = &parsed
		}
	}
	return nil
}

// FloatOrZero 取值,未提供时归零
func (f FlexFloat) FloatOrZero() float64 {
	if f.Value == nil {
		return 0
	}
	return *f.Value
}

// FlexBool 宽容布尔,接受布尔、"true"/"false"字面量和null
// 其余取值一律归为false
type FlexBool struct {
	Value  bool
	Exists bool
}

// UnmarshalJSON 实现json.Unmarshaler
func (f *FlexBool) UnmarshalJSON(data []byte) error {
	f.Exists = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		f.Value = b
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Value = ParseBool(s)
	}
	return nil
}

// FlexString 宽容字符串,接受字符串、数字和null
// 数字会转成十进制字符串(前端偶尔把bookCode之类当数字传)
type FlexString struct {
	Value  *string
	Exists bool
}

// UnmarshalJSON 实现json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	f.Exists = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Value = StrOrNil(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		v := n.String()
		f.Value = &v
	}
	return nil
}

// Str 取值,未提供时返回空串
func (f FlexString) Str() string {
	if f.Value == nil {
		return ""
	}
	return *f.Value
}

// IntValue 将宽容字符串按整数解析(bookCode等数字编码字段使用)
func (f FlexString) IntValue() *int {
	if f.Value == nil {
		return nil
	}
	return ParseIntSafe(*f.Value)
}
