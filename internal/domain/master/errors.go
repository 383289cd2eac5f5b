package master

import (
	apperrors "github.com/pustakalay/inventory/pkg/errors"
)

// 主数据领域错误定义
var (
	// ErrNameRequired 名称必填
	ErrNameRequired = apperrors.New(apperrors.ErrCodeMissingField, "Name is required")
)
