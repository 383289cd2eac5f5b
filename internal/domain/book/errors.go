package book

import (
	apperrors "github.com/pustakalay/inventory/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found")

	// ErrImageNotFound 请求的封面槽位没有图片
	ErrImageNotFound = apperrors.New(apperrors.ErrCodeImageNotFound, "Image not found")

	// ErrInvalidSlot 非法的图片槽位(只允许front/back)
	ErrInvalidSlot = apperrors.New(apperrors.ErrCodeInvalidParams, "Image type must be front or back")

	// ErrTitleRequired 书名必填
	ErrTitleRequired = apperrors.New(apperrors.ErrCodeMissingField, "Title is required")

	// ErrMissingTitleOrCode 批量条目缺少必填字段
	ErrMissingTitleOrCode = apperrors.New(apperrors.ErrCodeMissingField, "Missing title or bookCode")

	// ErrNotAnArray 批量接口的输入不是数组
	ErrNotAnArray = apperrors.New(apperrors.ErrCodeNotAnArray, "Data must be an array of books")

	// ErrBookCodeDuplicate bookCode已存在(唯一索引冲突)
	ErrBookCodeDuplicate = apperrors.New(apperrors.ErrCodeDuplicateCode, "bookCode already exists")

	// ErrNoIDs 批量删除未提供ID列表
	ErrNoIDs = apperrors.New(apperrors.ErrCodeInvalidParams, "ids must be a non-empty array")
)
