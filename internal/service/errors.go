package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrUnauthorized        = errors.New("Unauthorized")
	ErrPostNotFound        = errors.New("Not found")
	ErrCategoryNameEmpty   = errors.New("分类名称不能为空")
	ErrCategoryHasPosts    = errors.New("该分类下有文章，无法删除")
	ErrCategoryHasChildren = errors.New("该分类包含子分类，请先删除子分类")
	ErrFileMissing         = errors.New("No file uploaded")
	ErrAssetDomainMissing  = errors.New("assets public_domain not configured")
	ErrLoginIncorrect      = errors.New("用户名或密码错误")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

// ErrorMap 业务错误到 HTTP 状态码的映射，未收录的错误一律按存储故障返回 500
var ErrorMap = map[error]int{
	ErrParamInvalid:        http.StatusBadRequest,
	ErrUnauthorized:        http.StatusUnauthorized,
	ErrPostNotFound:        http.StatusNotFound,
	ErrCategoryNameEmpty:   http.StatusBadRequest,
	ErrCategoryHasPosts:    http.StatusBadRequest,
	ErrCategoryHasChildren: http.StatusBadRequest,
	ErrFileMissing:         http.StatusBadRequest,
	ErrAssetDomainMissing:  http.StatusInternalServerError,
	ErrLoginIncorrect:      http.StatusUnauthorized,
	UnExpectedError:        http.StatusInternalServerError,
}
