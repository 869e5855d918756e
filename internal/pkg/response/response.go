package response

import (
	"Lumina/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装，直接输出业务数据本体
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// Fail 失败返回封装，状态码 + {"error": msg}
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// Error 处理错误：参数类错误归为 400，业务错误查表，其余按存储故障透传 500
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		for target, mapped := range service.ErrorMap {
			if errors.Is(err, target) {
				code, ok = mapped, true
				break
			}
		}
	}
	if !ok {
		code = http.StatusInternalServerError
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
	}
	Fail(c, code, err.Error())
}
