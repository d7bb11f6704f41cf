package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ovapal-api/internal/apperr"
	"ovapal-api/internal/transport/http/response"
)

// writeError 统一错误出口：业务错误按分类映射状态码，
// 其余一律 500，细节只进日志
func writeError(c *gin.Context, l *zap.Logger, err error) {
	if ae, ok := apperr.As(err); ok && ae.Kind != apperr.KindInternal {
		response.JSONError(c, ae.HTTPStatus(), ae.Msg)
		return
	}
	l.Error("unhandled error",
		zap.String("rid", c.GetString("X-Request-ID")),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	response.JSONError(c, http.StatusInternalServerError, "An unexpected error occurred")
}

func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.JSONError(c, http.StatusBadRequest, "Invalid "+name+" in path")
		return 0, false
	}
	return uint(v), true
}

func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		response.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
