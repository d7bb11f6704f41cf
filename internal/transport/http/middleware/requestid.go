package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 上下文键与响应头同名，访问日志和错误日志靠它串联一次请求
const KeyRequestID = "X-Request-ID"

// RequestID 透传调用方带来的请求 ID，缺失或全空白时补发一个
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(KeyRequestID))
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
