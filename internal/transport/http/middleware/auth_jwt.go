package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ovapal-api/internal/core/auth"
	"ovapal-api/internal/transport/http/response"
)

// 上下文键：经校验的令牌主体（用户 ID）
const KeyUserID = "userId"

// AuthJWT 受保护路由的鉴权网关：只管令牌有无与真伪，不做资源级判断。
// "Bearer " 前缀可选（大小写敏感），缺失/空白/校验失败一律 401。
func AuthJWT(j *auth.JWTer, l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			l.Warn("authorization header missing", zap.String("path", c.Request.URL.Path))
			response.AbortError(c, http.StatusUnauthorized, "Authorization token is required")
			return
		}
		// 先剥前缀再判空，"Bearer" 后面只有空白同样算缺令牌
		token := raw
		if token == "Bearer" {
			token = ""
		} else if strings.HasPrefix(token, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
		}
		if token == "" {
			l.Warn("empty token after extraction", zap.String("path", c.Request.URL.Path))
			response.AbortError(c, http.StatusUnauthorized, "Authorization token is required")
			return
		}

		claims, err := j.Parse(token)
		if err != nil {
			// 过期与其余非法分开记日志，响应保持一致
			if errors.Is(err, auth.ErrExpired) {
				l.Warn("token expired", zap.String("path", c.Request.URL.Path))
			} else {
				l.Warn("token invalid", zap.String("path", c.Request.URL.Path), zap.Error(err))
			}
			response.AbortError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(KeyUserID, claims.UserID)
		c.Next()
	}
}
