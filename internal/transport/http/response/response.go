package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody 统一错误体：时间戳 + 状态码 + 短语 + 可读信息 + 请求路径
type ErrorBody struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

func NewError(status int, message, path string) ErrorBody {
	return ErrorBody{
		Timestamp: time.Now().Format(time.RFC3339),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      path,
	}
}

func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, NewError(status, message, c.Request.URL.Path))
}

// AbortError 中间件用：终止后续 handler
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, NewError(status, message, c.Request.URL.Path))
}
