package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误分类，对应 HTTP 状态
type Kind int

const (
	KindNotFound Kind = iota + 1 // 资源/用户不存在 → 404
	KindInvalid                  // 业务校验失败、归属不符 → 400
	KindAuth                     // 凭证/令牌无效 → 401
	KindInternal                 // 其它未处理错误 → 500
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // 仅内部错误携带，写日志用，不回给调用方
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "application error"
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalid:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(msg string) *Error  { return &Error{Kind: KindNotFound, Msg: msg} }
func Invalid(msg string) *Error   { return &Error{Kind: KindInvalid, Msg: msg} }
func Auth(msg string) *Error      { return &Error{Kind: KindAuth, Msg: msg} }
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

func NotFoundf(format string, args ...any) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

// As 便捷断言
func As(err error) (*Error, bool) {
	var ae *Error
	ok := errors.As(err, &ae)
	return ae, ok
}
