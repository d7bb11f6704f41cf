package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ovapal-api/internal/core/auth"
	"ovapal-api/internal/domain"
	"ovapal-api/internal/service"
)

type UserHandler struct {
	svc   *service.UserService
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewUserHandler(svc *service.UserService, jwter *auth.JWTer, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, jwter: jwter, log: log}
}

type createUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      *int   `json:"age"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserReq
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.svc.CreateUser(c.Request.Context(), service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginReq
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	token, err := h.jwter.Issue(u.UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, loginResp{Token: token, User: u})
}
