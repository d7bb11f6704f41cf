package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"ovapal-api/internal/apperr"
	"ovapal-api/internal/domain"
	"ovapal-api/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, log: log}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
}

// CreateUser 校验顺序固定：邮箱格式 → 邮箱占用 → 密码长度 → 姓名
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	s.log.Info("creating user", zap.String("email", in.Email))

	if !emailRegex.MatchString(in.Email) {
		return nil, apperr.Invalid("Invalid email format")
	}
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.log.Warn("email already registered", zap.String("email", in.Email))
		return nil, apperr.Invalid("Email is already registered")
	}
	if len(in.Password) < minPasswordLength {
		return nil, apperr.Invalid("Password must be at least 8 characters")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Invalid("Name is required")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Age:          in.Age,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user created", zap.Uint("user_id", u.UserID))
	return u, nil
}

// Login 查无此邮箱与密码错误返回同一错误，不泄露哪一半出了问题
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	s.log.Info("login attempt", zap.String("email", email))

	if email == "" || password == "" {
		return nil, apperr.Auth("Email and password are required")
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u != nil && utils.CheckPassword(password, u.PasswordHash) {
		s.log.Info("login successful", zap.Uint("user_id", u.UserID))
		return u, nil
	}
	s.log.Warn("login failed", zap.String("email", email))
	return nil, apperr.Auth("Invalid email or password")
}
