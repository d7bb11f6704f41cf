package domain

import "context"

type User struct {
	UserID       uint   `gorm:"primaryKey;autoIncrement" json:"userId"`
	Name         string `gorm:"size:64" json:"name"`
	Email        string `gorm:"uniqueIndex;size:191" json:"email"`
	PasswordHash string `gorm:"size:100" json:"-"`
	Age          *int   `json:"age"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
}
