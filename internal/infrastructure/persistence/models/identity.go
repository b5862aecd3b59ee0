package models

import (
	"time"

	"github.com/rentops/backend/internal/domain/identity"
)

// UserModel is the GORM model for users
type UserModel struct {
	AggregateModel
	Username     string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email        string     `gorm:"type:varchar(200)"`
	PasswordHash string     `gorm:"type:varchar(200);not null"`
	DisplayName  string     `gorm:"type:varchar(200)"`
	Status       string     `gorm:"type:varchar(20);not null"`
	LastLoginAt  *time.Time `gorm:""`
}

// TableName specifies the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts UserModel to domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Username:          m.Username,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		DisplayName:       m.DisplayName,
		Status:            identity.UserStatus(m.Status),
		LastLoginAt:       m.LastLoginAt,
	}
}

// UserModelFromDomain converts domain User to UserModel
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		DisplayName:  u.DisplayName,
		Status:       string(u.Status),
		LastLoginAt:  u.LastLoginAt,
	}
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return m
}
