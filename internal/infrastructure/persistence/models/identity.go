package models

import (
	"github.com/farmstore/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Phone        string `gorm:"type:varchar(16);not null;uniqueIndex"`
	Username     string `gorm:"type:varchar(64);not null"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Phone:        m.Phone,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Phone = u.Phone
	m.Username = u.Username
	m.PasswordHash = u.PasswordHash
	m.IsAdmin = u.IsAdmin
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
