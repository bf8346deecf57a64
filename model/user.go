// model/user.go
package model

import (
	"time"
)

type User struct {
	UserID           uint      `gorm:"column:user_id;primaryKey;autoIncrement"`
	Name             string    `gorm:"column:name;type:varchar(255);not null"`
	Email            string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	HashedPassword   string    `gorm:"column:hashed_password;type:varchar(255);not null"`
	AvatarURL        string    `gorm:"column:avatar_url;type:varchar(512);default:none-url"`
	RefreshTokenHash string    `gorm:"column:refresh_token_hash;type:varchar(255)"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
