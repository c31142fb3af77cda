package model

import (
	"time"
)

// InstagramAccount 镜像的 IG 商业账号，ig_user_id 为 Graph API 侧主键
type InstagramAccount struct {
	ID                uint64    `gorm:"primaryKey"`
	Name              string    `gorm:"type:varchar(100);not null" json:"name"`
	IgUserID          string    `gorm:"type:varchar(50);uniqueIndex;not null;column:ig_user_id" json:"ig_user_id"`
	AccessToken       string    `gorm:"type:text;not null" json:"-"`
	Username          string    `gorm:"type:varchar(100);not null" json:"username"`
	ProfilePictureURL *string   `gorm:"type:text" json:"profile_picture_url"`
	CreatedAt         time.Time `json:"created_at"`
}

func (InstagramAccount) TableName() string {
	return "instagram_accounts"
}
