package model

import (
	"time"
)

// MediaPost 投稿记录，创建后不可变，Timestamp 为发布时间
type MediaPost struct {
	ID           uint64    `gorm:"primaryKey"`
	IgMediaID    string    `gorm:"type:varchar(50);uniqueIndex;not null;column:ig_media_id" json:"ig_media_id"`
	IgUserID     string    `gorm:"type:varchar(50);not null;index;column:ig_user_id" json:"ig_user_id"`
	Timestamp    time.Time `gorm:"not null;index" json:"timestamp"`
	MediaType    string    `gorm:"type:varchar(20);not null" json:"media_type"` // IMAGE / VIDEO / CAROUSEL_ALBUM
	Caption      *string   `gorm:"type:text" json:"caption"`
	MediaURL     string    `gorm:"type:text;not null;column:media_url" json:"media_url"`
	ThumbnailURL *string   `gorm:"type:text;column:thumbnail_url" json:"thumbnail_url"`
	Permalink    string    `gorm:"type:text;not null" json:"permalink"`
}

func (MediaPost) TableName() string {
	return "media_posts"
}
