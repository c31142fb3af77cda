package model

import (
	"time"
)

// MediaDailyStat 投稿每日指标快照，(stat_date, ig_media_id) 唯一。
// 同一投稿存在多条快照时，仅 stat_date 最新的一条参与汇总
type MediaDailyStat struct {
	ID            uint64    `gorm:"primaryKey"`
	StatDate      time.Time `gorm:"not null;index:idx_media_date,unique;column:stat_date" json:"date"`
	IgMediaID     string    `gorm:"type:varchar(50);not null;index:idx_media_date,unique;column:ig_media_id" json:"ig_media_id"`
	LikeCount     int       `gorm:"not null;default:0" json:"like_count"`
	CommentsCount int       `gorm:"not null;default:0" json:"comments_count"`
	Reach         *int      `json:"reach"`
	Views         *int      `json:"views"`
	Shares        *int      `json:"shares"`
	Saved         *int      `json:"saved"`
}

func (MediaDailyStat) TableName() string {
	return "daily_media_stats"
}
