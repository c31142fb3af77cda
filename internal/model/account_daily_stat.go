package model

import (
	"time"
)

// AccountDailyStat 账号每日快照，(stat_date, ig_user_id) 唯一。
// Reach / ProfileViews / WebsiteClicks 来自账号级 Insights，可能缺失
type AccountDailyStat struct {
	ID             uint64    `gorm:"primaryKey"`
	StatDate       time.Time `gorm:"not null;index:idx_account_date,unique;column:stat_date" json:"date"`
	IgUserID       string    `gorm:"type:varchar(50);not null;index:idx_account_date,unique;column:ig_user_id" json:"ig_user_id"`
	FollowersCount int       `gorm:"not null;default:0" json:"followers_count"`
	FollowsCount   int       `gorm:"not null;default:0" json:"follows_count"`
	MediaCount     int       `gorm:"not null;default:0" json:"media_count"`
	Reach          *int      `json:"reach"`
	ProfileViews   *int      `json:"profile_views"`
	WebsiteClicks  *int      `json:"website_clicks"`
}

func (AccountDailyStat) TableName() string {
	return "daily_account_stats"
}
