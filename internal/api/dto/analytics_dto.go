package dto

// DailyStatDTO 单日汇总，月内每个自然日各一条，缺数日全零
type DailyStatDTO struct {
	Date          string `json:"date"` // YYYY-MM-DD
	PostsCount    int    `json:"posts_count"`
	NewFollowers  int    `json:"new_followers"`
	Reach         int    `json:"reach"`
	ProfileViews  int    `json:"profile_views"`
	WebsiteClicks int    `json:"website_clicks"`
}

// MonthlyAnalyticsDTO 月度报表返回包装
type MonthlyAnalyticsDTO struct {
	AccountID  string          `json:"account_id"`
	Month      string          `json:"month"` // YYYY-MM
	DailyStats []*DailyStatDTO `json:"daily_stats"`
}

// MonthlyStatDTO 单月汇总。FollowsCount 字段承载当月净增粉丝数，
// 首个有数据的月份取当月 FollowersCount 原值
type MonthlyStatDTO struct {
	Month          string `json:"month"` // YYYY-MM
	FollowersCount int    `json:"followers_count"`
	FollowsCount   int    `json:"follows_count"`
	MediaCount     int    `json:"media_count"`
	ProfileViews   int    `json:"profile_views"`
	WebsiteClicks  int    `json:"website_clicks"`
	TotalLikes     int    `json:"total_likes"`
	TotalComments  int    `json:"total_comments"`
	TotalShares    int    `json:"total_shares"`
	TotalSaved     int    `json:"total_saved"`
}

// YearlyAnalyticsDTO 年度报表返回包装
type YearlyAnalyticsDTO struct {
	AccountID         string            `json:"account_id"`
	MonthlyStats      []*MonthlyStatDTO `json:"monthly_stats"`
	TotalPosts        int               `json:"total_posts"`
	AvgEngagementRate float64           `json:"avg_engagement_rate"`
}

// PostAnalyticsDTO 投稿与其最新指标快照的联合视图
type PostAnalyticsDTO struct {
	IgMediaID      string  `json:"ig_media_id"`
	Timestamp      string  `json:"timestamp"`
	MediaType      string  `json:"media_type"`
	Caption        *string `json:"caption"`
	MediaURL       string  `json:"media_url"`
	ThumbnailURL   *string `json:"thumbnail_url"`
	Permalink      string  `json:"permalink"`
	LikeCount      int     `json:"like_count"`
	CommentsCount  int     `json:"comments_count"`
	Reach          *int    `json:"reach"`
	Views          *int    `json:"views"`
	Shares         *int    `json:"shares"`
	Saved          *int    `json:"saved"`
	EngagementRate float64 `json:"engagement_rate"`
}

// PostQueryDTO 投稿列表的过滤与排序参数
type PostQueryDTO struct {
	StartDate  string   `form:"start_date"`
	EndDate    string   `form:"end_date"`
	MediaTypes []string `form:"media_type" validate:"dive,oneof=IMAGE VIDEO CAROUSEL_ALBUM"`
	SortBy     string   `form:"sort_by" validate:"omitempty,oneof=timestamp like_count reach engagement_rate"`
	SortOrder  string   `form:"sort_order" validate:"omitempty,oneof=asc desc"`
	Limit      int      `form:"limit" validate:"omitempty,min=1,max=100"`
}
