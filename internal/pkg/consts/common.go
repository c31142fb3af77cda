package consts

const (
	MediaTypeImage    = "IMAGE"
	MediaTypeVideo    = "VIDEO"
	MediaTypeCarousel = "CAROUSEL_ALBUM"
)

const (
	// PostReachFallback 投稿列表在富化阶段对缺失 reach 的回退值。
	// 与 util.EngagementRate 内部的 0 分支不同，这里刻意取 1，
	// 保证列表排序时互动率字段始终可计算
	PostReachFallback = 1
)

const (
	// MinReportYear / MaxReportYear 报表请求可接受的年份范围
	MinReportYear = 2000
	MaxReportYear = 2100
)

const (
	SortByTimestamp      = "timestamp"
	SortByLikeCount      = "like_count"
	SortByReach          = "reach"
	SortByEngagementRate = "engagement_rate"
)
