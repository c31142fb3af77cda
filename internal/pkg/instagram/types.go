package instagram

import (
	"fmt"
	"time"
)

// AccountInfo 账号基础信息（/{ig-user-id}）
type AccountInfo struct {
	ID                string  `json:"id"`
	Username          string  `json:"username"`
	Name              string  `json:"name"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	FollowersCount    int     `json:"followers_count"`
	FollowsCount      int     `json:"follows_count"`
	MediaCount        int     `json:"media_count"`
}

// Media 单条投稿（/{ig-user-id}/media）
type Media struct {
	ID            string  `json:"id"`
	Timestamp     string  `json:"timestamp"`
	MediaType     string  `json:"media_type"`
	Caption       *string `json:"caption"`
	LikeCount     int     `json:"like_count"`
	CommentsCount int     `json:"comments_count"`
	MediaURL      string  `json:"media_url"`
	ThumbnailURL  *string `json:"thumbnail_url"`
	Permalink     string  `json:"permalink"`
}

// PublishedAt 解析 Graph API 的发布时间戳
func (m *Media) PublishedAt() (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05-0700", m.Timestamp)
}

type mediaListResponse struct {
	Data   []*Media `json:"data"`
	Paging struct {
		Next string `json:"next,omitempty"`
	} `json:"paging"`
}

// MediaInsights 投稿级 Insights 汇总，未返回的指标保持 nil
type MediaInsights struct {
	Reach  *int
	Shares *int
	Saved  *int
	Views  *int
}

// AccountInsights 账号级每日 Insights，period=day / metric_type=total_value
type AccountInsights struct {
	ProfileViews  *int
	WebsiteClicks *int
	Reach         *int
}

type insightsResponse struct {
	Data []struct {
		Name       string `json:"name"`
		TotalValue *struct {
			Value int `json:"value"`
		} `json:"total_value"`
		Values []struct {
			Value   int    `json:"value"`
			EndTime string `json:"end_time"`
		} `json:"values"`
	} `json:"data"`
}

// Page 带 IG 商业账号的 Facebook 主页（/me/accounts）
type Page struct {
	ID                       string `json:"id"`
	Name                     string `json:"name"`
	AccessToken              string `json:"access_token"`
	InstagramBusinessAccount *struct {
		ID string `json:"id"`
	} `json:"instagram_business_account"`
}

type pageListResponse struct {
	Data []*Page `json:"data"`
}

// TokenInfo 长效 token 交换结果
type TokenInfo struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// APIError Graph API 调用失败，按状态码分类
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("instagram api error [%s] status=%d: %s", e.Type, e.StatusCode, e.Message)
}

func classifyError(statusCode int, detail string) *APIError {
	var errType, message string
	switch {
	case statusCode == 401:
		errType, message = "TOKEN_EXPIRED", "访问令牌无效或已过期，请刷新 token"
	case statusCode == 403:
		errType, message = "PERMISSION_DENIED", "没有访问该资源的权限，请检查账号配置"
	case statusCode == 429:
		errType, message = "RATE_LIMIT", "API 调用已达限额，请稍后重试"
	case statusCode == 400:
		errType, message = "BAD_REQUEST", "请求参数不正确"
	case statusCode >= 500 && statusCode < 600:
		errType, message = "SERVER_ERROR", "Instagram API 服务端暂时不可用，请稍后重试"
	default:
		errType, message = "UNKNOWN_ERROR", fmt.Sprintf("Instagram API 调用失败（状态码 %d）", statusCode)
	}
	if detail != "" {
		message = message + ": " + detail
	}
	return &APIError{StatusCode: statusCode, Type: errType, Message: message}
}
