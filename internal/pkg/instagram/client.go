package instagram

import (
	"context"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	defaultGraphURL = "https://graph.facebook.com/v23.0"
	maxMediaPages   = 100
)

// Client Graph API 客户端，token 按账号由调用方传入
type Client struct {
	httpClient *resty.Client
	graphURL   string
}

type Option func(*Client)

// WithBaseURL 覆盖 Graph API 地址，测试时指向 httptest server
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.graphURL = strings.TrimRight(url, "/")
	}
}

func NewClient(opts ...Option) *Client {
	client := &Client{
		httpClient: resty.New().SetTimeout(20 * time.Second),
		graphURL:   defaultGraphURL,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// get 发起 Graph API 请求并把响应解到 out，非 2xx 状态按类别包装
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out interface{}) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(c.graphURL + "/" + strings.TrimPrefix(endpoint, "/"))
	if err != nil {
		return err
	}

	if resp.IsError() {
		detail := ""
		var ge graphError
		if err = json.Unmarshal(resp.Body(), &ge); err == nil {
			detail = ge.Error.Message
		}
		apiErr := classifyError(resp.StatusCode(), detail)
		log.ErrorContext(ctx, "Instagram API Error",
			"type", apiErr.Type,
			"endpoint", endpoint,
			"status", apiErr.StatusCode,
			"detail", detail)
		return apiErr
	}

	return json.Unmarshal(resp.Body(), out)
}

// GetAccountInfo 获取账号基础信息与粉丝/关注/投稿计数
func (c *Client) GetAccountInfo(ctx context.Context, igUserID string, accessToken string) (*AccountInfo, error) {
	var info AccountInfo
	err := c.get(ctx, igUserID, map[string]string{
		"fields":       "id,username,name,profile_picture_url,followers_count,follows_count,media_count",
		"access_token": accessToken,
	}, &info)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetUserMedia 分页拉取账号全部投稿，跟随 paging.next 直到取尽
func (c *Client) GetUserMedia(ctx context.Context, igUserID string, accessToken string, pageSize int) ([]*Media, error) {
	medias := make([]*Media, 0)
	seen := make(map[string]struct{})

	endpoint := igUserID + "/media"
	params := map[string]string{
		"fields":       "id,timestamp,media_type,caption,like_count,comments_count,media_url,thumbnail_url,permalink",
		"limit":        itoa(pageSize),
		"access_token": accessToken,
	}

	for page := 0; page < maxMediaPages; page++ {
		var feed mediaListResponse
		if err := c.get(ctx, endpoint, params, &feed); err != nil {
			return nil, err
		}
		if len(feed.Data) == 0 {
			break
		}
		for _, m := range feed.Data {
			if _, dup := seen[m.ID]; dup {
				continue
			}
			seen[m.ID] = struct{}{}
			medias = append(medias, m)
		}
		if feed.Paging.Next == "" {
			break
		}
		// next 已携带完整查询串
		endpoint = strings.TrimPrefix(feed.Paging.Next, c.graphURL+"/")
		params = nil
	}

	return medias, nil
}

// GetMediaInsights 获取投稿级指标，VIDEO 类型额外请求 views。
// 单个指标失败不阻断其余指标
func (c *Client) GetMediaInsights(ctx context.Context, igMediaID string, mediaType string, accessToken string) (*MediaInsights, error) {
	metrics := []string{"reach", "shares", "saved"}
	if mediaType == "VIDEO" {
		metrics = append(metrics, "views")
	}

	insights := &MediaInsights{}
	var lastErr error
	succeeded := 0

	for _, metric := range metrics {
		var resp insightsResponse
		err := c.get(ctx, igMediaID+"/insights", map[string]string{
			"metric":       metric,
			"access_token": accessToken,
		}, &resp)
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Data) == 0 || len(resp.Data[0].Values) == 0 {
			continue
		}
		value := resp.Data[0].Values[0].Value
		switch metric {
		case "reach":
			insights.Reach = &value
		case "shares":
			insights.Shares = &value
		case "saved":
			insights.Saved = &value
		case "views":
			insights.Views = &value
		}
		succeeded++
	}

	if succeeded == 0 && lastErr != nil {
		return nil, lastErr
	}
	return insights, nil
}

// GetAccountInsights 获取账号级每日指标
func (c *Client) GetAccountInsights(ctx context.Context, igUserID string, accessToken string) (*AccountInsights, error) {
	var resp insightsResponse
	err := c.get(ctx, igUserID+"/insights", map[string]string{
		"metric":       "profile_views,website_clicks,reach",
		"period":       "day",
		"metric_type":  "total_value",
		"access_token": accessToken,
	}, &resp)
	if err != nil {
		return nil, err
	}

	insights := &AccountInsights{}
	for _, item := range resp.Data {
		var value int
		if item.TotalValue != nil {
			value = item.TotalValue.Value
		} else if len(item.Values) > 0 {
			value = item.Values[0].Value
		} else {
			continue
		}
		v := value
		switch item.Name {
		case "profile_views":
			insights.ProfileViews = &v
		case "website_clicks":
			insights.WebsiteClicks = &v
		case "reach":
			insights.Reach = &v
		}
	}
	return insights, nil
}

// GetUserPages 枚举用户可访问的 Facebook 主页及其绑定的 IG 商业账号
func (c *Client) GetUserPages(ctx context.Context, accessToken string) ([]*Page, error) {
	var resp pageListResponse
	err := c.get(ctx, "me/accounts", map[string]string{
		"fields":       "id,name,access_token,instagram_business_account",
		"access_token": accessToken,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ExchangeLongLivedToken 将 Page Token 交换为长效 token
func (c *Client) ExchangeLongLivedToken(ctx context.Context, appID, appSecret, pageToken string) (*TokenInfo, error) {
	var token TokenInfo
	err := c.get(ctx, "oauth/access_token", map[string]string{
		"grant_type":        "fb_exchange_token",
		"client_id":         appID,
		"client_secret":     appSecret,
		"fb_exchange_token": pageToken,
	}, &token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func itoa(v int) string {
	if v <= 0 {
		v = 25
	}
	return strconv.Itoa(v)
}
