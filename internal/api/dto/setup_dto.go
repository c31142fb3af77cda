package dto

// TokenRefreshDTO 以 Facebook 应用凭据触发全账号 token 刷新
type TokenRefreshDTO struct {
	AppID       string `json:"app_id" validate:"required"`
	AppSecret   string `json:"app_secret" validate:"required"`
	AccessToken string `json:"access_token" validate:"required"`
}

// TokenRefreshResultDTO token 刷新执行结果
type TokenRefreshResultDTO struct {
	TotalProcessed int      `json:"total_processed"`
	Updated        int      `json:"updated"`
	Failed         int      `json:"failed"`
	Errors         []string `json:"errors"`
}

// CollectResultDTO 数据采集执行结果
type CollectResultDTO struct {
	AccountsProcessed int      `json:"accounts_processed"`
	PostsCollected    int      `json:"posts_collected"`
	InsightsCollected int      `json:"insights_collected"`
	AccountInsights   int      `json:"account_insights"`
	Errors            []string `json:"errors"`
}
