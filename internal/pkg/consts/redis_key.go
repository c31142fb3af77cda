package consts

const (
	TokenDenyKey = "auth:token:deny:"
)

const (
	CollectJobLock   = "lock:collect:daily"
	TokenRefreshLock = "lock:token:refresh"
)
