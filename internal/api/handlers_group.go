package api

import "Instalytics/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler      *handler.UserHandler
	AccountHandler   *handler.AccountHandler
	AnalyticsHandler *handler.AnalyticsHandler
	SetupHandler     *handler.SetupHandler
	HealthHandler    *handler.HealthHandler
}
