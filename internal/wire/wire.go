package wire

import (
	"Instalytics/internal/api"
	"Instalytics/internal/api/config"
	"Instalytics/internal/api/handler"
	"Instalytics/internal/job"
	"Instalytics/internal/pkg/cron"
	"Instalytics/internal/pkg/instagram"
	"Instalytics/internal/repository"
	"Instalytics/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	accountRepo := repository.NewAccountRepo(db)
	accountStatRepo := repository.NewAccountStatRepo(db)
	mediaPostRepo := repository.NewMediaPostRepo(db)
	mediaStatRepo := repository.NewMediaStatRepo(db)

	clientOpts := []instagram.Option{}
	if cfg.Instagram.GraphURL != "" {
		clientOpts = append(clientOpts, instagram.WithBaseURL(cfg.Instagram.GraphURL))
	}
	igClient := instagram.NewClient(clientOpts...)

	userService := service.NewUserService(userRepo)
	accountService := service.NewAccountService(accountRepo)
	analyticsService := service.NewAnalyticsService(accountRepo, accountStatRepo, mediaPostRepo, mediaStatRepo)
	syncService := service.NewSyncService(igClient, accountRepo, accountStatRepo, mediaPostRepo, mediaStatRepo)

	handlers := &api.HandlersGroup{
		UserHandler:      handler.NewUserHandler(userService),
		AccountHandler:   handler.NewAccountHandler(accountService),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService),
		SetupHandler:     handler.NewSetupHandler(syncService),
		HealthHandler:    handler.NewHealthHandler(db),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewCollectJob(syncService))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
