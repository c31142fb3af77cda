package cron

import (
	"Instalytics/internal/api/config"
	"Instalytics/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine     *cron.Cron
	collectJob *job.CollectJob
}

func NewCronManager(collectJob *job.CollectJob) *Manager {
	return &Manager{
		engine:     cron.New(cron.WithSeconds()),
		collectJob: collectJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if !config.Cfg.Collector.Enabled {
		log.Info("定时采集未启用")
		return nil
	}
	spec := config.Cfg.Collector.Spec
	if spec == "" {
		spec = "@daily"
	}
	if _, err := s.engine.AddJob(spec, s.collectJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
