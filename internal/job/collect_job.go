package job

import (
	"Instalytics/internal/pkg/logger"
	"Instalytics/internal/service"
	"context"
	"errors"
	log "log/slog"

	"github.com/google/uuid"
)

// CollectJob 每日拉取全部账号的快照与投稿指标
type CollectJob struct {
	syncSvc service.SyncService
}

func NewCollectJob(syncSvc service.SyncService) *CollectJob {
	return &CollectJob{
		syncSvc: syncSvc,
	}
}

func (s *CollectJob) Run() {
	traceID := "job-collect-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	result, err := s.syncSvc.CollectAll(ctx)
	if err != nil {
		if errors.Is(err, service.ErrCollectorBusy) {
			log.WarnContext(ctx, "上一轮采集尚未结束，本轮跳过")
			return
		}
		log.ErrorContext(ctx, "daily collect error", "err", err)
		return
	}

	log.InfoContext(ctx, "daily collect success",
		"accounts", result.AccountsProcessed,
		"posts", result.PostsCollected,
		"insights", result.InsightsCollected,
		"errors", len(result.Errors))
}
