package repository

import (
	"Instalytics/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MediaStatRepo interface {
	SaveOrUpdateStat(ctx context.Context, stat *model.MediaDailyStat) error
	// GetLatestStats 返回每个投稿按 stat_date 最新的一条快照。
	// 日期比较在类型化的 time.Time 上进行，不依赖字符串序
	GetLatestStats(ctx context.Context, igMediaIDs []string) (map[string]*model.MediaDailyStat, error)
}

type mediaStatRepoImpl struct {
	db *gorm.DB
}

func NewMediaStatRepo(db *gorm.DB) MediaStatRepo {
	return &mediaStatRepoImpl{db: db}
}

// SaveOrUpdateStat 同一 (stat_date, ig_media_id) 重复采集时覆盖旧值
func (r *mediaStatRepoImpl) SaveOrUpdateStat(ctx context.Context, stat *model.MediaDailyStat) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "stat_date"}, {Name: "ig_media_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"like_count",
			"comments_count",
			"reach",
			"views",
			"shares",
			"saved",
		}),
	}).Create(stat).Error
}

func (r *mediaStatRepoImpl) GetLatestStats(ctx context.Context, igMediaIDs []string) (map[string]*model.MediaDailyStat, error) {
	latest := make(map[string]*model.MediaDailyStat, len(igMediaIDs))
	if len(igMediaIDs) == 0 {
		return latest, nil
	}

	stats := make([]*model.MediaDailyStat, 0)
	result := r.db.WithContext(ctx).
		Where("ig_media_id IN ?", igMediaIDs).
		Order("stat_date ASC").
		Find(&stats)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, s := range stats {
		prev, ok := latest[s.IgMediaID]
		if !ok || s.StatDate.After(prev.StatDate) {
			latest[s.IgMediaID] = s
		}
	}
	return latest, nil
}
