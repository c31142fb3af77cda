package repository

import (
	"Instalytics/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountStatRepo interface {
	SaveOrUpdateStat(ctx context.Context, stat *model.AccountDailyStat) error
	// GetStatsByRange 返回 [from, to) 区间内的每日快照，按日期升序
	GetStatsByRange(ctx context.Context, igUserID string, from, to time.Time) ([]*model.AccountDailyStat, error)
}

type accountStatRepoImpl struct {
	db *gorm.DB
}

func NewAccountStatRepo(db *gorm.DB) AccountStatRepo {
	return &accountStatRepoImpl{db: db}
}

// SaveOrUpdateStat 同一 (stat_date, ig_user_id) 重复采集时覆盖旧值
func (r *accountStatRepoImpl) SaveOrUpdateStat(ctx context.Context, stat *model.AccountDailyStat) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "stat_date"}, {Name: "ig_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"followers_count",
			"follows_count",
			"media_count",
			"reach",
			"profile_views",
			"website_clicks",
		}),
	}).Create(stat).Error
}

func (r *accountStatRepoImpl) GetStatsByRange(ctx context.Context, igUserID string, from, to time.Time) ([]*model.AccountDailyStat, error) {
	stats := make([]*model.AccountDailyStat, 0)
	result := r.db.WithContext(ctx).
		Where("ig_user_id = ?", igUserID).
		Where("stat_date >= ? AND stat_date < ?", from, to).
		Order("stat_date ASC").
		Find(&stats)
	if result.Error != nil {
		return nil, result.Error
	}
	return stats, nil
}
