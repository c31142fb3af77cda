package repository

import (
	"Instalytics/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MediaPostRepo interface {
	SaveOrIgnorePost(ctx context.Context, post *model.MediaPost) error
	// GetPostsByRange 返回发布时间落在 [from, to) 的投稿，按发布时间升序；
	// from / to 为空时对应方向不限
	GetPostsByRange(ctx context.Context, igUserID string, from, to *time.Time) ([]*model.MediaPost, error)
	// GetPostsFiltered 投稿列表查询，mediaType 为空表示不过滤类型，limit 为单次取数上限
	GetPostsFiltered(ctx context.Context, igUserID string, from, to *time.Time, mediaType string, limit int) ([]*model.MediaPost, error)
	CountPostsByYear(ctx context.Context, igUserID string, year int) (int64, error)
}

type mediaPostRepoImpl struct {
	db *gorm.DB
}

func NewMediaPostRepo(db *gorm.DB) MediaPostRepo {
	return &mediaPostRepoImpl{db: db}
}

// SaveOrIgnorePost 投稿不可变，ig_media_id 冲突时直接忽略
func (r *mediaPostRepoImpl) SaveOrIgnorePost(ctx context.Context, post *model.MediaPost) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ig_media_id"}},
		DoNothing: true,
	}).Create(post).Error
}

func (r *mediaPostRepoImpl) GetPostsByRange(ctx context.Context, igUserID string, from, to *time.Time) ([]*model.MediaPost, error) {
	posts := make([]*model.MediaPost, 0)
	query := r.db.WithContext(ctx).Where("ig_user_id = ?", igUserID)
	if from != nil {
		query = query.Where("timestamp >= ?", *from)
	}
	if to != nil {
		query = query.Where("timestamp < ?", *to)
	}
	result := query.Order("timestamp ASC").Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (r *mediaPostRepoImpl) GetPostsFiltered(ctx context.Context, igUserID string, from, to *time.Time, mediaType string, limit int) ([]*model.MediaPost, error) {
	posts := make([]*model.MediaPost, 0)
	query := r.db.WithContext(ctx).Where("ig_user_id = ?", igUserID)
	if from != nil {
		query = query.Where("timestamp >= ?", *from)
	}
	if to != nil {
		query = query.Where("timestamp < ?", *to)
	}
	if mediaType != "" {
		query = query.Where("media_type = ?", mediaType)
	}
	result := query.Order("timestamp DESC").Limit(limit).Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (r *mediaPostRepoImpl) CountPostsByYear(ctx context.Context, igUserID string, year int) (int64, error) {
	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MediaPost{}).
		Where("ig_user_id = ?", igUserID).
		Where("timestamp >= ? AND timestamp < ?", from, to).
		Count(&count).Error
	return count, err
}
