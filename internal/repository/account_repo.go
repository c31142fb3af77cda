package repository

import (
	"Instalytics/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountRepo interface {
	CreateAccount(ctx context.Context, account *model.InstagramAccount) error
	GetAccountByIgUserID(ctx context.Context, igUserID string) (*model.InstagramAccount, error)
	GetAllAccounts(ctx context.Context) ([]*model.InstagramAccount, error)
	UpsertAccount(ctx context.Context, account *model.InstagramAccount) error
	UpdateAccessToken(ctx context.Context, igUserID string, accessToken string) error
	DeleteAccount(ctx context.Context, igUserID string) error
}

type accountRepoImpl struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepo {
	return &accountRepoImpl{db: db}
}

func (r *accountRepoImpl) CreateAccount(ctx context.Context, account *model.InstagramAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepoImpl) GetAccountByIgUserID(ctx context.Context, igUserID string) (*model.InstagramAccount, error) {
	var account model.InstagramAccount
	err := r.db.WithContext(ctx).Where("ig_user_id = ?", igUserID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepoImpl) GetAllAccounts(ctx context.Context) ([]*model.InstagramAccount, error) {
	accounts := make([]*model.InstagramAccount, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// UpsertAccount 采用 Upsert 逻辑，ig_user_id 冲突时刷新资料与 token
func (r *accountRepoImpl) UpsertAccount(ctx context.Context, account *model.InstagramAccount) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ig_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name",
			"access_token",
			"username",
			"profile_picture_url",
		}),
	}).Create(account).Error
}

func (r *accountRepoImpl) UpdateAccessToken(ctx context.Context, igUserID string, accessToken string) error {
	return r.db.WithContext(ctx).Model(&model.InstagramAccount{}).
		Where("ig_user_id = ?", igUserID).
		Update("access_token", accessToken).Error
}

func (r *accountRepoImpl) DeleteAccount(ctx context.Context, igUserID string) error {
	return r.db.WithContext(ctx).Where("ig_user_id = ?", igUserID).Delete(&model.InstagramAccount{}).Error
}
