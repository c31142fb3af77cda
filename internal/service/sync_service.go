package service

import (
	"Instalytics/internal/api/config"
	"Instalytics/internal/api/dto"
	"Instalytics/internal/model"
	"Instalytics/internal/pkg/consts"
	"Instalytics/internal/pkg/instagram"
	"Instalytics/internal/pkg/redis"
	"Instalytics/internal/pkg/util"
	"Instalytics/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type SyncService interface {
	// CollectAll 对全部账号执行一轮每日采集，单账号失败不阻断其余账号
	CollectAll(ctx context.Context) (*dto.CollectResultDTO, error)
	// RefreshTokens 用应用凭据将所有账号 token 交换为长效 token
	RefreshTokens(ctx context.Context, dto *dto.TokenRefreshDTO) (*dto.TokenRefreshResultDTO, error)
}

type SyncServiceImpl struct {
	client          *instagram.Client
	accountRepo     repository.AccountRepo
	accountStatRepo repository.AccountStatRepo
	mediaPostRepo   repository.MediaPostRepo
	mediaStatRepo   repository.MediaStatRepo
}

func NewSyncService(
	client *instagram.Client,
	accountRepo repository.AccountRepo,
	accountStatRepo repository.AccountStatRepo,
	mediaPostRepo repository.MediaPostRepo,
	mediaStatRepo repository.MediaStatRepo,
) SyncService {
	return &SyncServiceImpl{
		client:          client,
		accountRepo:     accountRepo,
		accountStatRepo: accountStatRepo,
		mediaPostRepo:   mediaPostRepo,
		mediaStatRepo:   mediaStatRepo,
	}
}

func (s *SyncServiceImpl) CollectAll(ctx context.Context) (*dto.CollectResultDTO, error) {
	lockValue := uuid.NewString()
	lock, err := redis.TryLock(ctx, consts.CollectJobLock, lockValue, time.Minute*30, 1)
	if err != nil {
		return nil, err
	}
	if !lock {
		return nil, ErrCollectorBusy
	}
	defer redis.UnLock(ctx, consts.CollectJobLock, lockValue)

	accounts, err := s.accountRepo.GetAllAccounts(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.CollectResultDTO{Errors: []string{}}
	statDate := util.GetMidnight(time.Now().UTC())

	for _, account := range accounts {
		if err = s.collectAccount(ctx, account, statDate, result); err != nil {
			log.ErrorContext(ctx, "账号采集失败", "ig_user_id", account.IgUserID, "error", err)
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.AccountsProcessed++
	}
	return result, nil
}

// collectAccount 采集单个账号：账号快照、投稿增量、投稿指标
func (s *SyncServiceImpl) collectAccount(ctx context.Context, account *model.InstagramAccount, statDate time.Time, result *dto.CollectResultDTO) error {
	info, err := s.client.GetAccountInfo(ctx, account.IgUserID, account.AccessToken)
	if err != nil {
		return errors.Wrapf(err, "拉取账号信息失败 ig_user_id=%s", account.IgUserID)
	}

	// 账号资料随快照顺带更新
	account.Name = info.Name
	account.Username = info.Username
	account.ProfilePictureURL = info.ProfilePictureURL
	if err = s.accountRepo.UpsertAccount(ctx, account); err != nil {
		return err
	}

	stat := &model.AccountDailyStat{
		StatDate:       statDate,
		IgUserID:       account.IgUserID,
		FollowersCount: info.FollowersCount,
		FollowsCount:   info.FollowsCount,
		MediaCount:     info.MediaCount,
	}
	// 账号级 Insights 失败只降级，不影响快照主体
	if insights, err := s.client.GetAccountInsights(ctx, account.IgUserID, account.AccessToken); err != nil {
		log.WarnContext(ctx, "账号 Insights 拉取失败", "ig_user_id", account.IgUserID, "error", err)
	} else {
		stat.Reach = insights.Reach
		stat.ProfileViews = insights.ProfileViews
		stat.WebsiteClicks = insights.WebsiteClicks
	}
	if err = s.accountStatRepo.SaveOrUpdateStat(ctx, stat); err != nil {
		return err
	}
	result.AccountInsights++

	medias, err := s.client.GetUserMedia(ctx, account.IgUserID, account.AccessToken, config.Cfg.Instagram.PageSize)
	if err != nil {
		return errors.Wrapf(err, "拉取投稿列表失败 ig_user_id=%s", account.IgUserID)
	}

	for _, media := range medias {
		publishedAt, err := media.PublishedAt()
		if err != nil {
			log.WarnContext(ctx, "投稿时间戳解析失败", "ig_media_id", media.ID, "timestamp", media.Timestamp)
			continue
		}
		post := &model.MediaPost{
			IgMediaID:    media.ID,
			IgUserID:     account.IgUserID,
			Timestamp:    publishedAt.UTC(),
			MediaType:    media.MediaType,
			Caption:      media.Caption,
			MediaURL:     media.MediaURL,
			ThumbnailURL: media.ThumbnailURL,
			Permalink:    media.Permalink,
		}
		if err = s.mediaPostRepo.SaveOrIgnorePost(ctx, post); err != nil {
			return err
		}
		result.PostsCollected++

		mediaStat := &model.MediaDailyStat{
			StatDate:      statDate,
			IgMediaID:     media.ID,
			LikeCount:     media.LikeCount,
			CommentsCount: media.CommentsCount,
		}
		if insights, err := s.client.GetMediaInsights(ctx, media.ID, media.MediaType, account.AccessToken); err != nil {
			log.WarnContext(ctx, "投稿 Insights 拉取失败", "ig_media_id", media.ID, "error", err)
		} else {
			mediaStat.Reach = insights.Reach
			mediaStat.Shares = insights.Shares
			mediaStat.Saved = insights.Saved
			mediaStat.Views = insights.Views
		}
		if err = s.mediaStatRepo.SaveOrUpdateStat(ctx, mediaStat); err != nil {
			return err
		}
		result.InsightsCollected++
	}
	return nil
}

func (s *SyncServiceImpl) RefreshTokens(ctx context.Context, refreshDTO *dto.TokenRefreshDTO) (*dto.TokenRefreshResultDTO, error) {
	lockValue := uuid.NewString()
	lock, err := redis.TryLock(ctx, consts.TokenRefreshLock, lockValue, time.Minute*5, 1)
	if err != nil {
		return nil, err
	}
	if !lock {
		return nil, ErrCollectorBusy
	}
	defer redis.UnLock(ctx, consts.TokenRefreshLock, lockValue)

	// 用调用方的用户 token 枚举可访问的 Facebook 主页，
	// 只处理绑定了 IG 商业账号的主页
	pages, err := s.client.GetUserPages(ctx, refreshDTO.AccessToken)
	if err != nil {
		return nil, ErrTokenExchangeFailed
	}

	result := &dto.TokenRefreshResultDTO{Errors: []string{}}
	for _, page := range pages {
		if page.InstagramBusinessAccount == nil {
			continue
		}
		result.TotalProcessed++
		igUserID := page.InstagramBusinessAccount.ID

		token, err := s.client.ExchangeLongLivedToken(ctx, refreshDTO.AppID, refreshDTO.AppSecret, page.AccessToken)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, errors.Wrapf(err, "page=%s", page.ID).Error())
			continue
		}

		info, err := s.client.GetAccountInfo(ctx, igUserID, token.AccessToken)
		if err != nil {
			// 账号信息拿不到时仅更新已有账号的 token
			if uerr := s.accountRepo.UpdateAccessToken(ctx, igUserID, token.AccessToken); uerr != nil {
				result.Failed++
				result.Errors = append(result.Errors, uerr.Error())
				continue
			}
			result.Updated++
			continue
		}

		account := &model.InstagramAccount{
			Name:              info.Name,
			IgUserID:          igUserID,
			AccessToken:       token.AccessToken,
			Username:          info.Username,
			ProfilePictureURL: info.ProfilePictureURL,
		}
		if account.Name == "" {
			account.Name = page.Name
		}
		if err = s.accountRepo.UpsertAccount(ctx, account); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Updated++
	}
	return result, nil
}
