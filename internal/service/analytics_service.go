package service

import (
	"Instalytics/internal/api/dto"
	"Instalytics/internal/model"
	"Instalytics/internal/pkg/consts"
	"Instalytics/internal/pkg/util"
	"Instalytics/internal/repository"
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

type AnalyticsService interface {
	// GetMonthlyAnalytics 返回指定月份逐日汇总，长度恒等于当月天数
	GetMonthlyAnalytics(ctx context.Context, igUserID string, year, month int) (*dto.MonthlyAnalyticsDTO, error)
	// GetYearlyAnalytics 返回指定年份逐月汇总与年度摘要
	GetYearlyAnalytics(ctx context.Context, igUserID string, year int) (*dto.YearlyAnalyticsDTO, error)
	// GetPostsAnalytics 投稿列表，过滤、富化互动率、排序并截断
	GetPostsAnalytics(ctx context.Context, igUserID string, query *dto.PostQueryDTO) ([]*dto.PostAnalyticsDTO, error)
}

type analyticsServiceImpl struct {
	accountRepo     repository.AccountRepo
	accountStatRepo repository.AccountStatRepo
	mediaPostRepo   repository.MediaPostRepo
	mediaStatRepo   repository.MediaStatRepo
}

func NewAnalyticsService(
	accountRepo repository.AccountRepo,
	accountStatRepo repository.AccountStatRepo,
	mediaPostRepo repository.MediaPostRepo,
	mediaStatRepo repository.MediaStatRepo,
) AnalyticsService {
	return &analyticsServiceImpl{
		accountRepo:     accountRepo,
		accountStatRepo: accountStatRepo,
		mediaPostRepo:   mediaPostRepo,
		mediaStatRepo:   mediaStatRepo,
	}
}

// dailySourceRow 账号侧数据源合并前的中间行
type dailySourceRow struct {
	PostsCount    int
	NewFollowers  int
	Reach         int
	ProfileViews  int
	WebsiteClicks int
}

// postDailyAgg 投稿侧按发布日聚合的行
type postDailyAgg struct {
	PostsCount int
	Reach      int
}

func (s *analyticsServiceImpl) GetMonthlyAnalytics(ctx context.Context, igUserID string, year, month int) (*dto.MonthlyAnalyticsDTO, error) {
	if err := validateWindow(year, month); err != nil {
		return nil, err
	}
	if err := s.ensureAccountExists(ctx, igUserID); err != nil {
		return nil, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	// 两路数据源互不依赖，并行拉取，任一失败则整体失败
	var accountStats []*model.AccountDailyStat
	var posts []*model.MediaPost

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accountStats, err = s.accountStatRepo.GetStatsByRange(gctx, igUserID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.mediaPostRepo.GetPostsByRange(gctx, igUserID, &from, &to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	latestStats, err := s.latestStatsFor(ctx, posts)
	if err != nil {
		return nil, err
	}

	days := util.EnumerateDays(year, month)
	dailyStats := mergeDailyRows(days, buildAccountDailyRows(accountStats), buildPostDailyRows(posts, latestStats))

	return &dto.MonthlyAnalyticsDTO{
		AccountID:  igUserID,
		Month:      fmt.Sprintf("%04d-%02d", year, month),
		DailyStats: dailyStats,
	}, nil
}

// buildAccountDailyRows 按日期索引账号快照并派生当日净增粉丝。
// 同日重复行后到者胜；净增粉丝取与上一条实际存在快照的差值，
// 序列中第一条没有基线，直接取当日粉丝总数
func buildAccountDailyRows(stats []*model.AccountDailyStat) map[string]dailySourceRow {
	indexed := make(map[string]*model.AccountDailyStat, len(stats))
	order := make([]string, 0, len(stats))
	for _, stat := range stats {
		key := stat.StatDate.Format(time.DateOnly)
		if _, ok := indexed[key]; !ok {
			order = append(order, key)
		}
		indexed[key] = stat
	}
	sort.Strings(order)

	rows := make(map[string]dailySourceRow, len(indexed))
	var prevFollowers *int
	for _, key := range order {
		stat := indexed[key]
		newFollowers := stat.FollowersCount
		if prevFollowers != nil {
			newFollowers = stat.FollowersCount - *prevFollowers
		}
		followers := stat.FollowersCount
		prevFollowers = &followers

		rows[key] = dailySourceRow{
			NewFollowers:  newFollowers,
			Reach:         util.IntOrDefault(stat.Reach, 0),
			ProfileViews:  util.IntOrDefault(stat.ProfileViews, 0),
			WebsiteClicks: util.IntOrDefault(stat.WebsiteClicks, 0),
		}
	}
	return rows
}

// buildPostDailyRows 按发布日聚合投稿数与触达，触达取各投稿最新快照
func buildPostDailyRows(posts []*model.MediaPost, latestStats map[string]*model.MediaDailyStat) map[string]postDailyAgg {
	rows := make(map[string]postDailyAgg)
	for _, post := range posts {
		key := post.Timestamp.UTC().Format(time.DateOnly)
		agg := rows[key]
		agg.PostsCount++
		if stat, ok := latestStats[post.IgMediaID]; ok {
			agg.Reach += util.IntOrDefault(stat.Reach, 0)
		}
		rows[key] = agg
	}
	return rows
}

// mergeDailyRows 合并两路行并按自然日补零。两侧同日时，
// 投稿侧的 posts_count 与 reach 覆盖账号侧，其余字段只来自账号侧
func mergeDailyRows(days []time.Time, accountRows map[string]dailySourceRow, postRows map[string]postDailyAgg) []*dto.DailyStatDTO {
	result := make([]*dto.DailyStatDTO, 0, len(days))
	for _, day := range days {
		key := day.Format(time.DateOnly)
		row := accountRows[key]
		if agg, ok := postRows[key]; ok {
			row.PostsCount = agg.PostsCount
			row.Reach = agg.Reach
		}
		result = append(result, &dto.DailyStatDTO{
			Date:          key,
			PostsCount:    row.PostsCount,
			NewFollowers:  row.NewFollowers,
			Reach:         row.Reach,
			ProfileViews:  row.ProfileViews,
			WebsiteClicks: row.WebsiteClicks,
		})
	}
	return result
}

func (s *analyticsServiceImpl) GetYearlyAnalytics(ctx context.Context, igUserID string, year int) (*dto.YearlyAnalyticsDTO, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if err := s.ensureAccountExists(ctx, igUserID); err != nil {
		return nil, err
	}

	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var accountStats []*model.AccountDailyStat
	var posts []*model.MediaPost
	var totalPosts int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accountStats, err = s.accountStatRepo.GetStatsByRange(gctx, igUserID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.mediaPostRepo.GetPostsByRange(gctx, igUserID, &from, &to)
		return err
	})
	g.Go(func() error {
		var err error
		totalPosts, err = s.mediaPostRepo.CountPostsByYear(gctx, igUserID, year)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	latestStats, err := s.latestStatsFor(ctx, posts)
	if err != nil {
		return nil, err
	}

	monthlyStats := aggregateMonthly(accountStats, posts, latestStats)

	return &dto.YearlyAnalyticsDTO{
		AccountID:         igUserID,
		MonthlyStats:      monthlyStats,
		TotalPosts:        int(totalPosts),
		AvgEngagementRate: summarizeEngagementRate(monthlyStats, int(totalPosts)),
	}, nil
}

// accountMonthlyAgg 账号快照按月聚合的中间值
type accountMonthlyAgg struct {
	followersSum  int
	daysPresent   int
	mediaCount    int
	latestDate    time.Time
	profileViews  int
	websiteClicks int
}

// postMonthlyAgg 投稿按发布月聚合的中间值
type postMonthlyAgg struct {
	totalLikes    int
	totalComments int
	totalShares   int
	totalSaved    int
}

// aggregateMonthly 年度聚合。与逐日路径不同，这里只输出至少一侧
// 有数据的月份，不对全年空月补零；这一不对称是沿用既有行为，
// 是否统一尚待产品确认
func aggregateMonthly(
	accountStats []*model.AccountDailyStat,
	posts []*model.MediaPost,
	latestStats map[string]*model.MediaDailyStat,
) []*dto.MonthlyStatDTO {
	accountMonthly := make(map[string]*accountMonthlyAgg)
	for _, stat := range accountStats {
		key := util.MonthKey(stat.StatDate)
		agg, ok := accountMonthly[key]
		if !ok {
			agg = &accountMonthlyAgg{}
			accountMonthly[key] = agg
		}
		agg.followersSum += stat.FollowersCount
		agg.daysPresent++
		agg.profileViews += util.IntOrDefault(stat.ProfileViews, 0)
		agg.websiteClicks += util.IntOrDefault(stat.WebsiteClicks, 0)
		// media_count 取当月最新快照的值
		if stat.StatDate.After(agg.latestDate) {
			agg.latestDate = stat.StatDate
			agg.mediaCount = stat.MediaCount
		}
	}

	postMonthly := make(map[string]*postMonthlyAgg)
	for _, post := range posts {
		key := util.MonthKey(post.Timestamp.UTC())
		agg, ok := postMonthly[key]
		if !ok {
			agg = &postMonthlyAgg{}
			postMonthly[key] = agg
		}
		if stat, ok := latestStats[post.IgMediaID]; ok {
			agg.totalLikes += stat.LikeCount
			agg.totalComments += stat.CommentsCount
			agg.totalShares += util.IntOrDefault(stat.Shares, 0)
			agg.totalSaved += util.IntOrDefault(stat.Saved, 0)
		}
	}

	// 两侧月份键取并集，升序
	monthSet := make(map[string]struct{}, len(accountMonthly)+len(postMonthly))
	for key := range accountMonthly {
		monthSet[key] = struct{}{}
	}
	for key := range postMonthly {
		monthSet[key] = struct{}{}
	}
	months := make([]string, 0, len(monthSet))
	for key := range monthSet {
		months = append(months, key)
	}
	sort.Strings(months)

	result := make([]*dto.MonthlyStatDTO, 0, len(months))
	prevFollowers := 0
	for _, month := range months {
		item := &dto.MonthlyStatDTO{Month: month}

		if agg, ok := accountMonthly[month]; ok {
			item.FollowersCount = agg.followersSum / agg.daysPresent
			item.MediaCount = agg.mediaCount
			item.ProfileViews = agg.profileViews
			item.WebsiteClicks = agg.websiteClicks
		}
		if agg, ok := postMonthly[month]; ok {
			item.TotalLikes = agg.totalLikes
			item.TotalComments = agg.totalComments
			item.TotalShares = agg.totalShares
			item.TotalSaved = agg.totalSaved
		}

		// follows_count 承载环比净增：基线为 0 时视为绝对值
		if prevFollowers == 0 {
			item.FollowsCount = item.FollowersCount
		} else {
			item.FollowsCount = item.FollowersCount - prevFollowers
		}
		prevFollowers = item.FollowersCount

		result = append(result, item)
	}
	return result
}

// summarizeEngagementRate 年度平均互动率。0.1 为对齐既有报表的
// 缩放常数，非真实触达归一化
func summarizeEngagementRate(monthlyStats []*dto.MonthlyStatDTO, totalPosts int) float64 {
	if len(monthlyStats) == 0 || totalPosts <= 0 {
		return 0.0
	}
	totalActions := 0
	for _, m := range monthlyStats {
		totalActions += m.TotalLikes + m.TotalComments + m.TotalShares + m.TotalSaved
	}
	return util.Round1(float64(totalActions) / float64(totalPosts) * 0.1)
}

func (s *analyticsServiceImpl) GetPostsAnalytics(ctx context.Context, igUserID string, query *dto.PostQueryDTO) ([]*dto.PostAnalyticsDTO, error) {
	if err := s.ensureAccountExists(ctx, igUserID); err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = consts.SortByTimestamp
	}

	from, to, err := parseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	// 每个类型各查一次，limit 是单次取数上限而非最终上限，
	// 合并排序后需要再截断
	mediaTypes := query.MediaTypes
	if len(mediaTypes) == 0 {
		mediaTypes = []string{""}
	}

	posts := make([]*model.MediaPost, 0, limit*len(mediaTypes))
	seen := make(map[string]struct{})
	for _, mediaType := range mediaTypes {
		batch, err := s.mediaPostRepo.GetPostsFiltered(ctx, igUserID, from, to, mediaType, limit)
		if err != nil {
			return nil, err
		}
		for _, post := range batch {
			if _, dup := seen[post.IgMediaID]; dup {
				continue
			}
			seen[post.IgMediaID] = struct{}{}
			posts = append(posts, post)
		}
	}

	latestStats, err := s.latestStatsFor(ctx, posts)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PostAnalyticsDTO, 0, len(posts))
	for _, post := range posts {
		items = append(items, buildPostAnalytics(post, latestStats[post.IgMediaID]))
	}

	sortPostAnalytics(items, sortBy, query.SortOrder == "asc")

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// buildPostAnalytics 联合投稿与其最新快照。富化互动率时缺失的
// reach 回退为 1 而非 0，保证排序字段始终可算，区别于计算器
// 自身的零分支
func buildPostAnalytics(post *model.MediaPost, stat *model.MediaDailyStat) *dto.PostAnalyticsDTO {
	item := &dto.PostAnalyticsDTO{
		IgMediaID:    post.IgMediaID,
		Timestamp:    post.Timestamp.UTC().Format(time.RFC3339),
		MediaType:    post.MediaType,
		Caption:      post.Caption,
		MediaURL:     post.MediaURL,
		ThumbnailURL: post.ThumbnailURL,
		Permalink:    post.Permalink,
	}
	if stat != nil {
		item.LikeCount = stat.LikeCount
		item.CommentsCount = stat.CommentsCount
		item.Reach = stat.Reach
		item.Views = stat.Views
		item.Shares = stat.Shares
		item.Saved = stat.Saved
	}
	item.EngagementRate = util.EngagementRate(
		item.LikeCount,
		item.CommentsCount,
		util.IntOrDefault(item.Shares, 0),
		util.IntOrDefault(item.Saved, 0),
		util.IntOrDefault(item.Reach, consts.PostReachFallback),
	)
	return item
}

// sortPostAnalytics 按指定字段排序，缺失的可空数值按 0 参与比较
func sortPostAnalytics(items []*dto.PostAnalyticsDTO, sortBy string, asc bool) {
	value := func(item *dto.PostAnalyticsDTO) float64 {
		switch sortBy {
		case consts.SortByLikeCount:
			return float64(item.LikeCount)
		case consts.SortByReach:
			return float64(util.IntOrDefault(item.Reach, 0))
		case consts.SortByEngagementRate:
			return item.EngagementRate
		default:
			return 0
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if sortBy == consts.SortByTimestamp {
			if asc {
				return items[i].Timestamp < items[j].Timestamp
			}
			return items[i].Timestamp > items[j].Timestamp
		}
		if asc {
			return value(items[i]) < value(items[j])
		}
		return value(items[i]) > value(items[j])
	})
}

// latestStatsFor 取给定投稿集合各自最新的指标快照
func (s *analyticsServiceImpl) latestStatsFor(ctx context.Context, posts []*model.MediaPost) (map[string]*model.MediaDailyStat, error) {
	if len(posts) == 0 {
		return map[string]*model.MediaDailyStat{}, nil
	}
	ids := make([]string, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.IgMediaID)
	}
	return s.mediaStatRepo.GetLatestStats(ctx, ids)
}

func (s *analyticsServiceImpl) ensureAccountExists(ctx context.Context, igUserID string) error {
	account, err := s.accountRepo.GetAccountByIgUserID(ctx, igUserID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}
	return nil
}

func validateWindow(year, month int) error {
	if month < 1 || month > 12 {
		return ErrInvalidWindow
	}
	return validateYear(year)
}

func validateYear(year int) error {
	if year < consts.MinReportYear || year > consts.MaxReportYear {
		return ErrInvalidWindow
	}
	return nil
}

func parseDateRange(startDate, endDate string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if startDate != "" {
		t, err := time.Parse(time.DateOnly, startDate)
		if err != nil {
			return nil, nil, ErrParamInvalid
		}
		from = &t
	}
	if endDate != "" {
		t, err := time.Parse(time.DateOnly, endDate)
		if err != nil {
			return nil, nil, ErrParamInvalid
		}
		// end_date 为闭区间，换算为次日零点的开区间上界
		end := t.AddDate(0, 0, 1)
		to = &end
	}
	return from, to, nil
}
