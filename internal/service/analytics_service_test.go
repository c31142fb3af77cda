package service

import (
	"Instalytics/internal/api/dto"
	"Instalytics/internal/model"
	"Instalytics/internal/pkg/consts"
	"Instalytics/internal/pkg/util"
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

// ---- 内存实现，替代 gorm 仓储 ----

type fakeAccountRepo struct {
	accounts map[string]*model.InstagramAccount
	err      error
}

func (r *fakeAccountRepo) CreateAccount(_ context.Context, account *model.InstagramAccount) error {
	r.accounts[account.IgUserID] = account
	return nil
}

func (r *fakeAccountRepo) GetAccountByIgUserID(_ context.Context, igUserID string) (*model.InstagramAccount, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.accounts[igUserID], nil
}

func (r *fakeAccountRepo) GetAllAccounts(_ context.Context) ([]*model.InstagramAccount, error) {
	result := make([]*model.InstagramAccount, 0, len(r.accounts))
	for _, a := range r.accounts {
		result = append(result, a)
	}
	return result, nil
}

func (r *fakeAccountRepo) UpsertAccount(_ context.Context, account *model.InstagramAccount) error {
	r.accounts[account.IgUserID] = account
	return nil
}

func (r *fakeAccountRepo) UpdateAccessToken(_ context.Context, igUserID string, accessToken string) error {
	if a, ok := r.accounts[igUserID]; ok {
		a.AccessToken = accessToken
	}
	return nil
}

func (r *fakeAccountRepo) DeleteAccount(_ context.Context, igUserID string) error {
	delete(r.accounts, igUserID)
	return nil
}

type fakeAccountStatRepo struct {
	stats []*model.AccountDailyStat
	err   error
}

func (r *fakeAccountStatRepo) SaveOrUpdateStat(_ context.Context, stat *model.AccountDailyStat) error {
	r.stats = append(r.stats, stat)
	return nil
}

func (r *fakeAccountStatRepo) GetStatsByRange(_ context.Context, igUserID string, from, to time.Time) ([]*model.AccountDailyStat, error) {
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*model.AccountDailyStat, 0)
	for _, s := range r.stats {
		if s.IgUserID != igUserID {
			continue
		}
		if s.StatDate.Before(from) || !s.StatDate.Before(to) {
			continue
		}
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StatDate.Before(result[j].StatDate) })
	return result, nil
}

type fakeMediaPostRepo struct {
	posts []*model.MediaPost
	err   error
}

func (r *fakeMediaPostRepo) SaveOrIgnorePost(_ context.Context, post *model.MediaPost) error {
	r.posts = append(r.posts, post)
	return nil
}

func (r *fakeMediaPostRepo) matches(p *model.MediaPost, igUserID string, from, to *time.Time) bool {
	if p.IgUserID != igUserID {
		return false
	}
	if from != nil && p.Timestamp.Before(*from) {
		return false
	}
	if to != nil && !p.Timestamp.Before(*to) {
		return false
	}
	return true
}

func (r *fakeMediaPostRepo) GetPostsByRange(_ context.Context, igUserID string, from, to *time.Time) ([]*model.MediaPost, error) {
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*model.MediaPost, 0)
	for _, p := range r.posts {
		if r.matches(p, igUserID, from, to) {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Timestamp.Before(result[j].Timestamp) })
	return result, nil
}

func (r *fakeMediaPostRepo) GetPostsFiltered(_ context.Context, igUserID string, from, to *time.Time, mediaType string, limit int) ([]*model.MediaPost, error) {
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*model.MediaPost, 0)
	for _, p := range r.posts {
		if !r.matches(p, igUserID, from, to) {
			continue
		}
		if mediaType != "" && p.MediaType != mediaType {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Timestamp.After(result[j].Timestamp) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeMediaPostRepo) CountPostsByYear(_ context.Context, igUserID string, year int) (int64, error) {
	var n int64
	for _, p := range r.posts {
		if p.IgUserID == igUserID && p.Timestamp.Year() == year {
			n++
		}
	}
	return n, nil
}

type fakeMediaStatRepo struct {
	stats []*model.MediaDailyStat
	err   error
}

func (r *fakeMediaStatRepo) SaveOrUpdateStat(_ context.Context, stat *model.MediaDailyStat) error {
	r.stats = append(r.stats, stat)
	return nil
}

func (r *fakeMediaStatRepo) GetLatestStats(_ context.Context, igMediaIDs []string) (map[string]*model.MediaDailyStat, error) {
	if r.err != nil {
		return nil, r.err
	}
	wanted := make(map[string]struct{}, len(igMediaIDs))
	for _, id := range igMediaIDs {
		wanted[id] = struct{}{}
	}
	result := make(map[string]*model.MediaDailyStat)
	for _, s := range r.stats {
		if _, ok := wanted[s.IgMediaID]; !ok {
			continue
		}
		if prev, ok := result[s.IgMediaID]; !ok || s.StatDate.After(prev.StatDate) {
			result[s.IgMediaID] = s
		}
	}
	return result, nil
}

// ---- 构造工具 ----

const testIgUserID = "17841400000000001"

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func newTestService(
	accountStats []*model.AccountDailyStat,
	posts []*model.MediaPost,
	mediaStats []*model.MediaDailyStat,
) (AnalyticsService, *fakeAccountRepo, *fakeAccountStatRepo, *fakeMediaPostRepo, *fakeMediaStatRepo) {
	accountRepo := &fakeAccountRepo{accounts: map[string]*model.InstagramAccount{
		testIgUserID: {ID: 1, IgUserID: testIgUserID, Name: "test", Username: "test"},
	}}
	accountStatRepo := &fakeAccountStatRepo{stats: accountStats}
	mediaPostRepo := &fakeMediaPostRepo{posts: posts}
	mediaStatRepo := &fakeMediaStatRepo{stats: mediaStats}
	svc := NewAnalyticsService(accountRepo, accountStatRepo, mediaPostRepo, mediaStatRepo)
	return svc, accountRepo, accountStatRepo, mediaPostRepo, mediaStatRepo
}

// ---- 月度报表 ----

func TestGetMonthlyAnalyticsDenseSequence(t *testing.T) {
	accountStats := []*model.AccountDailyStat{
		{StatDate: day(2025, 6, 3), IgUserID: testIgUserID, FollowersCount: 100, ProfileViews: util.PtrInt(12), WebsiteClicks: util.PtrInt(4), Reach: util.PtrInt(300)},
	}
	svc, _, _, _, _ := newTestService(accountStats, nil, nil)

	result, err := svc.GetMonthlyAnalytics(context.Background(), testIgUserID, 2025, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Month != "2025-06" {
		t.Errorf("month = %s, want 2025-06", result.Month)
	}
	if len(result.DailyStats) != 30 {
		t.Fatalf("daily stats len = %d, want 30", len(result.DailyStats))
	}
	for i, ds := range result.DailyStats {
		wantDate := day(2025, 6, i+1).Format(time.DateOnly)
		if ds.Date != wantDate {
			t.Fatalf("index %d date = %s, want %s", i, ds.Date, wantDate)
		}
	}
	// 有快照的一天
	got := result.DailyStats[2]
	if got.NewFollowers != 100 || got.ProfileViews != 12 || got.WebsiteClicks != 4 || got.Reach != 300 {
		t.Errorf("day 3 = %+v", got)
	}
	// 无数据的日子全部补零
	for _, i := range []int{0, 1, 3, 29} {
		ds := result.DailyStats[i]
		if ds.PostsCount != 0 || ds.NewFollowers != 0 || ds.Reach != 0 || ds.ProfileViews != 0 || ds.WebsiteClicks != 0 {
			t.Errorf("index %d should be zero-filled, got %+v", i, ds)
		}
	}
}

func TestGetMonthlyAnalyticsPostOverridesAccount(t *testing.T) {
	accountStats := []*model.AccountDailyStat{
		{StatDate: day(2025, 6, 10), IgUserID: testIgUserID, FollowersCount: 500, Reach: util.PtrInt(999), ProfileViews: util.PtrInt(20)},
	}
	posts := []*model.MediaPost{
		{IgMediaID: "m1", IgUserID: testIgUserID, Timestamp: day(2025, 6, 10).Add(9 * time.Hour), MediaType: consts.MediaTypeImage},
		{IgMediaID: "m2", IgUserID: testIgUserID, Timestamp: day(2025, 6, 10).Add(18 * time.Hour), MediaType: consts.MediaTypeVideo},
	}
	mediaStats := []*model.MediaDailyStat{
		{StatDate: day(2025, 6, 11), IgMediaID: "m1", Reach: util.PtrInt(40)},
		{StatDate: day(2025, 6, 11), IgMediaID: "m2", Reach: util.PtrInt(60)},
	}
	svc, _, _, _, _ := newTestService(accountStats, posts, mediaStats)

	result, err := svc.GetMonthlyAnalytics(context.Background(), testIgUserID, 2025, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := result.DailyStats[9]
	// 投稿侧覆盖 posts_count 与 reach，账号侧其余字段保留
	if got.PostsCount != 2 {
		t.Errorf("posts_count = %d, want 2", got.PostsCount)
	}
	if got.Reach != 100 {
		t.Errorf("reach = %d, want 100 (post aggregate, not account value)", got.Reach)
	}
	if got.ProfileViews != 20 {
		t.Errorf("profile_views = %d, want 20", got.ProfileViews)
	}
	if got.NewFollowers != 500 {
		t.Errorf("new_followers = %d, want 500", got.NewFollowers)
	}
}

func TestGetMonthlyAnalyticsNewFollowersDelta(t *testing.T) {
	accountStats := []*model.AccountDailyStat{
		{StatDate: day(2025, 6, 1), IgUserID: testIgUserID, FollowersCount: 100},
		{StatDate: day(2025, 6, 3), IgUserID: testIgUserID, FollowersCount: 110},
		{StatDate: day(2025, 6, 4), IgUserID: testIgUserID, FollowersCount: 108},
	}
	svc, _, _, _, _ := newTestService(accountStats, nil, nil)

	result, err := svc.GetMonthlyAnalytics(context.Background(), testIgUserID, 2025, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 首条没有基线，取当日总数；之后取与上一条存在快照的差值
	if got := result.DailyStats[0].NewFollowers; got != 100 {
		t.Errorf("day 1 new_followers = %d, want 100", got)
	}
	if got := result.DailyStats[1].NewFollowers; got != 0 {
		t.Errorf("day 2 new_followers = %d, want 0", got)
	}
	if got := result.DailyStats[2].NewFollowers; got != 10 {
		t.Errorf("day 3 new_followers = %d, want 10", got)
	}
	if got := result.DailyStats[3].NewFollowers; got != -2 {
		t.Errorf("day 4 new_followers = %d, want -2", got)
	}
}

func TestGetMonthlyAnalyticsIdempotent(t *testing.T) {
	accountStats := []*model.AccountDailyStat{
		{StatDate: day(2025, 2, 10), IgUserID: testIgUserID, FollowersCount: 42, Reach: util.PtrInt(7)},
	}
	svc, _, _, _, _ := newTestService(accountStats, nil, nil)

	first, err := svc.GetMonthlyAnalytics(context.Background(), testIgUserID, 2025, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.GetMonthlyAnalytics(context.Background(), testIgUserID, 2025, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.DailyStats) != 28 || len(second.DailyStats) != 28 {
		t.Fatalf("expected 28 days for 2025-02")
	}
	for i := range first.DailyStats {
		if *first.DailyStats[i] != *second.DailyStats[i] {
			t.Errorf("index %d differs between identical calls", i)
		}
	}
}

func TestGetMonthlyAnalyticsValidation(t *testing.T) {
	svc, _, _, _, _ := newTestService(nil, nil, nil)

	tests := []struct {
		name  string
		year  int
		month int
	}{
		{"月份为零", 2025, 0},
		{"月份超界", 2025, 13},
		{"年份过小", 1999, 6},
		{"年份过大", 2101, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetMonthlyAnalytics(context.Background(), testIgUserID, tt.year, tt.month)
			if !errors.Is(err, ErrInvalidWindow) {
				t.Errorf("err = %v, want ErrInvalidWindow", err)
			}
		})
	}
}

func TestGetMonthlyAnalyticsAccountNotFound(t *testing.T) {
	svc, _, _, _, _ := newTestService(nil, nil, nil)
	_, err := svc.GetMonthlyAnalytics(context.Background(), "unknown", 2025, 6)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestGetMonthlyAnalyticsSourceFailure(t *testing.T) {
	svc, _, statRepo, _, _ := newTestService(nil, nil, nil)
	statRepo.err = errors.New("connection refused")

	result, err := svc.GetMonthlyAnalytics(context.Background(), testIgUserID, 2025, 6)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if result != nil {
		t.Errorf("expected no partial result, got %+v", result)
	}
}

// ---- 年度报表 ----

func TestGetYearlyAnalyticsMonthlyAggregation(t *testing.T) {
	accountStats := []*model.AccountDailyStat{
		{StatDate: day(2025, 1, 1), IgUserID: testIgUserID, FollowersCount: 103, MediaCount: 10, ProfileViews: util.PtrInt(5)},
		{StatDate: day(2025, 1, 2), IgUserID: testIgUserID, FollowersCount: 104, MediaCount: 11, ProfileViews: util.PtrInt(3)},
		{StatDate: day(2025, 1, 3), IgUserID: testIgUserID, FollowersCount: 105, MediaCount: 12, ProfileViews: util.PtrInt(2)},
		{StatDate: day(2025, 3, 1), IgUserID: testIgUserID, FollowersCount: 150, MediaCount: 15},
	}
	svc, _, _, _, _ := newTestService(accountStats, nil, nil)

	result, err := svc.GetYearlyAnalytics(context.Background(), testIgUserID, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 只输出有数据的月份，不做全年补零
	if len(result.MonthlyStats) != 2 {
		t.Fatalf("monthly stats len = %d, want 2", len(result.MonthlyStats))
	}

	jan := result.MonthlyStats[0]
	if jan.Month != "2025-01" {
		t.Errorf("month = %s, want 2025-01", jan.Month)
	}
	// 312 / 3 = 104，整数截断
	if jan.FollowersCount != 104 {
		t.Errorf("jan followers = %d, want 104", jan.FollowersCount)
	}
	// media_count 取当月最新快照
	if jan.MediaCount != 12 {
		t.Errorf("jan media_count = %d, want 12", jan.MediaCount)
	}
	if jan.ProfileViews != 10 {
		t.Errorf("jan profile_views = %d, want 10", jan.ProfileViews)
	}
	// 首月没有基线，follows_count 取绝对值
	if jan.FollowsCount != 104 {
		t.Errorf("jan follows_count = %d, want 104", jan.FollowsCount)
	}

	mar := result.MonthlyStats[1]
	if mar.Month != "2025-03" {
		t.Errorf("month = %s, want 2025-03", mar.Month)
	}
	// 基线为一月均值
	if mar.FollowsCount != 46 {
		t.Errorf("mar follows_count = %d, want 46", mar.FollowsCount)
	}
}

func TestGetYearlyAnalyticsFollowersTruncation(t *testing.T) {
	accountStats := []*model.AccountDailyStat{
		{StatDate: day(2025, 5, 1), IgUserID: testIgUserID, FollowersCount: 100},
		{StatDate: day(2025, 5, 2), IgUserID: testIgUserID, FollowersCount: 105},
	}
	svc, _, _, _, _ := newTestService(accountStats, nil, nil)

	result, err := svc.GetYearlyAnalytics(context.Background(), testIgUserID, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 205 / 2 = 102.5，截断为 102 而非四舍五入
	if got := result.MonthlyStats[0].FollowersCount; got != 102 {
		t.Errorf("followers = %d, want 102", got)
	}
}

func TestGetYearlyAnalyticsEngagementSummary(t *testing.T) {
	posts := []*model.MediaPost{
		{IgMediaID: "p1", IgUserID: testIgUserID, Timestamp: day(2025, 4, 5), MediaType: consts.MediaTypeImage},
		{IgMediaID: "p2", IgUserID: testIgUserID, Timestamp: day(2025, 7, 9), MediaType: consts.MediaTypeVideo},
	}
	mediaStats := []*model.MediaDailyStat{
		{StatDate: day(2025, 7, 1), IgMediaID: "p1", LikeCount: 80, CommentsCount: 10, Shares: util.PtrInt(6), Saved: util.PtrInt(4)},
		{StatDate: day(2025, 7, 10), IgMediaID: "p2", LikeCount: 100, CommentsCount: 20, Shares: util.PtrInt(20), Saved: util.PtrInt(10)},
	}
	svc, _, _, _, _ := newTestService(nil, posts, mediaStats)

	result, err := svc.GetYearlyAnalytics(context.Background(), testIgUserID, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalPosts != 2 {
		t.Errorf("total_posts = %d, want 2", result.TotalPosts)
	}
	// 总互动 250，250 / 2 * 0.1 = 12.5
	if result.AvgEngagementRate != 12.5 {
		t.Errorf("avg_engagement_rate = %v, want 12.5", result.AvgEngagementRate)
	}
	if len(result.MonthlyStats) != 2 {
		t.Fatalf("monthly stats len = %d, want 2", len(result.MonthlyStats))
	}
	apr := result.MonthlyStats[0]
	if apr.TotalLikes != 80 || apr.TotalComments != 10 || apr.TotalShares != 6 || apr.TotalSaved != 4 {
		t.Errorf("april totals = %+v", apr)
	}
}

func TestGetYearlyAnalyticsEmptyYear(t *testing.T) {
	svc, _, _, _, _ := newTestService(nil, nil, nil)

	result, err := svc.GetYearlyAnalytics(context.Background(), testIgUserID, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.MonthlyStats) != 0 {
		t.Errorf("monthly stats len = %d, want 0", len(result.MonthlyStats))
	}
	if result.TotalPosts != 0 || result.AvgEngagementRate != 0.0 {
		t.Errorf("summary = %d / %v, want zeros", result.TotalPosts, result.AvgEngagementRate)
	}
}

func TestGetYearlyAnalyticsValidation(t *testing.T) {
	svc, _, _, _, _ := newTestService(nil, nil, nil)
	for _, year := range []int{1999, 2101} {
		if _, err := svc.GetYearlyAnalytics(context.Background(), testIgUserID, year); !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("year %d: err = %v, want ErrInvalidWindow", year, err)
		}
	}
}

// ---- 投稿列表 ----

func TestGetPostsAnalyticsSortAndTruncate(t *testing.T) {
	posts := make([]*model.MediaPost, 0, 30)
	mediaStats := make([]*model.MediaDailyStat, 0, 30)
	for i := 0; i < 15; i++ {
		id := "img-" + string(rune('a'+i))
		posts = append(posts, &model.MediaPost{
			IgMediaID: id, IgUserID: testIgUserID,
			Timestamp: day(2025, 6, i+1), MediaType: consts.MediaTypeImage,
		})
		mediaStats = append(mediaStats, &model.MediaDailyStat{
			StatDate: day(2025, 7, 1), IgMediaID: id, LikeCount: i, Reach: util.PtrInt(100),
		})
	}
	for i := 0; i < 15; i++ {
		id := "vid-" + string(rune('a'+i))
		posts = append(posts, &model.MediaPost{
			IgMediaID: id, IgUserID: testIgUserID,
			Timestamp: day(2025, 7, i+1), MediaType: consts.MediaTypeVideo,
		})
		mediaStats = append(mediaStats, &model.MediaDailyStat{
			StatDate: day(2025, 8, 1), IgMediaID: id, LikeCount: 100 + i, Reach: util.PtrInt(100),
		})
	}
	svc, _, _, _, _ := newTestService(nil, posts, mediaStats)

	query := &dto.PostQueryDTO{
		MediaTypes: []string{consts.MediaTypeImage, consts.MediaTypeVideo},
		SortBy:     consts.SortByLikeCount,
		SortOrder:  "desc",
		Limit:      10,
	}
	result, err := svc.GetPostsAnalytics(context.Background(), testIgUserID, query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 每类各取 10 条合并后排序，再截断到 10
	if len(result) != 10 {
		t.Fatalf("len = %d, want 10", len(result))
	}
	for i := 1; i < len(result); i++ {
		if result[i].LikeCount > result[i-1].LikeCount {
			t.Errorf("not sorted desc at index %d", i)
		}
	}
	// like_count 最高的全是 VIDEO 组
	if result[0].LikeCount != 114 {
		t.Errorf("top like_count = %d, want 114", result[0].LikeCount)
	}
}

func TestGetPostsAnalyticsTimestampDefaultSort(t *testing.T) {
	posts := []*model.MediaPost{
		{IgMediaID: "old", IgUserID: testIgUserID, Timestamp: day(2025, 6, 1), MediaType: consts.MediaTypeImage},
		{IgMediaID: "new", IgUserID: testIgUserID, Timestamp: day(2025, 6, 20), MediaType: consts.MediaTypeImage},
		{IgMediaID: "mid", IgUserID: testIgUserID, Timestamp: day(2025, 6, 10), MediaType: consts.MediaTypeImage},
	}
	svc, _, _, _, _ := newTestService(nil, posts, nil)

	result, err := svc.GetPostsAnalytics(context.Background(), testIgUserID, &dto.PostQueryDTO{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("len = %d, want 3", len(result))
	}
	want := []string{"new", "mid", "old"}
	for i, id := range want {
		if result[i].IgMediaID != id {
			t.Errorf("index %d = %s, want %s", i, result[i].IgMediaID, id)
		}
	}
}

func TestGetPostsAnalyticsEngagementEnrichment(t *testing.T) {
	posts := []*model.MediaPost{
		{IgMediaID: "with-reach", IgUserID: testIgUserID, Timestamp: day(2025, 6, 1), MediaType: consts.MediaTypeImage},
		{IgMediaID: "no-reach", IgUserID: testIgUserID, Timestamp: day(2025, 6, 2), MediaType: consts.MediaTypeImage},
		{IgMediaID: "no-stat", IgUserID: testIgUserID, Timestamp: day(2025, 6, 3), MediaType: consts.MediaTypeImage},
	}
	mediaStats := []*model.MediaDailyStat{
		{StatDate: day(2025, 6, 5), IgMediaID: "with-reach", LikeCount: 10, CommentsCount: 10, Reach: util.PtrInt(200)},
		{StatDate: day(2025, 6, 5), IgMediaID: "no-reach", LikeCount: 2, CommentsCount: 1},
	}
	svc, _, _, _, _ := newTestService(nil, posts, mediaStats)

	result, err := svc.GetPostsAnalytics(context.Background(), testIgUserID, &dto.PostQueryDTO{SortOrder: "asc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("len = %d, want 3", len(result))
	}
	// (10+10) / 200 * 100 = 10.0
	if result[0].EngagementRate != 10.0 {
		t.Errorf("with-reach rate = %v, want 10.0", result[0].EngagementRate)
	}
	// reach 缺失时回退为 1：(2+1) / 1 * 100 = 300.0
	if result[1].EngagementRate != 300.0 {
		t.Errorf("no-reach rate = %v, want 300.0", result[1].EngagementRate)
	}
	// 完全没有快照的投稿互动率为 0
	if result[2].EngagementRate != 0.0 {
		t.Errorf("no-stat rate = %v, want 0.0", result[2].EngagementRate)
	}
}

func TestGetPostsAnalyticsMediaTypeFilter(t *testing.T) {
	posts := []*model.MediaPost{
		{IgMediaID: "i1", IgUserID: testIgUserID, Timestamp: day(2025, 6, 1), MediaType: consts.MediaTypeImage},
		{IgMediaID: "v1", IgUserID: testIgUserID, Timestamp: day(2025, 6, 2), MediaType: consts.MediaTypeVideo},
		{IgMediaID: "c1", IgUserID: testIgUserID, Timestamp: day(2025, 6, 3), MediaType: consts.MediaTypeCarousel},
	}
	svc, _, _, _, _ := newTestService(nil, posts, nil)

	result, err := svc.GetPostsAnalytics(context.Background(), testIgUserID, &dto.PostQueryDTO{
		MediaTypes: []string{consts.MediaTypeVideo},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 || result[0].IgMediaID != "v1" {
		t.Errorf("result = %+v, want only v1", result)
	}
}

func TestGetPostsAnalyticsDateRange(t *testing.T) {
	posts := []*model.MediaPost{
		{IgMediaID: "before", IgUserID: testIgUserID, Timestamp: day(2025, 5, 31), MediaType: consts.MediaTypeImage},
		{IgMediaID: "inside", IgUserID: testIgUserID, Timestamp: day(2025, 6, 15), MediaType: consts.MediaTypeImage},
		{IgMediaID: "edge", IgUserID: testIgUserID, Timestamp: day(2025, 6, 30).Add(23 * time.Hour), MediaType: consts.MediaTypeImage},
		{IgMediaID: "after", IgUserID: testIgUserID, Timestamp: day(2025, 7, 1), MediaType: consts.MediaTypeImage},
	}
	svc, _, _, _, _ := newTestService(nil, posts, nil)

	result, err := svc.GetPostsAnalytics(context.Background(), testIgUserID, &dto.PostQueryDTO{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("len = %d, want 2 (end date inclusive)", len(result))
	}
}

func TestGetPostsAnalyticsBadDate(t *testing.T) {
	svc, _, _, _, _ := newTestService(nil, nil, nil)
	_, err := svc.GetPostsAnalytics(context.Background(), testIgUserID, &dto.PostQueryDTO{StartDate: "06/01/2025"})
	if !errors.Is(err, ErrParamInvalid) {
		t.Errorf("err = %v, want ErrParamInvalid", err)
	}
}
