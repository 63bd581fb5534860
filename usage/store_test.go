package usage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "nested", "usage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, InitSalt(s))
	return s
}

func saveView(t *testing.T, s *Store, slug, visitor string, ts time.Time) {
	t.Helper()
	require.NoError(t, s.SaveView(context.Background(), &View{
		Slug:      slug,
		Path:      "/x/" + slug + "/",
		VisitorID: visitor,
		IPHash:    "h",
		Browser:   "Chrome",
		OS:        "Linux",
		Device:    "Desktop",
		Referrer:  "Direct",
		Timestamp: ts,
	}))
}

func TestInitSaltPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.db")

	s1, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, InitSalt(s1))
	first := s1.salt
	hash := s1.HashIP("203.0.113.7")
	require.NoError(t, s1.Close())

	s2, err := NewStore(path)
	require.NoError(t, err)
	defer s2.Close()
	require.NoError(t, InitSalt(s2))

	assert.NotEmpty(t, first)
	assert.Equal(t, first, s2.salt)
	assert.Equal(t, hash, s2.HashIP("203.0.113.7"))
}

func TestSettings(t *testing.T) {
	s := newTestStore(t)

	v, err := s.GetSetting("missing")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.SetSetting("k", "one"))
	require.NoError(t, s.SetSetting("k", "two"))
	v, err = s.GetSetting("k")
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	ver, err := s.GetSetting("schema_version")
	require.NoError(t, err)
	assert.Equal(t, "1", ver)
}

func TestTopSlugs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	saveView(t, s, "pounds-to-kilograms", "v1", now)
	saveView(t, s, "pounds-to-kilograms", "v2", now)
	saveView(t, s, "pounds-to-kilograms", "v3", now)
	saveView(t, s, "feet-to-meters", "v1", now)
	saveView(t, s, "feet-to-meters", "v2", now)
	saveView(t, s, "celsius-to-kelvin", "v1", now)
	saveView(t, s, "acres-to-hectares", "v1", now)
	// Outside the window.
	saveView(t, s, "celsius-to-kelvin", "v1", now.AddDate(0, 0, -40))
	saveView(t, s, "celsius-to-kelvin", "v2", now.AddDate(0, 0, -40))

	top, err := s.TopSlugs(ctx, now.AddDate(0, 0, -30), now.Add(time.Minute), 3)
	require.NoError(t, err)
	assert.Equal(t, []SlugCount{
		{Slug: "pounds-to-kilograms", Views: 3},
		{Slug: "feet-to-meters", Views: 2},
		{Slug: "acres-to-hectares", Views: 1},
	}, top)
}

func TestDailyViewsAndFill(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	saveView(t, s, "a", "v1", day)
	saveView(t, s, "a", "v2", day.Add(time.Hour))
	saveView(t, s, "b", "v1", day.AddDate(0, 0, 2))

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 3)
	daily, err := s.DailyViews(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, []DailyCount{{Date: "2026-03-10", Views: 2}, {Date: "2026-03-12", Views: 1}}, daily)

	assert.Equal(t, []DailyCount{
		{Date: "2026-03-10", Views: 2},
		{Date: "2026-03-11", Views: 0},
		{Date: "2026-03-12", Views: 1},
	}, fillDays(daily, from, 3))
}

func TestSummary(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	saveView(t, s, "a", "v1", now)
	saveView(t, s, "b", "v1", now)
	saveView(t, s, "a", "v2", now)
	require.NoError(t, s.SaveBotView(ctx, &BotView{
		BotName: "Googlebot", IPHash: "h", UserAgent: "Googlebot/2.1", Slug: "a", Path: "/x/a/", Timestamp: now,
	}))

	sum, err := s.Summary(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, sum.TotalViews)
	assert.Equal(t, 2, sum.UniqueVisitors)
	assert.Equal(t, 1, sum.BotViews)
	assert.Equal(t, []DimensionStat{{Name: "Chrome", Count: 3}}, sum.Browsers)
	assert.Equal(t, []DimensionStat{{Name: "Googlebot", Count: 1}}, sum.TopBots)
}

func TestCleanupOld(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	saveView(t, s, "old", "v1", now.AddDate(0, 0, -400))
	saveView(t, s, "new", "v1", now)
	require.NoError(t, s.SaveBotView(ctx, &BotView{BotName: "x", IPHash: "h", UserAgent: "bot", Slug: "old", Path: "/", Timestamp: now.AddDate(0, 0, -400)}))

	require.NoError(t, s.CleanupOld(ctx, 365))

	top, err := s.TopSlugs(ctx, now.AddDate(-2, 0, 0), now.Add(time.Minute), 10)
	require.NoError(t, err)
	assert.Equal(t, []SlugCount{{Slug: "new", Views: 1}}, top)

	sum, err := s.Summary(ctx, now.AddDate(-2, 0, 0), now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, sum.BotViews)
}

func TestCleanupSchedulerStops(t *testing.T) {
	s := newTestStore(t)
	stop := s.StartCleanupScheduler(30, 10*time.Millisecond, zap.NewNop())
	time.Sleep(30 * time.Millisecond)
	stop()
	stop()
}
