package usage

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler serves usage statistics to the admin.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a Handler backed by store. A nil logger discards.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

// StatsResponse is the JSON body of the stats endpoint.
type StatsResponse struct {
	PeriodDays int          `json:"period_days"`
	Summary    *Summary     `json:"summary"`
	TopSlugs   []SlugCount  `json:"top_slugs"`
	DailyViews []DailyCount `json:"daily_views"`
}

// Stats returns aggregated usage for ?period=today|7d|30d|90d|365d
// (also week, month, year). The default is 7d.
func (h *Handler) Stats(c echo.Context) error {
	days := parsePeriod(c.QueryParam("period"))
	from, to := calcTimeRange(time.Now().UTC(), days)
	ctx := c.Request().Context()

	summary, err := h.store.Summary(ctx, from, to)
	if err != nil {
		h.logger.Error("usage summary", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	top, err := h.store.TopSlugs(ctx, from, to, 20)
	if err != nil {
		h.logger.Error("usage top slugs", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	daily, err := h.store.DailyViews(ctx, from, to)
	if err != nil {
		h.logger.Error("usage daily views", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	if top == nil {
		top = []SlugCount{}
	}
	return c.JSON(http.StatusOK, StatsResponse{
		PeriodDays: days,
		Summary:    summary,
		TopSlugs:   top,
		DailyViews: fillDays(daily, from, days),
	})
}

// RegisterRoutes mounts the stats endpoint on an admin-guarded group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.Stats)
}

// parsePeriod maps the period query parameter to a number of days.
func parsePeriod(period string) int {
	switch period {
	case "today":
		return 1
	case "week", "":
		return 7
	case "month":
		return 30
	case "year":
		return 365
	}
	if n, err := strconv.Atoi(strings.TrimSuffix(period, "d")); err == nil && n > 0 && n <= 365 {
		return n
	}
	return 7
}

// calcTimeRange returns the [from, to) window covering the last days UTC
// days, today included.
func calcTimeRange(now time.Time, days int) (time.Time, time.Time) {
	to := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	from := to.AddDate(0, 0, -days)
	return from, to
}

// fillDays returns one entry per day starting at from, with zero for days
// missing from sparse.
func fillDays(sparse []DailyCount, from time.Time, days int) []DailyCount {
	byDate := make(map[string]int, len(sparse))
	for _, d := range sparse {
		byDate[d.Date] = d.Views
	}
	out := make([]DailyCount, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format("2006-01-02")
		out[i] = DailyCount{Date: date, Views: byDate[date]}
	}
	return out
}
