package usage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// tsLayout is how timestamps are stored; it sorts lexically.
const tsLayout = "2006-01-02 15:04:05"

// Store persists views in SQLite.
type Store struct {
	db   *sql.DB
	salt string
}

// NewStore opens (or creates) the usage database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create usage dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open usage db: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS views (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slug TEXT NOT NULL,
			path TEXT NOT NULL,
			visitor_id TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			browser TEXT NOT NULL,
			os TEXT NOT NULL,
			device TEXT NOT NULL,
			referrer TEXT NOT NULL DEFAULT '',
			timestamp TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS bot_views (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			bot_name TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			user_agent TEXT NOT NULL,
			slug TEXT NOT NULL,
			path TEXT NOT NULL,
			timestamp TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_views_timestamp ON views(timestamp);
		CREATE INDEX IF NOT EXISTS idx_views_slug ON views(slug);
		CREATE INDEX IF NOT EXISTS idx_bot_views_timestamp ON bot_views(timestamp);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// currentSchemaVersion is the latest schema version. Increment when adding migrations.
const currentSchemaVersion = 1

func (s *Store) migrate() error {
	verStr, err := s.GetSetting("schema_version")
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	version := 0
	if verStr != "" {
		version, err = strconv.Atoi(verStr)
		if err != nil {
			return fmt.Errorf("parse schema version %q: %w", verStr, err)
		}
	}
	if version < currentSchemaVersion {
		version = currentSchemaVersion
	}
	return s.SetSetting("schema_version", strconv.Itoa(version))
}

// GetSetting retrieves a setting value by key. Returns empty string if not found.
func (s *Store) GetSetting(key string) (string, error) {
	var val string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return val, err
}

// SetSetting stores a setting value by key (upsert).
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// HashIP returns the salted hash of an IP address.
func (s *Store) HashIP(ip string) string {
	return hashWithSalt(s.salt, ip)
}

// VisitorID returns an anonymous per-install visitor id for ip and userAgent.
func (s *Store) VisitorID(ip, userAgent string) string {
	return hashWithSalt(s.salt, ip, userAgent)
}

// SaveView stores a human view.
func (s *Store) SaveView(ctx context.Context, v *View) error {
	res, err := s.db.ExecContext(ctx, `INSERT INTO views
		(slug, path, visitor_id, ip_hash, browser, os, device, referrer, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Slug, v.Path, v.VisitorID, v.IPHash, v.Browser, v.OS, v.Device, v.Referrer,
		v.Timestamp.UTC().Format(tsLayout))
	if err != nil {
		return fmt.Errorf("save view: %w", err)
	}
	v.ID, _ = res.LastInsertId()
	return nil
}

// SaveBotView stores a crawler view.
func (s *Store) SaveBotView(ctx context.Context, bv *BotView) error {
	res, err := s.db.ExecContext(ctx, `INSERT INTO bot_views
		(bot_name, ip_hash, user_agent, slug, path, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		bv.BotName, bv.IPHash, bv.UserAgent, bv.Slug, bv.Path,
		bv.Timestamp.UTC().Format(tsLayout))
	if err != nil {
		return fmt.Errorf("save bot view: %w", err)
	}
	bv.ID, _ = res.LastInsertId()
	return nil
}

// TopSlugs returns the most viewed converters in [from, to), most viewed
// first, ties broken by slug.
func (s *Store) TopSlugs(ctx context.Context, from, to time.Time, limit int) ([]SlugCount, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug, COUNT(*) AS views FROM views
		WHERE timestamp >= ? AND timestamp < ?
		GROUP BY slug ORDER BY views DESC, slug LIMIT ?`,
		from.UTC().Format(tsLayout), to.UTC().Format(tsLayout), limit)
	if err != nil {
		return nil, fmt.Errorf("top slugs: %w", err)
	}
	defer rows.Close()

	var out []SlugCount
	for rows.Next() {
		var sc SlugCount
		if err := rows.Scan(&sc.Slug, &sc.Views); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// DailyViews returns human views per UTC day in [from, to). Days without
// views are omitted; see fillDays.
func (s *Store) DailyViews(ctx context.Context, from, to time.Time) ([]DailyCount, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT substr(timestamp, 1, 10) AS day, COUNT(*) FROM views
		WHERE timestamp >= ? AND timestamp < ?
		GROUP BY day ORDER BY day`,
		from.UTC().Format(tsLayout), to.UTC().Format(tsLayout))
	if err != nil {
		return nil, fmt.Errorf("daily views: %w", err)
	}
	defer rows.Close()

	var out []DailyCount
	for rows.Next() {
		var dc DailyCount
		if err := rows.Scan(&dc.Date, &dc.Views); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

// Summary aggregates totals and breakdowns for [from, to). The queries run
// concurrently.
func (s *Store) Summary(ctx context.Context, from, to time.Time) (*Summary, error) {
	f, t := from.UTC().Format(tsLayout), to.UTC().Format(tsLayout)
	sum := &Summary{
		Period:    from.Format("2006-01-02") + " to " + to.Format("2006-01-02"),
		Browsers:  []DimensionStat{},
		OS:        []DimensionStat{},
		Devices:   []DimensionStat{},
		Referrers: []DimensionStat{},
		TopBots:   []DimensionStat{},
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	var firstErr error
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	count := func(name, query string, dst *int) {
		defer wg.Done()
		var n int
		if err := s.db.QueryRowContext(ctx, query, f, t).Scan(&n); err != nil {
			setErr(fmt.Errorf("%s: %w", name, err))
			return
		}
		mu.Lock()
		*dst = n
		mu.Unlock()
	}
	dimension := func(name, table, column string, dst *[]DimensionStat) {
		defer wg.Done()
		rows, err := s.dimension(ctx, table, column, f, t)
		if err != nil {
			setErr(fmt.Errorf("%s: %w", name, err))
			return
		}
		mu.Lock()
		*dst = rows
		mu.Unlock()
	}

	wg.Add(8)
	go count("total views", `SELECT COUNT(*) FROM views WHERE timestamp >= ? AND timestamp < ?`, &sum.TotalViews)
	go count("unique visitors", `SELECT COUNT(DISTINCT visitor_id) FROM views WHERE timestamp >= ? AND timestamp < ?`, &sum.UniqueVisitors)
	go count("bot views", `SELECT COUNT(*) FROM bot_views WHERE timestamp >= ? AND timestamp < ?`, &sum.BotViews)
	go dimension("browsers", "views", "browser", &sum.Browsers)
	go dimension("os", "views", "os", &sum.OS)
	go dimension("devices", "views", "device", &sum.Devices)
	go dimension("referrers", "views", "referrer", &sum.Referrers)
	go dimension("top bots", "bot_views", "bot_name", &sum.TopBots)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return sum, nil
}

// dimension groups table by column. table and column are trusted constants.
func (s *Store) dimension(ctx context.Context, table, column, from, to string) ([]DimensionStat, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+column+`, COUNT(*) AS n FROM `+table+`
		WHERE timestamp >= ? AND timestamp < ?
		GROUP BY `+column+` ORDER BY n DESC, `+column+` LIMIT 10`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []DimensionStat{}
	for rows.Next() {
		var d DimensionStat
		if err := rows.Scan(&d.Name, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CleanupOld removes views and bot views older than retentionDays.
func (s *Store) CleanupOld(ctx context.Context, retentionDays int) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays).Format(tsLayout)
	if _, err := s.db.ExecContext(ctx, `DELETE FROM views WHERE timestamp < ?`, cutoff); err != nil {
		return fmt.Errorf("cleanup views: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM bot_views WHERE timestamp < ?`, cutoff); err != nil {
		return fmt.Errorf("cleanup bot_views: %w", err)
	}
	return nil
}

// StartCleanupScheduler runs CleanupOld every interval until the returned
// stop function is called.
func (s *Store) StartCleanupScheduler(retentionDays int, interval time.Duration, logger *zap.Logger) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := s.CleanupOld(context.Background(), retentionDays); err != nil {
					logger.Error("usage cleanup", zap.Error(err))
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }
}
