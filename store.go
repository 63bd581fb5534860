package convcalc

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database and provides CRUD operations for blog posts
// and uploaded image metadata.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL with a busy timeout lets readers proceed while the admin writes.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
		PRAGMA mmap_size=268435456;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    summary TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    author TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    tags TEXT NOT NULL DEFAULT ',,',
    cover_image TEXT NOT NULL DEFAULT '',
    featured INTEGER NOT NULL DEFAULT 0,
    published INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_posts_date ON posts(published, date);

CREATE TABLE IF NOT EXISTS images (
    filename TEXT PRIMARY KEY,
    original_name TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    size INTEGER NOT NULL,
    uploaded_at TEXT NOT NULL
);
`)
	if err != nil {
		return fmt.Errorf("convcalc: ensure schema: %w", err)
	}
	return nil
}

const postColumns = `id, slug, title, summary, content, author, date, updated_at, tags, cover_image, featured, published`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (BlogPost, error) {
	var p BlogPost
	var tags string
	var featured, published int
	if err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Summary, &p.Content, &p.Author,
		&p.Date, &p.UpdatedAt, &tags, &p.CoverImage, &featured, &published); err != nil {
		return BlogPost{}, err
	}
	p.Tags = ParseTags(tags)
	p.Featured = featured == 1
	p.Published = published == 1
	p.Link = "/blog/" + p.Slug + "/"
	return p, nil
}

func (s *Store) queryPosts(query string, args ...any) ([]BlogPost, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListPosts returns all published posts ordered by date descending.
// If tag is non-empty, results are filtered to posts containing that tag.
func (s *Store) ListPosts(tag string) ([]BlogPost, error) {
	if tag == "" {
		return s.queryPosts(`SELECT ` + postColumns + ` FROM posts WHERE published = 1 ORDER BY date DESC, updated_at DESC`)
	}
	return s.queryPosts(`SELECT `+postColumns+` FROM posts WHERE published = 1 AND instr(lower(tags), ',' || ? || ',') > 0 ORDER BY date DESC, updated_at DESC`,
		normalizeTag(tag))
}

// ListAllPosts returns every post (published and drafts) ordered by date descending.
func (s *Store) ListAllPosts() ([]BlogPost, error) {
	return s.queryPosts(`SELECT ` + postColumns + ` FROM posts ORDER BY date DESC, updated_at DESC`)
}

// ListTags returns a sorted, deduplicated slice of all tags from published posts.
func (s *Store) ListTags() ([]string, error) {
	rows, err := s.db.Query(`SELECT tags FROM posts WHERE published = 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		for _, t := range ParseTags(tags) {
			set[normalizeTag(t)] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	var result []string
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result, nil
}

// GetPost returns a single published post by slug.
func (s *Store) GetPost(slug string) (BlogPost, error) {
	return scanPost(s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE slug = ? AND published = 1`, slug))
}

// GetPostByID returns a post by its ID regardless of published status.
func (s *Store) GetPostByID(id string) (BlogPost, error) {
	return scanPost(s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = ?`, id))
}

// SavePost inserts or updates a post keyed by ID. A post without an ID gets
// a fresh UUID. UpdatedAt is always stamped with the current time. The saved
// post is returned.
func (s *Store) SavePost(p BlogPost) (BlogPost, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Date == "" {
		p.Date = time.Now().Format("2006-01-02")
	}
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	normalizedTags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t = normalizeTag(t); t != "" {
			normalizedTags = append(normalizedTags, t)
		}
	}
	p.Tags = normalizedTags
	tagString := "," + strings.Join(normalizedTags, ",") + ","

	_, err := s.db.Exec(`
INSERT INTO posts (`+postColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    slug = excluded.slug,
    title = excluded.title,
    summary = excluded.summary,
    content = excluded.content,
    author = excluded.author,
    date = excluded.date,
    updated_at = excluded.updated_at,
    tags = excluded.tags,
    cover_image = excluded.cover_image,
    featured = excluded.featured,
    published = excluded.published`,
		p.ID, p.Slug, p.Title, p.Summary, p.Content, p.Author, p.Date, p.UpdatedAt,
		tagString, p.CoverImage, boolToInt(p.Featured), boolToInt(p.Published))
	if err != nil {
		return BlogPost{}, fmt.Errorf("convcalc: save post %q: %w", p.Slug, err)
	}
	p.Link = "/blog/" + p.Slug + "/"
	return p, nil
}

// DeletePost removes a post by ID.
func (s *Store) DeletePost(id string) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	return err
}

// UniqueSlug returns base if no other post uses it, otherwise the first free
// base-1, base-2, ... The post with excludeID is ignored so that re-saving a
// post keeps its own slug.
func (s *Store) UniqueSlug(base, excludeID string) (string, error) {
	candidate := base
	for n := 1; ; n++ {
		var count int
		err := s.db.QueryRow(`SELECT COUNT(*) FROM posts WHERE slug = ? AND id != ?`, candidate, excludeID).Scan(&count)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

// SaveImage records metadata for an uploaded image.
func (s *Store) SaveImage(img Image) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO images (filename, original_name, width, height, size, uploaded_at) VALUES (?, ?, ?, ?, ?, ?)`,
		img.Filename, img.OriginalName, img.Width, img.Height, img.Size, img.UploadedAt)
	return err
}

// ListImages returns image metadata, newest first.
func (s *Store) ListImages() ([]Image, error) {
	rows, err := s.db.Query(`SELECT filename, original_name, width, height, size, uploaded_at FROM images ORDER BY uploaded_at DESC, filename`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.Filename, &img.OriginalName, &img.Width, &img.Height, &img.Size, &img.UploadedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// ImageExists reports whether metadata for filename is stored.
func (s *Store) ImageExists(filename string) (bool, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM images WHERE filename = ?`, filename).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteImage removes image metadata by filename.
func (s *Store) DeleteImage(filename string) error {
	_, err := s.db.Exec(`DELETE FROM images WHERE filename = ?`, filename)
	return err
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
