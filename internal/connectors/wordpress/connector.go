// Package wordpress reads published posts from a WordPress MySQL
// database and turns them into ingest items. Post content is
// normalised (line endings, blank-run collapse, HTML entities) before
// it reaches the chunker.
package wordpress

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/remem-labs/remem/internal/core/domain"
)

// postQuery selects published posts in stable ID order.
const postQuery = `
	SELECT ID, post_date, post_title, post_content
	FROM wp_posts
	WHERE post_status = 'publish' AND post_type = 'post'
	ORDER BY ID ASC`

// Post is one published WordPress post.
type Post struct {
	ID      int64
	Time    time.Time
	Title   string
	Content string
}

// Metadata returns the scalar record attached to every chunk produced
// from this post.
func (p Post) Metadata() domain.Metadata {
	return domain.Metadata{
		"date":      p.Time.UTC().Format("2006-01-02"),
		"timestamp": p.Time.Unix(),
		"title":     p.Title,
	}
}

// Connector reads posts over an open database handle.
type Connector struct {
	db *sql.DB
}

// Open connects to the WordPress database. Host and socket are
// mutually exclusive; socket wins when both are set.
func Open(cfg Config) (*Connector, error) {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = cfg.Database
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}

	if cfg.Socket != "" {
		mc.Net = "unix"
		mc.Addr = cfg.Socket
	} else {
		mc.Net = "tcp"
		mc.Addr = cfg.Host
	}

	db, err := sql.Open("mysql", mc.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open wordpress database: %w", err)
	}

	return &Connector{db: db}, nil
}

// Close releases the database handle.
func (c *Connector) Close() error {
	return c.db.Close()
}

// Posts lazily yields published posts. A query or scan failure stops
// the sequence after being yielded.
func (c *Connector) Posts(ctx context.Context) iter.Seq2[Post, error] {
	return func(yield func(Post, error) bool) {
		rows, err := c.db.QueryContext(ctx, postQuery)
		if err != nil {
			yield(Post{}, fmt.Errorf("query posts: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var post Post
			if err := rows.Scan(&post.ID, &post.Time, &post.Title, &post.Content); err != nil {
				yield(Post{}, fmt.Errorf("scan post: %w", err))
				return
			}
			post.Content = NormaliseContent(post.Content)
			if !yield(post, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(Post{}, fmt.Errorf("iterate posts: %w", err))
		}
	}
}

// Items adapts the post sequence for the chunker.
func (c *Connector) Items(ctx context.Context) iter.Seq2[domain.IngestItem, error] {
	return func(yield func(domain.IngestItem, error) bool) {
		for post, err := range c.Posts(ctx) {
			if err != nil {
				yield(domain.IngestItem{}, err)
				return
			}
			item := domain.IngestItem{Metadata: post.Metadata(), Text: post.Content}
			if !yield(item, nil) {
				return
			}
		}
	}
}
