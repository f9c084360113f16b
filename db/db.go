package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/dasdy/spookydraw/model"

	_ "github.com/mattn/go-sqlite3"
)

var ErrNotFound = errors.New("not found")

type SQLiteStorage struct {
	db *sql.DB
}

var schema = []string{
	`create table if not exists users(
		id text primary key,
		username text not null,
		email text,
		avatar_color text,
		is_admin bool not null default false,
		created_at datetime not null)`,
	`create table if not exists drawings(
		id text primary key,
		title text not null,
		author_id text not null,
		author_name text,
		image_data text not null,
		tags text not null default '[]',
		likes int not null default 0,
		views int not null default 0,
		is_public bool not null default true,
		created_at datetime not null)`,
	`create index if not exists drawings_created_ix on drawings (created_at DESC)`,
	`create index if not exists drawings_author_ix on drawings (author_id)`,
	`create table if not exists tool_events(tool text not null, ts datetime not null)`,
	`create index if not exists tool_events_tsix on tool_events (ts ASC)`,
}

func InitDBStorage(conn *sql.DB) error {
	for _, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			slog.Error("Failed to init schema", "statement", stmt, "error", err)

			return fmt.Errorf("could not init schema: %w", err)
		}
	}

	return nil
}

func NewStorage(conn *sql.DB) (*SQLiteStorage, error) {
	if err := InitDBStorage(conn); err != nil {
		return nil, err
	}

	return &SQLiteStorage{db: conn}, nil
}

func NewStorageFromPath(path string) (*SQLiteStorage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	// :memory: databases are per connection.
	if path == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	storage, err := NewStorage(conn)
	if err != nil {
		conn.Close()

		return nil, err
	}

	return storage, nil
}

func (s *SQLiteStorage) StoreToolEvent(event *model.ToolEvent) error {
	ts := event.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := s.db.Exec(`insert into tool_events(tool, ts) values(?, ?)`, string(event.Tool), ts.UTC())
	if err != nil {
		return fmt.Errorf("could not store tool event: %w", err)
	}

	return nil
}

// GatherToolUsage counts activations per tool, most used first.
func (s *SQLiteStorage) GatherToolUsage() ([]model.ToolUsage, error) {
	rows, err := s.db.Query(
		`select tool, count(*) as cnt
        from tool_events
        group by tool
        order by cnt desc, tool`)
	if err != nil {
		return nil, fmt.Errorf("could not query tool usage: %w", err)
	}
	defer rows.Close()

	result := make([]model.ToolUsage, 0)

	for rows.Next() {
		var tool string

		var count int

		if err := rows.Scan(&tool, &count); err != nil {
			return nil, fmt.Errorf("could not scan tool usage: %w", err)
		}

		result = append(result, model.ToolUsage{Tool: model.Tool(tool), Count: count})
	}

	return result, rows.Err()
}

// ToolEventIterator yields all tool events in chronological order.
func (s *SQLiteStorage) ToolEventIterator() (iter.Seq[model.ToolEvent], error) {
	rows, err := s.db.Query(`select tool, ts from tool_events order by ts, rowid`)
	if err != nil {
		return nil, fmt.Errorf("could not query tool events: %w", err)
	}

	return func(yield func(model.ToolEvent) bool) {
		defer rows.Close()

		for rows.Next() {
			var tool string

			var ts time.Time

			if err := rows.Scan(&tool, &ts); err != nil {
				slog.Error("Failed to scan tool event", "error", err)

				return
			}

			if !yield(model.ToolEvent{Tool: model.Tool(tool), Timestamp: ts}) {
				return
			}
		}
	}, nil
}

func (s *SQLiteStorage) SaveUser(user *model.User) error {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.Exec(`insert into users(id, username, email, avatar_color, is_admin, created_at)
		values(?, ?, ?, ?, ?, ?)
		on conflict(id) do update set
			username = excluded.username,
			email = excluded.email,
			avatar_color = excluded.avatar_color,
			is_admin = excluded.is_admin`,
		user.ID, user.Username, user.Email, user.AvatarColor, user.IsAdmin, createdAt.UTC())
	if err != nil {
		return fmt.Errorf("could not save user %s: %w", user.ID, err)
	}

	return nil
}

func (s *SQLiteStorage) SaveDrawing(drawing *model.Drawing) error {
	createdAt := drawing.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tags := drawing.Tags
	if tags == nil {
		tags = []string{}
	}

	encodedTags, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("could not encode tags: %w", err)
	}

	_, err = s.db.Exec(`insert into drawings(id, title, author_id, author_name, image_data, tags, likes, views, is_public, created_at)
		values(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		on conflict(id) do update set
			title = excluded.title,
			image_data = excluded.image_data,
			tags = excluded.tags,
			likes = excluded.likes,
			views = excluded.views,
			is_public = excluded.is_public`,
		drawing.ID, drawing.Title, drawing.AuthorID, drawing.AuthorName, drawing.ImageData,
		string(encodedTags), drawing.Likes, drawing.Views, drawing.IsPublic, createdAt.UTC())
	if err != nil {
		return fmt.Errorf("could not save drawing %s: %w", drawing.ID, err)
	}

	return nil
}

func (s *SQLiteStorage) CountDrawingsByAuthor(authorID string) (int, error) {
	var count int

	err := s.db.QueryRow(`select count(*) from drawings where author_id = ?`, authorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("could not count drawings of %s: %w", authorID, err)
	}

	return count, nil
}

// GetDrawing returns ErrNotFound when there is no drawing with the id.
func (s *SQLiteStorage) GetDrawing(id string) (*model.Drawing, error) {
	rows, err := s.db.Query(drawingColumns+` where id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("could not query drawing %s: %w", id, err)
	}

	drawings, err := scanDrawings(rows)
	if err != nil {
		return nil, err
	}

	if len(drawings) == 0 {
		return nil, fmt.Errorf("drawing %s: %w", id, ErrNotFound)
	}

	return &drawings[0], nil
}

const drawingColumns = `select id, title, author_id, author_name, image_data, tags, likes, views, is_public, created_at
	from drawings`

// ListDrawings returns drawings newest first. A limit <= 0 returns all of them.
func (s *SQLiteStorage) ListDrawings(publicOnly bool, limit int) ([]model.Drawing, error) {
	query := drawingColumns
	if publicOnly {
		query += ` where is_public = true`
	}

	query += ` order by created_at desc, id limit ?`

	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("could not list drawings: %w", err)
	}

	return scanDrawings(rows)
}

// TopDrawings returns public drawings ordered by likes, then views.
func (s *SQLiteStorage) TopDrawings(limit int) ([]model.Drawing, error) {
	rows, err := s.db.Query(drawingColumns+`
		where is_public = true
		order by likes desc, views desc, created_at desc
		limit ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query top drawings: %w", err)
	}

	return scanDrawings(rows)
}

func scanDrawings(rows *sql.Rows) ([]model.Drawing, error) {
	defer rows.Close()

	result := make([]model.Drawing, 0)

	for rows.Next() {
		var (
			d          model.Drawing
			authorName sql.NullString
			tags       string
		)

		err := rows.Scan(&d.ID, &d.Title, &d.AuthorID, &authorName, &d.ImageData,
			&tags, &d.Likes, &d.Views, &d.IsPublic, &d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("could not scan drawing: %w", err)
		}

		d.AuthorName = authorName.String

		if err := json.Unmarshal([]byte(tags), &d.Tags); err != nil {
			return nil, fmt.Errorf("could not decode tags of drawing %s: %w", d.ID, err)
		}

		result = append(result, d)
	}

	return result, rows.Err()
}

// DailyDrawings counts drawings created per day over the last days days.
func (s *SQLiteStorage) DailyDrawings(days int) ([]model.DailyCount, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)

	rows, err := s.db.Query(
		`select date(created_at) as day, count(*)
        from drawings
        where created_at >= ?
        group by day
        order by day`, since)
	if err != nil {
		return nil, fmt.Errorf("could not query daily drawings: %w", err)
	}
	defer rows.Close()

	result := make([]model.DailyCount, 0)

	for rows.Next() {
		var day string

		var count int

		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("could not scan daily drawings: %w", err)
		}

		parsed, err := time.Parse(time.DateOnly, day)
		if err != nil {
			return nil, fmt.Errorf("unexpected day %q: %w", day, err)
		}

		result = append(result, model.DailyCount{Day: parsed, Count: count})
	}

	return result, rows.Err()
}

func (s *SQLiteStorage) GatherStats() (model.Stats, error) {
	var stats model.Stats

	err := s.db.QueryRow(
		`select count(*), coalesce(sum(likes), 0), coalesce(sum(views), 0) from drawings`,
	).Scan(&stats.TotalDrawings, &stats.TotalLikes, &stats.TotalViews)
	if err != nil {
		return stats, fmt.Errorf("could not gather drawing stats: %w", err)
	}

	err = s.db.QueryRow(`select count(*) from users`).Scan(&stats.TotalUsers)
	if err != nil {
		return stats, fmt.Errorf("could not gather user stats: %w", err)
	}

	return stats, nil
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.Error("Failed to close storage", "error", err)
	}
}
