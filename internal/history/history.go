// Package history records casts in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/haruki7049/lat/internal/host"
	"github.com/haruki7049/lat/internal/lat"

	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// ErrClosed is returned when the store has been closed.
var ErrClosed = errors.New("history store closed")

//go:embed migrations/*.sql
var migrations embed.FS

const table = "casts"

var columns = []string{"id", "source", "spell", "error_kind", "error_message", "resetting", "cast_at"}

// Cast is one recorded console submission.
type Cast struct {
	ID           uuid.UUID
	Source       string
	Spell        *lat.SpellDescriptor // nil when parsing failed or the input was a reset keyword
	ErrorKind    string
	ErrorMessage string
	Resetting    bool
	CastAt       time.Time
}

// Failed reports whether the cast produced a parse error.
func (c Cast) Failed() bool {
	return c.ErrorKind != ""
}

// NewCast builds a cast from a host response, stamped with a fresh ID and
// the current time.
func NewCast(source string, resp host.Response) Cast {
	c := Cast{
		ID:        uuid.New(),
		Source:    source,
		Spell:     resp.Spell,
		Resetting: resp.Resetting,
		CastAt:    time.Now(),
	}
	if resp.Error != nil {
		c.ErrorKind = resp.Error.Kind
		c.ErrorMessage = resp.Error.Message
	}
	return c
}

// Store is a cast log backed by SQLite.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(1)

	return &Store{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func (s *Store) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrClosed
	}
	return s.db, nil
}

// Record appends a cast.
func (s *Store) Record(ctx context.Context, c Cast) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	var spell sql.NullString
	if c.Spell != nil {
		data, err := json.Marshal(c.Spell)
		if err != nil {
			return fmt.Errorf("encoding spell: %w", err)
		}
		spell = sql.NullString{String: string(data), Valid: true}
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CastAt.IsZero() {
		c.CastAt = time.Now()
	}

	query, args, err := sq.Insert(table).
		Columns(columns...).
		Values(c.ID.String(), c.Source, spell, c.ErrorKind, c.ErrorMessage, c.Resetting, c.CastAt.UnixNano()).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting cast: %w", err)
	}

	return nil
}

// Recent returns up to limit casts, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Cast, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, nil
	}

	query, args, err := sq.Select(columns...).
		From(table).
		OrderBy("cast_at DESC", "rowid DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying casts: %w", err)
	}
	defer rows.Close()

	var casts []Cast
	for rows.Next() {
		var (
			c      Cast
			id     string
			spell  sql.NullString
			castAt int64
		)
		if err := rows.Scan(&id, &c.Source, &spell, &c.ErrorKind, &c.ErrorMessage, &c.Resetting, &castAt); err != nil {
			return nil, fmt.Errorf("scanning cast: %w", err)
		}

		c.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parsing cast id %q: %w", id, err)
		}
		c.CastAt = time.Unix(0, castAt)

		if spell.Valid {
			c.Spell = &lat.SpellDescriptor{}
			if err := json.Unmarshal([]byte(spell.String), c.Spell); err != nil {
				return nil, fmt.Errorf("decoding spell: %w", err)
			}
		}

		casts = append(casts, c)
	}

	return casts, rows.Err()
}

// Clear deletes every cast and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	query, args, err := sq.Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("building delete: %w", err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("clearing casts: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the database. It is safe to call more than once.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
