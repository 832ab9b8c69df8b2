// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package history keeps a flat SQLite-backed log of clipboard
// transformations, newest first, trimmed to a configured maximum.
package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"gitlab.com/tozd/go/errors"
)

// Entry is one recorded clipboard event. Transformed and the recipe
// fields are empty when the entry only records an observed change.
type Entry struct {
	bun.BaseModel `bun:"table:history_entries"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Original    string    `bun:"original,notnull" json:"original"`
	Transformed string    `bun:"transformed" json:"transformed,omitempty"`
	RecipeID    string    `bun:"recipe_id" json:"recipe_id,omitempty"`
	RecipeName  string    `bun:"recipe_name" json:"recipe_name,omitempty"`
	CreatedAt   time.Time `bun:"created_at,notnull" json:"created_at"`
}

// Log is the append-only transformation log.
type Log struct {
	db      *bun.DB
	maxSize int
}

// DefaultPath returns the history database location under the user
// config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "ninepaste", "history.db"), nil
}

// Open opens (creating if needed) the history database at path and runs
// the schema migration. maxSize bounds how many entries survive a trim;
// zero or negative disables trimming.
func Open(ctx context.Context, path string, maxSize int) (*Log, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Errorf("creating history dir: %w", err)
		}
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, errors.Errorf("opening history database: %w", err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	log := &Log{db: db, maxSize: maxSize}

	if err := log.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Errorf("migrating history database: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("max_size", maxSize).Msg("history log opened")
	return log, nil
}

func (l *Log) migrate(ctx context.Context) error {
	if _, err := l.db.NewCreateTable().Model((*Entry)(nil)).IfNotExists().Exec(ctx); err != nil {
		return errors.Errorf("creating history table: %w", err)
	}
	if _, err := l.db.Exec("CREATE INDEX IF NOT EXISTS idx_history_created_at ON history_entries(created_at DESC)"); err != nil {
		return errors.Errorf("creating history index: %w", err)
	}
	return nil
}

// Append records an entry, stamping CreatedAt when unset, then trims
// the log back to its maximum size.
func (l *Log) Append(ctx context.Context, entry *Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if _, err := l.db.NewInsert().Model(entry).Exec(ctx); err != nil {
		return errors.Errorf("inserting history entry: %w", err)
	}
	return l.trim(ctx)
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	err := l.db.NewSelect().
		Model(&entries).
		Order("created_at DESC", "id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Errorf("listing history entries: %w", err)
	}
	return entries, nil
}

// Size returns the number of stored entries.
func (l *Log) Size(ctx context.Context) (int, error) {
	count, err := l.db.NewSelect().Model((*Entry)(nil)).Count(ctx)
	if err != nil {
		return 0, errors.Errorf("counting history entries: %w", err)
	}
	return count, nil
}

// Clear deletes every entry.
func (l *Log) Clear(ctx context.Context) error {
	if _, err := l.db.NewDelete().Model((*Entry)(nil)).Where("1=1").Exec(ctx); err != nil {
		return errors.Errorf("clearing history: %w", err)
	}
	return nil
}

// trim drops everything but the newest maxSize entries.
func (l *Log) trim(ctx context.Context) error {
	if l.maxSize <= 0 {
		return nil
	}

	keep := l.db.NewSelect().
		Model((*Entry)(nil)).
		Column("id").
		Order("created_at DESC", "id DESC").
		Limit(l.maxSize)

	_, err := l.db.NewDelete().
		Model((*Entry)(nil)).
		Where("id NOT IN (?)", keep).
		Exec(ctx)
	if err != nil {
		return errors.Errorf("trimming history: %w", err)
	}
	return nil
}

// Close releases the underlying database.
func (l *Log) Close() error {
	return l.db.Close()
}
