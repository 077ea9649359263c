package records

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

const selectRecord = `SELECT id, name, type, filename, components FROM records`

// Store is a record catalog persisted in SQLite.
type Store struct {
	db *sql.DB
}

var _ ports.RecordCatalog = (*Store)(nil)

// Open opens, creating if needed, the SQLite catalog at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, zerr.With(domain.ErrStoreOpenFailed, "reason", "path is required")
	}
	clean := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(clean), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", clean)
	}

	dsn := clean + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", clean)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", clean)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", clean)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// FindByID returns the record with the given identifier, or nil.
func (s *Store) FindByID(ctx context.Context, id domain.Identifier) (*domain.Record, error) {
	row := s.db.QueryRowContext(ctx, selectRecord+` WHERE id = ?`, id.String())
	return scanOne(row)
}

// FindByName returns the first record named name, with or without its type
// qualifier. Entities are preferred over tint palettes.
func (s *Store) FindByName(ctx context.Context, name string) (*domain.Record, error) {
	row := s.db.QueryRowContext(ctx,
		selectRecord+` WHERE name = ? OR short_name = ?
		 ORDER BY (type = ?), rowid LIMIT 1`,
		name, name, domain.RecordTypeTintPalette,
	)
	return scanOne(row)
}

// FindByNamePattern returns records whose filename matches the glob
// pattern, ignoring case, ordered by filename.
func (s *Store) FindByNamePattern(ctx context.Context, pattern string) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		selectRecord+` WHERE lower(filename) GLOB lower(?) ORDER BY lower(filename), rowid`,
		pattern,
	)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "pattern", pattern)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Record
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return out, nil
}

// Ingest decodes dump files concurrently and upserts their records in one
// transaction. Dumps whose content is unchanged since their last ingest are
// skipped.
func (s *Store) Ingest(ctx context.Context, paths []string) (int, error) {
	dumps, err := readDumps(ctx, paths)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	defer func() { _ = tx.Rollback() }()

	n := 0
	for _, d := range dumps {
		var previous string
		err := tx.QueryRowContext(ctx, `SELECT digest FROM dumps WHERE path = ?`, d.path).Scan(&previous)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return 0, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
		}
		if previous == d.digest {
			continue
		}
		if err := upsert(ctx, tx, d.records); err != nil {
			return 0, zerr.With(err, "path", d.path)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO dumps (path, digest, records) VALUES (?, ?, ?)
			 ON CONFLICT(path) DO UPDATE SET digest = excluded.digest, records = excluded.records`,
			d.path, d.digest, len(d.records),
		)
		if err != nil {
			return 0, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
		}
		n += len(d.records)
	}

	if err := tx.Commit(); err != nil {
		return 0, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return n, nil
}

func upsert(ctx context.Context, tx *sql.Tx, recs []domain.Record) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (id, name, short_name, type, filename, components) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   short_name = excluded.short_name,
		   type = excluded.type,
		   filename = excluded.filename,
		   components = excluded.components`,
	)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	defer func() { _ = stmt.Close() }()

	for _, rec := range recs {
		components, err := json.Marshal(rec.Components)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "record", rec.ID.String())
		}
		if _, err := stmt.ExecContext(ctx,
			rec.ID.String(), rec.Name, rec.ShortName(), rec.Type, rec.Filename, string(components),
		); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "record", rec.ID.String())
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOne(row *sql.Row) (*domain.Record, error) {
	rec, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

func scan(row scanner) (*domain.Record, error) {
	var (
		rec        domain.Record
		id         string
		components string
	)
	if err := row.Scan(&id, &rec.Name, &rec.Type, &rec.Filename, &components); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	rec.ID = domain.Identifier(id)
	if err := json.Unmarshal([]byte(components), &rec.Components); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "record", id)
	}
	return &rec, nil
}
