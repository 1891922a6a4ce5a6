package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"subfix/internal/config"
	"subfix/internal/timeline"
)

// ErrNotFound indicates the named document is not in the session.
var ErrNotFound = errors.New("document not found")

// ErrLocked indicates another subfix process holds the session lock.
var ErrLocked = errors.New("session is locked by another process")

// DocumentInfo summarizes a stored document.
type DocumentInfo struct {
	Name      string
	Segments  int
	UpdatedAt time.Time
}

// Store manages session persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	path string
}

// Open initializes or connects to the session database and applies the
// schema. The session directory is locked for the lifetime of the store.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.SessionDir, "session.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire session lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	dbPath := filepath.Join(cfg.Paths.SessionDir, "session.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, lock: lock, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close closes the database and releases the session lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var dbErr error
	if s.db != nil {
		dbErr = s.db.Close()
	}
	if s.lock != nil {
		_ = s.lock.Unlock()
	}
	return dbErr
}

// Path returns the backing database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveDocument upserts a named document together with its limits snapshot.
// The segment rows are replaced wholesale inside one transaction.
func (s *Store) SaveDocument(ctx context.Context, name string, doc timeline.Document, limits timeline.Limits) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sourceFile := ""
	if doc.Len() > 0 {
		sourceFile = doc.Segments[0].SourceFile
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO documents (
            name, source_file, max_total_chars, max_line_chars,
            min_duration, max_duration, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(name) DO UPDATE SET
            source_file = excluded.source_file,
            max_total_chars = excluded.max_total_chars,
            max_line_chars = excluded.max_line_chars,
            min_duration = excluded.min_duration,
            max_duration = excluded.max_duration,
            updated_at = excluded.updated_at`,
		name, sourceFile,
		limits.MaxTotalChars, limits.MaxLineChars,
		limits.MinDuration, limits.MaxDuration,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}

	var docID int64
	if id, idErr := res.LastInsertId(); idErr == nil && id > 0 {
		docID = id
	}
	if docID == 0 {
		if err := tx.QueryRowContext(ctx, "SELECT id FROM documents WHERE name = ?", name).Scan(&docID); err != nil {
			return fmt.Errorf("resolve document id: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM segments WHERE document_id = ?", docID); err != nil {
		return fmt.Errorf("clear segments: %w", err)
	}

	for i, seg := range doc.Segments {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO segments (
                document_id, position, key, start_seconds, end_seconds,
                text, original_text, source_file
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			docID, i, seg.Key.String(), seg.Start, seg.End,
			seg.Text, seg.OriginalText, seg.SourceFile,
		)
		if err != nil {
			return fmt.Errorf("insert segment %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// LoadDocument restores a named document and the limits snapshot it was
// saved with. Derived flags are recomputed against that snapshot.
func (s *Store) LoadDocument(ctx context.Context, name string) (timeline.Document, timeline.Limits, error) {
	var docID int64
	var limits timeline.Limits
	err := s.db.QueryRowContext(ctx,
		`SELECT id, max_total_chars, max_line_chars, min_duration, max_duration
         FROM documents WHERE name = ?`, name,
	).Scan(&docID, &limits.MaxTotalChars, &limits.MaxLineChars, &limits.MinDuration, &limits.MaxDuration)
	if errors.Is(err, sql.ErrNoRows) {
		return timeline.Document{}, timeline.Limits{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return timeline.Document{}, timeline.Limits{}, fmt.Errorf("load document: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT key, start_seconds, end_seconds, text, original_text, source_file
         FROM segments WHERE document_id = ? ORDER BY position`, docID,
	)
	if err != nil {
		return timeline.Document{}, timeline.Limits{}, fmt.Errorf("load segments: %w", err)
	}
	defer rows.Close()

	var segments []timeline.Segment
	for rows.Next() {
		var keyText string
		var seg timeline.Segment
		if err := rows.Scan(&keyText, &seg.Start, &seg.End, &seg.Text, &seg.OriginalText, &seg.SourceFile); err != nil {
			return timeline.Document{}, timeline.Limits{}, fmt.Errorf("scan segment: %w", err)
		}
		key, parseErr := uuid.Parse(keyText)
		if parseErr != nil {
			key = uuid.New()
		}
		seg.Key = key
		segments = append(segments, seg)
	}
	if err := rows.Err(); err != nil {
		return timeline.Document{}, timeline.Limits{}, fmt.Errorf("iterate segments: %w", err)
	}

	return timeline.New(segments).Refresh(limits), limits, nil
}

// ListDocuments returns the stored documents, most recently updated first.
func (s *Store) ListDocuments(ctx context.Context) ([]DocumentInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT d.name, d.updated_at, COUNT(s.document_id)
         FROM documents d
         LEFT JOIN segments s ON s.document_id = d.id
         GROUP BY d.id
         ORDER BY d.updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var infos []DocumentInfo
	for rows.Next() {
		var info DocumentInfo
		var updated string
		if err := rows.Scan(&info.Name, &updated, &info.Segments); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, updated); parseErr == nil {
			info.UpdatedAt = ts
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DeleteDocument removes a named document and its segments.
func (s *Store) DeleteDocument(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// Clear removes every stored document.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
