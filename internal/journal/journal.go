// Package journal persists slider sessions and the commands they emitted in SQLite.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/cristianoliveira/animatedpager/internal/trace"
)

// ErrSessionNotFound indicates that no session has the requested ID.
var ErrSessionNotFound = errors.New("session not found")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	source      TEXT NOT NULL,
	page_count  INTEGER NOT NULL,
	image_count INTEGER NOT NULL,
	started_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS commands (
	session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	seq        INTEGER NOT NULL,
	name       TEXT NOT NULL,
	page       INTEGER NOT NULL,
	image      INTEGER NOT NULL,
	delay_ms   INTEGER NOT NULL,
	PRIMARY KEY (session_id, seq)
);
`

const timeLayout = "2006-01-02T15:04:05.000Z"

// SessionInfo describes a session when it starts.
type SessionInfo struct {
	// Name is a human label such as the scenario name.
	Name string
	// Source tells where the session came from, e.g. "play" or "demo".
	Source     string
	PageCount  int
	ImageCount int
}

// Session is a stored session.
type Session struct {
	ID         string
	Name       string
	Source     string
	PageCount  int
	ImageCount int
	StartedAt  time.Time
	Commands   int
}

// Journal is a SQLite-backed session store.
type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the journal at path.
func Open(path string) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("journal: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open db: %w", err)
	}
	// One connection keeps the pragmas applied to every statement.
	db.SetMaxOpenConns(1)

	j := &Journal{db: db, now: time.Now}
	if err := j.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return j, nil
}

// Close closes the underlying SQLite connection.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

func (j *Journal) init() error {
	if _, err := j.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("journal: set busy timeout: %w", err)
	}
	if _, err := j.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("journal: enable foreign keys: %w", err)
	}
	if _, err := j.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("journal: create schema: %w", err)
	}
	return nil
}

// StartSession stores a new session and returns a writer for its commands.
func (j *Journal) StartSession(ctx context.Context, info SessionInfo) (*SessionWriter, error) {
	id := uuid.NewString()
	started := j.now().UTC()
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO sessions (id, name, source, page_count, image_count, started_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, info.Name, info.Source, info.PageCount, info.ImageCount, started.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("journal: start session: %w", err)
	}
	return &SessionWriter{db: j.db, id: id, ctx: ctx}, nil
}

// ListSessions returns the most recent sessions first. A limit <= 0 returns all of them.
func (j *Journal) ListSessions(ctx context.Context, limit int) ([]Session, error) {
	query := `
SELECT s.id, s.name, s.source, s.page_count, s.image_count, s.started_at, COUNT(c.seq)
FROM sessions s
LEFT JOIN commands c ON c.session_id = s.id
GROUP BY s.id
ORDER BY s.started_at DESC, s.rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("journal: list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			s       Session
			started string
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Source, &s.PageCount, &s.ImageCount, &started, &s.Commands); err != nil {
			return nil, fmt.Errorf("journal: scan session: %w", err)
		}
		if s.StartedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("journal: parse start time of %s: %w", s.ID, err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: list sessions: %w", err)
	}
	return sessions, nil
}

// Commands returns the commands of a session in emission order.
func (j *Journal) Commands(ctx context.Context, sessionID string) ([]trace.Command, error) {
	var exists int
	err := j.db.QueryRowContext(ctx, `SELECT 1 FROM sessions WHERE id = ?`, sessionID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("journal: commands: %w: id %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("journal: commands: %w", err)
	}

	rows, err := j.db.QueryContext(ctx,
		`SELECT seq, name, page, image, delay_ms FROM commands WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("journal: commands: %w", err)
	}
	defer rows.Close()

	var cmds []trace.Command
	for rows.Next() {
		var (
			c       trace.Command
			delayMS int64
		)
		if err := rows.Scan(&c.Seq, &c.Name, &c.Page, &c.Image, &delayMS); err != nil {
			return nil, fmt.Errorf("journal: scan command: %w", err)
		}
		c.Delay = time.Duration(delayMS) * time.Millisecond
		cmds = append(cmds, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: commands: %w", err)
	}
	return cmds, nil
}

// SessionWriter appends commands to one session.
type SessionWriter struct {
	db *sql.DB
	id string
	// ctx is the one given to StartSession. trace.Sink has no context
	// parameter because the recorder runs inside synchronous view calls.
	ctx context.Context
}

var _ trace.Sink = (*SessionWriter)(nil)

// ID returns the session ID.
func (w *SessionWriter) ID() string {
	return w.id
}

// Record stores cmd under its sequence number. It fails once the session context is done.
func (w *SessionWriter) Record(cmd trace.Command) error {
	_, err := w.db.ExecContext(w.ctx,
		`INSERT INTO commands (session_id, seq, name, page, image, delay_ms) VALUES (?, ?, ?, ?, ?, ?)`,
		w.id, cmd.Seq, cmd.Name, cmd.Page, cmd.Image, cmd.Delay.Milliseconds())
	if err != nil {
		return fmt.Errorf("journal: record %s: %w", cmd, err)
	}
	return nil
}
