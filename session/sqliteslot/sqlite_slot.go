// Package sqliteslot keeps a named credential slot in a SQLite file so a
// session survives process restarts.
package sqliteslot

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/supuni9622/crm-application/session"
)

var _ session.Storage = (*Slot)(nil)

const schema = `CREATE TABLE IF NOT EXISTS credential_slots (
	name       TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Slot is one row of the credential_slots table.
type Slot struct {
	db      *sql.DB
	name    string
	nowTime func() time.Time
	mu      sync.Mutex
}

// Open opens (creating when needed) the database at path and binds the slot name.
func Open(path, name string) (*Slot, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("[sqliteslot Open] path is required")
	}
	if name == "" {
		name = session.SlotName
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrap(err, "[sqliteslot Open] create state dir")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "[sqliteslot Open] open")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "[sqliteslot Open] ping")
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "[sqliteslot Open] busy timeout")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "[sqliteslot Open] migrate")
	}

	return &Slot{db: db, name: name, nowTime: time.Now}, nil
}

func (s *Slot) Load() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	err := s.db.QueryRow(`SELECT value FROM credential_slots WHERE name = ?`, s.name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "[Slot Load]")
	}
	return value, true, nil
}

func (s *Slot) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO credential_slots (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.name, token, s.nowTime().Unix())
	return errors.Wrap(err, "[Slot Save]")
}

func (s *Slot) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM credential_slots WHERE name = ?`, s.name)
	return errors.Wrap(err, "[Slot Remove]")
}

// Close releases the database handle.
func (s *Slot) Close() error {
	return s.db.Close()
}
