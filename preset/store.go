package preset

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no preset has the requested ID.
var ErrNotFound = errors.New("preset not found")

// Store persists user-defined presets in SQLite. Built-in presets are
// never written here.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the preset database at dbPath.
func OpenStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS presets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		definition TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_presets_name ON presets(name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or updates a preset. A preset without an ID gets one.
func (s *Store) Save(p Preset) (Preset, error) {
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	definition, err := json.Marshal(p)
	if err != nil {
		return Preset{}, fmt.Errorf("encode preset %q: %w", p.Name, err)
	}

	now := time.Now().UTC()
	_, err = s.db.Exec(
		`INSERT INTO presets (id, name, definition, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   definition = excluded.definition,
		   updated_at = excluded.updated_at`,
		p.ID, p.Name, string(definition), now, now,
	)
	if err != nil {
		return Preset{}, fmt.Errorf("save preset %q: %w", p.Name, err)
	}
	return p, nil
}

// Load retrieves a preset by ID.
func (s *Store) Load(id string) (Preset, error) {
	row := s.db.QueryRow(`SELECT definition FROM presets WHERE id = ?`, id)

	var definition string
	if err := row.Scan(&definition); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Preset{}, ErrNotFound
		}
		return Preset{}, fmt.Errorf("load preset %s: %w", id, err)
	}

	var p Preset
	if err := json.Unmarshal([]byte(definition), &p); err != nil {
		return Preset{}, fmt.Errorf("decode preset %s: %w", id, err)
	}
	return p, nil
}

// List returns all stored presets ordered by name.
func (s *Store) List() ([]Preset, error) {
	rows, err := s.db.Query(`SELECT definition FROM presets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		var definition string
		if err := rows.Scan(&definition); err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		var p Preset
		if err := json.Unmarshal([]byte(definition), &p); err != nil {
			return nil, fmt.Errorf("decode preset: %w", err)
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

// Delete removes a preset by ID.
func (s *Store) Delete(id string) error {
	result, err := s.db.Exec(`DELETE FROM presets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete preset %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
