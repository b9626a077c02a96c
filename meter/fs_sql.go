package meter

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"regexp"
)

// DefaultSnapshotTable is the default table of SQLFileSystem
const DefaultSnapshotTable = "meter_snapshot"

var tableNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var _ FileSystem = (*SQLFileSystem)(nil)

// SQLFileSystem implements FileSystem with a table of (path, content) rows.
// The statements are valid for both mysql and sqlite.
type SQLFileSystem struct {
	db    *sql.DB
	table string
}

// NewSQLFileSystem create SQLFileSystem, empty table means DefaultSnapshotTable
func NewSQLFileSystem(db *sql.DB, table string) (*SQLFileSystem, error) {
	if db == nil {
		return nil, errors.New("db must not be nil")
	}
	if table == "" {
		table = DefaultSnapshotTable
	}
	if !tableNameRegexp.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &SQLFileSystem{db: db, table: table}, nil
}

// EnsureTable create the snapshot table if it doesn't exist
func (p *SQLFileSystem) EnsureTable() error {
	_, err := p.db.Exec(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		path    VARCHAR(255) NOT NULL PRIMARY KEY,
		content TEXT NOT NULL
	)`, p.table))
	return err
}

// Exists implements FileSystem.Exists
func (p *SQLFileSystem) Exists(path string) (bool, error) {
	var count int
	err := p.db.QueryRow(fmt.Sprintf("SELECT COUNT(1) FROM %s WHERE path = ?", p.table), path).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReadAllText implements FileSystem.ReadAllText
func (p *SQLFileSystem) ReadAllText(path string) (string, error) {
	var content string
	err := p.db.QueryRow(fmt.Sprintf("SELECT content FROM %s WHERE path = ?", p.table), path).Scan(&content)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%s in %s: %w", path, p.table, os.ErrNotExist)
	}
	if err != nil {
		return "", err
	}
	return content, nil
}

// WriteAllText implements FileSystem.WriteAllText
func (p *SQLFileSystem) WriteAllText(path, content string) error {
	_, err := p.db.Exec(fmt.Sprintf("REPLACE INTO %s (path, content) VALUES (?, ?)", p.table), path, content)
	return err
}

// Close close the db
func (p *SQLFileSystem) Close() error {
	return p.db.Close()
}
