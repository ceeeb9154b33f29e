// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package data

import (
	"database/sql"

	_ "github.com/lib/pq"
)

type postgres_driver struct {
}

func init() {
	RegisterDBDriver("postgres", postgres_driver{})
}

func (postgres postgres_driver) OpenDatabase(db *sql.DB) error {
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS samples (
		timestamp   timestamp,
		id          text,
		key         text,
		value       text
	)`); err != nil {
		db.Close()
		return err
	}

	if _, err := db.Exec(`
	CREATE INDEX IF NOT EXISTS i_samples ON samples (
		timestamp,
		key,
		id
	)`); err != nil {
		db.Close()
		return err
	}

	return nil
}

func (postgres postgres_driver) Close(db *sql.DB) {
}

func (postgres postgres_driver) InsertRow(db Execer, timestamp int64, id string, key string, value string) error {
	stmt := `INSERT INTO samples (
		timestamp,
		id,
		key,
		value
	) VALUES (to_timestamp($1), $2, $3, $4)`

	_, err := db.Exec(stmt, timestamp, id, key, value)
	return err
}

func (postgres postgres_driver) CountRows(db *sql.DB, id string) (int, error) {
	row := db.QueryRow(`SELECT COUNT(*) FROM samples WHERE id = $1`, id)
	var result int
	err := row.Scan(&result)
	return result, err
}
