// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package data

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3" // Load SQLite DB driver
)

type sqlite_driver struct {
}

func init() {
	RegisterDBDriver("sqlite3", sqlite_driver{})
}

func (sqlite sqlite_driver) OpenDatabase(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS samples (
		timestamp   integer,
		id          text,
		key         text,
		value       text
	)`)
	if err != nil {
		db.Close()
		return err
	}

	return nil
}

func (sqlite sqlite_driver) Close(db *sql.DB) {
}

func (sqlite sqlite_driver) InsertRow(db Execer, timestamp int64, id string, key string, value string) error {
	stmt := `INSERT INTO samples (
		timestamp,
		id,
		key,
		value
	) VALUES (?, ?, ?, ?)`

	_, err := db.Exec(stmt, timestamp, id, key, value)
	return err
}

func (sqlite sqlite_driver) CountRows(db *sql.DB, id string) (int, error) {
	row := db.QueryRow(`SELECT COUNT(*) FROM samples WHERE id = ?`, id)
	var result int
	err := row.Scan(&result)
	return result, err
}
