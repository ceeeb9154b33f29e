// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package data

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
)

type mysql_driver struct {
}

func init() {
	RegisterDBDriver("mysql", mysql_driver{})
}

func (mysql mysql_driver) OpenDatabase(db *sql.DB) error {
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS samples (
		timestamp   timestamp,
		id          varchar(128),
		key_        varchar(128),
		value       varchar(64)
	)`); err != nil {
		db.Close()
		return err
	}

	row := db.QueryRow(`
	SELECT COUNT(1) IndexIsThere FROM INFORMATION_SCHEMA.STATISTICS WHERE
		table_schema=DATABASE() AND
		table_name='samples' AND
		index_name='i_samples';
	`)
	var result int
	err := row.Scan(&result)
	if err != nil {
		db.Close()
		return err
	}

	if result == 0 {
		if _, err := db.Exec(`
		CREATE INDEX i_samples ON samples (
			timestamp,
			key_,
			id
		)`); err != nil {
			db.Close()
			return err
		}
	}

	return nil
}

func (mysql mysql_driver) Close(db *sql.DB) {
}

func (mysql mysql_driver) InsertRow(db Execer, timestamp int64, id string, key string, value string) error {
	stmt := `INSERT INTO samples (
		timestamp,
		id,
		key_,
		value
	) VALUES (FROM_UNIXTIME(?), ?, ?, ?)`

	_, err := db.Exec(stmt, timestamp, id, key, value)
	return err
}

func (mysql mysql_driver) CountRows(db *sql.DB, id string) (int, error) {
	row := db.QueryRow(`SELECT COUNT(*) FROM samples WHERE id = ?`, id)
	var result int
	err := row.Scan(&result)
	return result, err
}
