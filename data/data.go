// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package data

import (
	"database/sql"
	"fmt"
	"sort"
)

// Database mirrors persisted records into a SQL table.
type Database struct {
	db     *sql.DB
	driver DBdriver
}

// Execer is satisfied by both *sql.DB and *sql.Tx.
type Execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

var drivers map[string]DBdriver

type DBdriver interface {
	OpenDatabase(db *sql.DB) error
	Close(db *sql.DB)
	InsertRow(db Execer, timestamp int64, id string, key string, value string) error
	CountRows(db *sql.DB, id string) (int, error)
}

func init() {
	drivers = make(map[string]DBdriver)
}

func RegisterDBDriver(name string, driver DBdriver) {
	drivers[name] = driver
}

func DBDrivers() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OpenDatabase opens dsn with the named driver and makes sure the samples
// table exists.
func OpenDatabase(driverName, dsn string) (*Database, error) {
	driver, ok := drivers[driverName]
	if !ok {
		return nil, fmt.Errorf("unknown database driver %q", driverName)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	if err := driver.OpenDatabase(db); err != nil {
		return nil, fmt.Errorf("prepare %s database: %w", driverName, err)
	}

	return &Database{db, driver}, nil
}

func (database *Database) Close() error {
	database.driver.Close(database.db)
	return database.db.Close()
}

// Write inserts one row per field of the record in a single transaction.
func (database *Database) Write(rec Record) error {
	tx, err := database.db.Begin()
	if err != nil {
		return err
	}
	ts := rec.TimeStamp.Unix()
	for _, field := range rec.Fields() {
		if err := database.driver.InsertRow(tx, ts, rec.Sensor, field, rec.Value(field)); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert %s: %w", field, err)
		}
	}
	return tx.Commit()
}

func (database *Database) CountRows(id string) (int, error) {
	return database.driver.CountRows(database.db, id)
}
