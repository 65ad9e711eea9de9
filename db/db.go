package db

import (
	_ "embed"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB represents our sqlite3 database file.
type DB struct{ *gorm.DB }

//go:embed schema.sql
var schema string

// Open returns a connection to a sqlite3 database file on disk,
// creating the file and applying the schema if necessary. Opening an
// already-populated file leaves its rows alone; use Reset before a
// bulk load.
func Open(filename string) (*DB, error) {
	gdb, err := gorm.Open(sqlite.Open(filename), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening db file at '%s': %w", filename, err)
	}

	db := &DB{gdb}

	if err := db.Exec(schema).Error; err != nil {
		return nil, fmt.Errorf("error applying schema at '%s': %w", filename, err)
	}

	return db, nil
}

// Reset drops and recreates the tracks table ahead of a bulk load. The
// artist index, if present, goes with the table.
func (db *DB) Reset() error {
	if err := db.Exec(`drop table if exists tracks`).Error; err != nil {
		return fmt.Errorf("error dropping tracks table: %w", err)
	}
	if err := db.Exec(schema).Error; err != nil {
		return fmt.Errorf("error recreating tracks table: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	pool, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("error getting connection pool: %w", err)
	}
	return pool.Close()
}
