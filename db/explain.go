package db

import (
	"fmt"
	"time"
)

// The artist index is a performance-only structure: it flips the access
// path for artist-equality filters from a full scan to an index lookup
// and must never change any query result.

// CreateArtistIndex builds the non-unique index on the artist column.
func (db *DB) CreateArtistIndex() error {
	if err := db.
		Exec(`create index if not exists idx_tracks_artist on tracks (artist)`).
		Error; err != nil {
		return fmt.Errorf("error creating artist index: %w", err)
	}
	return nil
}

// DropArtistIndex removes the artist index if present.
func (db *DB) DropArtistIndex() error {
	if err := db.
		Exec(`drop index if exists idx_tracks_artist`).
		Error; err != nil {
		return fmt.Errorf("error dropping artist index: %w", err)
	}
	return nil
}

// ExplainArtistTracks returns the engine's plan for the artist-equality
// filter, one detail line per plan node. With the index in place the
// plan names idx_tracks_artist; without it the plan is a table scan.
func (db *DB) ExplainArtistTracks(artist string) ([]string, error) {
	rows, err := db.
		Raw(`explain query plan select * from tracks where artist = ?`, artist).
		Rows()
	if err != nil {
		return nil, fmt.Errorf("error explaining artist filter: %w", err)
	}
	defer rows.Close()

	var details []string
	for rows.Next() {
		var id, parent, notused int
		var detail string
		if err := rows.Scan(&id, &parent, &notused, &detail); err != nil {
			return nil, fmt.Errorf("error scanning plan row: %w", err)
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading plan rows: %w", err)
	}
	return details, nil
}

// TimeArtistTracks runs the artist-equality filter and reports how many
// rows came back and how long the query took.
func (db *DB) TimeArtistTracks(artist string) (int, time.Duration, error) {
	start := time.Now()
	tracks, err := db.ArtistTracks(artist)
	if err != nil {
		return 0, 0, err
	}
	return len(tracks), time.Since(start), nil
}
