package db

import "fmt"

func (db *DB) CountRows() (int, error) {
	var count int64
	if err := db.
		Table("tracks").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting rows: %w", err)
	}
	return int(count), nil
}

func (db *DB) CountTracks() (int, error) {
	var count int64
	if err := db.
		Table("tracks").
		Distinct("track").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting distinct tracks: %w", err)
	}
	return int(count), nil
}

func (db *DB) CountArtists() (int, error) {
	var count int64
	if err := db.
		Table("tracks").
		Distinct("artist").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting distinct artists: %w", err)
	}
	return int(count), nil
}

func (db *DB) CountAlbums() (int, error) {
	var count int64
	if err := db.
		Table("tracks").
		Distinct("album").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting distinct albums: %w", err)
	}
	return int(count), nil
}

func (db *DB) CountByPlatform(platform string) (int, error) {
	var count int64
	if err := db.
		Table("tracks").
		Where("most_played_on = ?", platform).
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting rows for platform '%s': %w", platform, err)
	}
	return int(count), nil
}
