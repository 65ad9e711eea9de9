package db

import (
	"context"
	"fmt"

	"github.com/okrent/trackstats/data"
	"gorm.io/gorm"
)

// InsertTrack, given a Track, appends it to the tracks table. The table
// has no primary key, so inserting the same track twice keeps both
// rows; that is what the dataset looks like and the queries expect it.
func (db *DB) InsertTrack(track *data.Track) error {
	if track.Artist == "" {
		return fmt.Errorf("no artist")
	}
	if track.Name == "" {
		return fmt.Errorf("no track name")
	}
	if err := db.
		Create(track).
		Error; err != nil {
		return fmt.Errorf("error inserting track '%s': %w", track.Name, err)
	}
	return nil
}

// InsertTracks inserts a batch of tracks in one transaction.
func (db *DB) InsertTracks(ctx context.Context, tracks []data.Track) error {
	if len(tracks) == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("canceled: %w", err)
		}

		if err := tx.
			CreateInBatches(tracks, 100).
			Error; err != nil {
			return fmt.Errorf("error inserting %d tracks: %w", len(tracks), err)
		}

		return nil
	})
}
