package db

import (
	"database/sql"
	"fmt"

	"github.com/okrent/trackstats/data"
)

// TracksStreamedOver returns every row whose stream count exceeds n.
// This is a raw row projection: duplicate rows clearing the threshold
// all come back.
func (db *DB) TracksStreamedOver(n int64) ([]data.Track, error) {
	var tracks []data.Track
	if err := db.
		Table("tracks").
		Where("stream > ?", n).
		Order("stream desc").
		Find(&tracks).
		Error; err != nil {
		return nil, fmt.Errorf("error finding tracks streamed over %d: %w", n, err)
	}
	return tracks, nil
}

// AlbumTracks returns each distinct (artist, album, track) combination
// for rows whose album_type is 'album'.
func (db *DB) AlbumTracks() ([]data.AlbumTrack, error) {
	var rows []data.AlbumTrack
	if err := db.
		Table("tracks").
		Distinct("artist", "album", "track").
		Where("album_type = ?", "album").
		Order("artist, album, track").
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error finding album tracks: %w", err)
	}
	return rows, nil
}

// LicensedCommentTotal sums comments over rows whose video is licensed.
// Null comment counts are absent from the sum, not zero.
func (db *DB) LicensedCommentTotal() (int64, error) {
	var total sql.NullInt64
	if err := db.
		Table("tracks").
		Where("licensed = ?", true).
		Select("sum(comments)").
		Scan(&total).
		Error; err != nil {
		return 0, fmt.Errorf("error summing licensed comments: %w", err)
	}
	return total.Int64, nil
}

// SingleTracks returns every row whose album_type is 'single'.
func (db *DB) SingleTracks() ([]data.Track, error) {
	var tracks []data.Track
	if err := db.
		Table("tracks").
		Where("album_type = ?", "single").
		Order("artist, track").
		Find(&tracks).
		Error; err != nil {
		return nil, fmt.Errorf("error finding single tracks: %w", err)
	}
	return tracks, nil
}

// TrackCountByArtist counts distinct track names per artist. The count
// must be over distinct names: the table repeats rows per video, and a
// plain count would double-count every duplicated track.
func (db *DB) TrackCountByArtist() ([]data.ArtistTrackCount, error) {
	var rows []data.ArtistTrackCount
	if err := db.
		Table("tracks").
		Select("artist", "count(distinct track) as tracks").
		Group("artist").
		Order("tracks desc, artist").
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error counting tracks by artist: %w", err)
	}
	return rows, nil
}

// ArtistTracks returns every row for the given artist. This is the
// equality filter the explain experiment accelerates.
func (db *DB) ArtistTracks(artist string) ([]data.Track, error) {
	var tracks []data.Track
	if err := db.
		Table("tracks").
		Where("artist = ?", artist).
		Find(&tracks).
		Error; err != nil {
		return nil, fmt.Errorf("error finding tracks for artist '%s': %w", artist, err)
	}
	return tracks, nil
}
