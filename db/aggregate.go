package db

import (
	"fmt"

	"github.com/okrent/trackstats/data"
)

// DanceabilityByAlbum returns each album's average danceability,
// highest first. Albums where every row has a null danceability are
// excluded rather than emitted with a null average.
func (db *DB) DanceabilityByAlbum() ([]data.AlbumDanceability, error) {
	var rows []data.AlbumDanceability
	if err := db.
		Table("tracks").
		Select("album", "avg(danceability) as avg_danceability").
		Group("album").
		Having("avg(danceability) is not null").
		Order("avg_danceability desc, album").
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error averaging danceability by album: %w", err)
	}
	return rows, nil
}

// TopEnergyTracks returns the k tracks with the highest average energy.
// Averaging per (artist, track) collapses duplicate rows first.
func (db *DB) TopEnergyTracks(k int) ([]data.TrackEnergy, error) {
	var rows []data.TrackEnergy
	if err := db.
		Table("tracks").
		Select("artist", "track", "avg(energy) as avg_energy").
		Group("artist, track").
		Having("avg(energy) is not null").
		Order("avg_energy desc, artist, track").
		Limit(k).
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error finding top %d energy tracks: %w", k, err)
	}
	return rows, nil
}

// OfficialVideoRowTotals sums views and likes per track over only the
// rows marked official_video. A track's other rows do not contribute,
// so a track whose official upload is one of three rows reports just
// that row's numbers.
func (db *DB) OfficialVideoRowTotals() ([]data.VideoTotals, error) {
	var rows []data.VideoTotals
	if err := db.Raw(`
		select track,
			sum(views) as total_views,
			sum(likes) as total_likes
		from tracks
		where official_video = ?
		group by track
		order by total_views desc, track
	`, true).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("error summing official video rows: %w", err)
	}
	return rows, nil
}

// OfficialVideoTrackTotals keeps a track when any of its rows is marked
// official_video, then sums views and likes across all of the track's
// rows. The official-video check is an existential filter on the formed
// group, not a row filter: filtering rows first would drop the track's
// legitimate unofficial rows from the sums.
func (db *DB) OfficialVideoTrackTotals() ([]data.VideoTotals, error) {
	var rows []data.VideoTotals
	if err := db.Raw(`
		select track,
			sum(views) as total_views,
			sum(likes) as total_likes
		from tracks
		group by track
		having max(case when official_video = ? then 1 else 0 end) = 1
		order by total_views desc, track
	`, true).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("error summing official video tracks: %w", err)
	}
	return rows, nil
}

// StreamsByPlatform pivots per-track stream counts into one column per
// platform with a conditional sum. A track with rows on only one
// platform gets zero on the other, never null.
func (db *DB) StreamsByPlatform() ([]data.PlatformStreams, error) {
	var rows []data.PlatformStreams
	if err := db.Raw(`
		select track,
			coalesce(sum(case when most_played_on = ? then stream end), 0) as streamed_on_spotify,
			coalesce(sum(case when most_played_on = ? then stream end), 0) as streamed_on_youtube
		from tracks
		group by track
		order by track
	`, data.PlatformSpotify, data.PlatformYoutube).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("error pivoting streams by platform: %w", err)
	}
	return rows, nil
}

// SpotifyLeads returns tracks whose spotify streams exceed their
// youtube streams, excluding tracks never streamed on youtube. The
// pivot is materialized in a CTE and the comparison runs on that
// result; folding the comparison into the conditional sums would be a
// different (and wrong) query.
func (db *DB) SpotifyLeads() ([]data.PlatformStreams, error) {
	var rows []data.PlatformStreams
	if err := db.Raw(`
		with platform_streams as (
			select track,
				coalesce(sum(case when most_played_on = ? then stream end), 0) as streamed_on_spotify,
				coalesce(sum(case when most_played_on = ? then stream end), 0) as streamed_on_youtube
			from tracks
			group by track
		)
		select track, streamed_on_spotify, streamed_on_youtube
		from platform_streams
		where streamed_on_spotify > streamed_on_youtube
		  and streamed_on_youtube > 0
		order by streamed_on_spotify desc, track
	`, data.PlatformSpotify, data.PlatformYoutube).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("error finding tracks where spotify leads: %w", err)
	}
	return rows, nil
}
