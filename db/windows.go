package db

import (
	"fmt"

	"github.com/okrent/trackstats/data"
)

// TopViewedTracksPerArtist returns each artist's k most-viewed tracks.
// View totals collapse duplicate rows first; dense_rank then runs over
// the totals so tied totals share a position with no gap after the tie.
// The rank filter has to live in an outer stage because the position
// does not exist until the window pass has run.
func (db *DB) TopViewedTracksPerArtist(k int) ([]data.RankedTrack, error) {
	var rows []data.RankedTrack
	if err := db.Raw(`
		with totals as (
			select artist, track, sum(views) as total_views
			from tracks
			group by artist, track
			having sum(views) is not null
		),
		ranked as (
			select artist, track, total_views,
				dense_rank() over (
					partition by artist
					order by total_views desc
				) as position
			from totals
		)
		select artist, track, total_views, position
		from ranked
		where position <= ?
		order by artist, position, track
	`, k).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("error ranking top %d viewed tracks per artist: %w", k, err)
	}
	return rows, nil
}

// TracksAboveAvgLiveness returns rows whose liveness exceeds the
// dataset-wide average. The average is a scalar over the whole table,
// computed independently of any per-row grouping.
func (db *DB) TracksAboveAvgLiveness() ([]data.Track, error) {
	var tracks []data.Track
	if err := db.
		Table("tracks").
		Where("liveness > (select avg(liveness) from tracks)").
		Order("liveness desc, artist, track").
		Find(&tracks).
		Error; err != nil {
		return nil, fmt.Errorf("error finding tracks above average liveness: %w", err)
	}
	return tracks, nil
}

// EnergySpreadByAlbum computes each album's highest and lowest track
// energy in one grouped pass, then derives the spread as their
// difference. Albums where every energy is null are excluded.
func (db *DB) EnergySpreadByAlbum() ([]data.AlbumEnergySpread, error) {
	var rows []data.AlbumEnergySpread
	if err := db.Raw(`
		with album_energy as (
			select album,
				max(energy) as max_energy,
				min(energy) as min_energy
			from tracks
			group by album
			having max(energy) is not null
		)
		select album, max_energy, min_energy,
			max_energy - min_energy as spread
		from album_energy
		order by spread desc, album
	`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("error computing energy spread by album: %w", err)
	}
	return rows, nil
}

// HighEnergyLivenessTracks returns rows whose energy-to-liveness ratio
// exceeds the threshold. Rows with a null energy, null liveness, or
// non-positive liveness are excluded before the division so the ratio
// never evaluates on a zero denominator.
func (db *DB) HighEnergyLivenessTracks(threshold float64) ([]data.RatioTrack, error) {
	var rows []data.RatioTrack
	if err := db.Raw(`
		select artist, track, energy, liveness,
			energy / liveness as ratio
		from tracks
		where energy is not null
		  and liveness is not null
		  and liveness > 0
		  and energy / liveness > ?
		order by ratio desc, artist, track
	`, threshold).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("error finding tracks with energy/liveness over %f: %w", threshold, err)
	}
	return rows, nil
}

// CumulativeLikesByViews returns a running sum of likes over rows
// ordered by views descending. Equal view counts are tie-broken by
// (artist, track) ascending so the prefix sums are reproducible, and
// the frame is pinned to rows-so-far rather than the default peer
// range. Rows missing views or likes are left out of the report.
func (db *DB) CumulativeLikesByViews() ([]data.CumulativeLikes, error) {
	var rows []data.CumulativeLikes
	if err := db.Raw(`
		select artist, track, views, likes,
			sum(likes) over (
				order by views desc, artist, track
				rows between unbounded preceding and current row
			) as running_likes
		from tracks
		where views is not null
		  and likes is not null
		order by views desc, artist, track
	`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("error computing cumulative likes by views: %w", err)
	}
	return rows, nil
}
