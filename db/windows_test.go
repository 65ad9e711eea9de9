package db_test

import (
	"testing"

	"github.com/okrent/trackstats/data"
	"github.com/stretchr/testify/assert"
)

func TestTopViewedTracksPerArtist(t *testing.T) {
	d := open(t)

	insert(t, d,
		// two tracks tied at 100: both rank 1, and the next distinct
		// total takes rank 2, not 3
		data.Track{Artist: "Gorillaz", Name: "DARE", Views: data.Float(60)},
		data.Track{Artist: "Gorillaz", Name: "DARE", Views: data.Float(40)},
		data.Track{Artist: "Gorillaz", Name: "Feel Good Inc", Views: data.Float(100)},
		data.Track{Artist: "Gorillaz", Name: "On Melancholy Hill", Views: data.Float(50)},
		data.Track{Artist: "Gorillaz", Name: "Clint Eastwood", Views: data.Float(25)},
		data.Track{Artist: "Blur", Name: "Song 2", Views: data.Float(10)},
		// all-null views: the (artist, track) group is excluded
		data.Track{Artist: "Blur", Name: "Parklife"},
	)

	rows, err := d.TopViewedTracksPerArtist(3)
	assert.NoError(t, err)
	assert.Equal(t, []data.RankedTrack{
		{Artist: "Blur", Track: "Song 2", TotalViews: 10, Position: 1},
		{Artist: "Gorillaz", Track: "DARE", TotalViews: 100, Position: 1},
		{Artist: "Gorillaz", Track: "Feel Good Inc", TotalViews: 100, Position: 1},
		{Artist: "Gorillaz", Track: "On Melancholy Hill", TotalViews: 50, Position: 2},
		{Artist: "Gorillaz", Track: "Clint Eastwood", TotalViews: 25, Position: 3},
	}, rows)

	// dense: positions within each artist never exceed k
	for _, row := range rows {
		assert.LessOrEqual(t, row.Position, int64(3))
	}
}

func TestTracksAboveAvgLiveness(t *testing.T) {
	d := open(t)

	insert(t, d,
		data.Track{Artist: "Gorillaz", Name: "DARE", Liveness: data.Float(0.2)},
		data.Track{Artist: "Blur", Name: "Song 2", Liveness: data.Float(0.4)},
		data.Track{Artist: "Pulp", Name: "Common People", Liveness: data.Float(0.9)},
		data.Track{Artist: "Sade", Name: "Smooth Operator"}, // null: out of the average, out of the result
	)

	// avg liveness is 0.5; only 0.9 clears it
	tracks, err := d.TracksAboveAvgLiveness()
	assert.NoError(t, err)
	if assert.Len(t, tracks, 1) {
		assert.Equal(t, "Common People", tracks[0].Name)
	}
}

func TestEnergySpreadByAlbum(t *testing.T) {
	d := open(t)

	insert(t, d,
		data.Track{Artist: "Gorillaz", Name: "DARE", Album: "X", Energy: data.Float(0.9)},
		data.Track{Artist: "Gorillaz", Name: "Feel Good Inc", Album: "X", Energy: data.Float(0.3)},
		data.Track{Artist: "Blur", Name: "Song 2", Album: "Blur", Energy: data.Float(0.5)},
		data.Track{Artist: "Pulp", Name: "Common People", Album: "Different Class"},
	)

	rows, err := d.EnergySpreadByAlbum()
	assert.NoError(t, err)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, "X", rows[0].Album)
		assert.InDelta(t, 0.6, rows[0].Spread, 1e-9)
		assert.Equal(t, "Blur", rows[1].Album)
		assert.InDelta(t, 0, rows[1].Spread, 1e-9)
	}
}

func TestHighEnergyLivenessTracks(t *testing.T) {
	d := open(t)

	insert(t, d,
		data.Track{Artist: "Gorillaz", Name: "DARE", Energy: data.Float(0.9), Liveness: data.Float(0.3)}, // ratio 3
		data.Track{Artist: "Blur", Name: "Song 2", Energy: data.Float(0.55), Liveness: data.Float(0.5)},  // ratio 1.1
		data.Track{Artist: "Pulp", Name: "Common People", Energy: data.Float(0.8), Liveness: data.Float(0)},
		data.Track{Artist: "Sade", Name: "Smooth Operator", Energy: data.Float(0.8)},
		data.Track{Artist: "Can", Name: "Vitamin C", Liveness: data.Float(0.2)},
	)

	rows, err := d.HighEnergyLivenessTracks(1.2)
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "DARE", rows[0].Track)
		assert.InDelta(t, 3, rows[0].Ratio, 1e-9)
	}
	for _, row := range rows {
		assert.Greater(t, row.Liveness, 0.0)
		assert.Greater(t, row.Ratio, 1.2)
	}
}

func TestCumulativeLikesByViews(t *testing.T) {
	d := open(t)

	insert(t, d,
		// the two rows at 300 views tie-break on (artist, track)
		// ascending, so the running sums are reproducible
		data.Track{Artist: "Blur", Name: "Song 2", Views: data.Float(300), Likes: data.Int(30)},
		data.Track{Artist: "Aphex Twin", Name: "Windowlicker", Views: data.Float(300), Likes: data.Int(10)},
		data.Track{Artist: "Pulp", Name: "Common People", Views: data.Float(100), Likes: data.Int(5)},
		data.Track{Artist: "Sade", Name: "Smooth Operator", Likes: data.Int(99)}, // null views: left out
	)

	rows, err := d.CumulativeLikesByViews()
	assert.NoError(t, err)
	assert.Equal(t, []data.CumulativeLikes{
		{Artist: "Aphex Twin", Track: "Windowlicker", Views: 300, Likes: 10, RunningLikes: 10},
		{Artist: "Blur", Track: "Song 2", Views: 300, Likes: 30, RunningLikes: 40},
		{Artist: "Pulp", Track: "Common People", Views: 100, Likes: 5, RunningLikes: 45},
	}, rows)
}
