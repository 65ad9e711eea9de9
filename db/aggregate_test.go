package db_test

import (
	"testing"

	"github.com/okrent/trackstats/data"
	"github.com/stretchr/testify/assert"
)

func TestDanceabilityByAlbum(t *testing.T) {
	d := open(t)

	insert(t, d,
		data.Track{Artist: "Gorillaz", Name: "DARE", Album: "Demon Days", Danceability: data.Float(0.5)},
		data.Track{Artist: "Gorillaz", Name: "Feel Good Inc", Album: "Demon Days", Danceability: data.Float(0.7)},
		data.Track{Artist: "Blur", Name: "Song 2", Album: "Blur", Danceability: data.Float(0.8)},
		// an album where every danceability is null is excluded, not
		// emitted with a null average
		data.Track{Artist: "Pulp", Name: "Common People", Album: "Different Class"},
	)

	rows, err := d.DanceabilityByAlbum()
	assert.NoError(t, err)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, "Blur", rows[0].Album)
		assert.InDelta(t, 0.8, rows[0].AvgDanceability, 1e-9)
		assert.Equal(t, "Demon Days", rows[1].Album)
		assert.InDelta(t, 0.6, rows[1].AvgDanceability, 1e-9)
	}
}

func TestTopEnergyTracks(t *testing.T) {
	d := open(t)

	insert(t, d,
		// duplicate rows average before ranking
		data.Track{Artist: "Gorillaz", Name: "DARE", Energy: data.Float(0.9)},
		data.Track{Artist: "Gorillaz", Name: "DARE", Energy: data.Float(0.7)},
		data.Track{Artist: "Blur", Name: "Song 2", Energy: data.Float(0.95)},
		data.Track{Artist: "Pulp", Name: "Common People", Energy: data.Float(0.5)},
		data.Track{Artist: "Sade", Name: "Smooth Operator"},
	)

	rows, err := d.TopEnergyTracks(2)
	assert.NoError(t, err)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, "Song 2", rows[0].Track)
		assert.Equal(t, "DARE", rows[1].Track)
		assert.InDelta(t, 0.8, rows[1].AvgEnergy, 1e-9)
	}
}

// A track with three rows, two official and one not: the row-filter
// form sums only the two official rows, while the existential form
// keeps the track and sums all three. Both are documented behaviors
// and must stay independently correct.
func TestOfficialVideoForms(t *testing.T) {
	d := open(t)

	insert(t, d,
		data.Track{Artist: "Gorillaz", Name: "DARE", OfficialVideo: data.Bool(true), Views: data.Float(100), Likes: data.Int(10)},
		data.Track{Artist: "Gorillaz", Name: "DARE", OfficialVideo: data.Bool(true), Views: data.Float(200), Likes: data.Int(20)},
		data.Track{Artist: "Gorillaz", Name: "DARE", OfficialVideo: data.Bool(false), Views: data.Float(300), Likes: data.Int(30)},
		data.Track{Artist: "Blur", Name: "Song 2", OfficialVideo: data.Bool(false), Views: data.Float(50), Likes: data.Int(5)},
	)

	rowForm, err := d.OfficialVideoRowTotals()
	assert.NoError(t, err)
	if assert.Len(t, rowForm, 1) {
		assert.Equal(t, "DARE", rowForm[0].Track)
		assert.InDelta(t, 300, rowForm[0].TotalViews, 1e-9)
		assert.InDelta(t, 30, rowForm[0].TotalLikes, 1e-9)
	}

	trackForm, err := d.OfficialVideoTrackTotals()
	assert.NoError(t, err)
	if assert.Len(t, trackForm, 1) {
		assert.Equal(t, "DARE", trackForm[0].Track)
		assert.InDelta(t, 600, trackForm[0].TotalViews, 1e-9)
		assert.InDelta(t, 60, trackForm[0].TotalLikes, 1e-9)
	}
}

func TestStreamsByPlatform(t *testing.T) {
	d := open(t)

	insert(t, d,
		data.Track{Artist: "Gorillaz", Name: "DARE", MostPlayedOn: data.PlatformSpotify, Stream: data.Int(100)},
		data.Track{Artist: "Gorillaz", Name: "DARE", MostPlayedOn: data.PlatformSpotify, Stream: data.Int(50)},
		data.Track{Artist: "Gorillaz", Name: "DARE", MostPlayedOn: data.PlatformYoutube, Stream: data.Int(25)},
		// spotify-only: the youtube column must coalesce to zero
		data.Track{Artist: "Blur", Name: "Song 2", MostPlayedOn: data.PlatformSpotify, Stream: data.Int(10)},
	)

	rows, err := d.StreamsByPlatform()
	assert.NoError(t, err)
	assert.Equal(t, []data.PlatformStreams{
		{Track: "DARE", StreamedOnSpotify: 150, StreamedOnYoutube: 25},
		{Track: "Song 2", StreamedOnSpotify: 10, StreamedOnYoutube: 0},
	}, rows)
}

func TestSpotifyLeads(t *testing.T) {
	d := open(t)

	insert(t, d,
		// spotify ahead: included
		data.Track{Artist: "Gorillaz", Name: "DARE", MostPlayedOn: data.PlatformSpotify, Stream: data.Int(100)},
		data.Track{Artist: "Gorillaz", Name: "DARE", MostPlayedOn: data.PlatformYoutube, Stream: data.Int(50)},
		// never on youtube: excluded
		data.Track{Artist: "Blur", Name: "Song 2", MostPlayedOn: data.PlatformSpotify, Stream: data.Int(100)},
		// youtube ahead: excluded
		data.Track{Artist: "Pulp", Name: "Common People", MostPlayedOn: data.PlatformSpotify, Stream: data.Int(50)},
		data.Track{Artist: "Pulp", Name: "Common People", MostPlayedOn: data.PlatformYoutube, Stream: data.Int(100)},
	)

	rows, err := d.SpotifyLeads()
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "DARE", rows[0].Track)
		assert.InDelta(t, 100, rows[0].StreamedOnSpotify, 1e-9)
		assert.InDelta(t, 50, rows[0].StreamedOnYoutube, 1e-9)
	}
}
