package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okrent/trackstats/db"
	"github.com/okrent/trackstats/ingest"
	"github.com/stretchr/testify/assert"
)

const fixture = `artist,track,album,album_type,danceability,energy,liveness,views,likes,comments,stream,licensed,official_video,most_played_on
Gorillaz,Feel Good Inc,Demon Days,album,0.818,0.705,0.613,693555221.0,6220896.0,169907.0,1500000000.0,True,True,Spotify
Gorillaz,DARE,Demon Days,album,0.76,0.89,0.11,,,,,False,False,Youtube
Blur,Song 2,Blur,album,0.52,0.98,nan,,,,900000000.0,,,Spotify
`

func load(t *testing.T, csv string) (*db.DB, int, error) {
	t.Helper()

	dir := t.TempDir()
	file := filepath.Join(dir, "tracks.csv")
	if err := os.WriteFile(file, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := db.Open(filepath.Join(dir, "tracks.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { d.Close() })

	n, err := ingest.New(d, 2).Run(context.Background(), file)
	return d, n, err
}

func TestRun(t *testing.T) {
	d, n, err := load(t, fixture)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	rows, err := d.CountRows()
	assert.NoError(t, err)
	assert.Equal(t, 3, rows)

	// the round trip: a 1.5 billion stream row loads and comes back
	// from the billion-stream filter
	tracks, err := d.TracksStreamedOver(1_000_000_000)
	assert.NoError(t, err)
	if assert.Len(t, tracks, 1) {
		track := tracks[0]
		assert.Equal(t, "Feel Good Inc", track.Name)
		assert.Equal(t, int64(1_500_000_000), *track.Stream)
		assert.Equal(t, 0.818, *track.Danceability)
		assert.True(t, *track.Licensed)
		assert.True(t, *track.OfficialVideo)
	}
}

func TestRunParsesNulls(t *testing.T) {
	d, _, err := load(t, fixture)
	assert.NoError(t, err)

	tracks, err := d.ArtistTracks("Blur")
	assert.NoError(t, err)
	if assert.Len(t, tracks, 1) {
		track := tracks[0]
		assert.Nil(t, track.Liveness) // "nan"
		assert.Nil(t, track.Likes)    // ""
		assert.Nil(t, track.Licensed)
		assert.Equal(t, int64(900_000_000), *track.Stream)
	}
}

func TestRunBadRow(t *testing.T) {
	_, _, err := load(t, "artist,track,stream\nGorillaz,DARE,plenty\n")
	assert.Error(t, err)
}

func TestRunMissingFile(t *testing.T) {
	d, err := db.Open(filepath.Join(t.TempDir(), "tracks.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	_, err = ingest.New(d, 0).Run(context.Background(), "no-such-file.csv")
	assert.Error(t, err)
}
