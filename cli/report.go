package main

import (
	"context"
	"fmt"

	"github.com/okrent/trackstats/data"
	"github.com/okrent/trackstats/db"
	"github.com/okrent/trackstats/subcmd"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func report(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("report", "summarize the loaded dataset and the query battery")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	rows, err := db.CountRows()
	if err != nil {
		return err
	}
	tracks, err := db.CountTracks()
	if err != nil {
		return err
	}
	artists, err := db.CountArtists()
	if err != nil {
		return err
	}
	albums, err := db.CountAlbums()
	if err != nil {
		return err
	}
	spotify, err := db.CountByPlatform(data.PlatformSpotify)
	if err != nil {
		return err
	}
	youtube, err := db.CountByPlatform(data.PlatformYoutube)
	if err != nil {
		return err
	}

	// The battery is read-only and the queries are independent, so they
	// can run concurrently.
	var (
		billions  []data.Track
		leads     []data.PlatformStreams
		topEnergy []data.TrackEnergy
		ranked    []data.RankedTrack
		spreads   []data.AlbumEnergySpread
		ratios    []data.RatioTrack
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		billions, err = db.TracksStreamedOver(1_000_000_000)
		return err
	})
	g.Go(func() error {
		var err error
		leads, err = db.SpotifyLeads()
		return err
	})
	g.Go(func() error {
		var err error
		topEnergy, err = db.TopEnergyTracks(1)
		return err
	})
	g.Go(func() error {
		var err error
		ranked, err = db.TopViewedTracksPerArtist(3)
		return err
	})
	g.Go(func() error {
		var err error
		spreads, err = db.EnergySpreadByAlbum()
		return err
	})
	g.Go(func() error {
		var err error
		ratios, err = db.HighEnergyLivenessTracks(1.2)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("battery error: %w", err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("%d rows: %d distinct tracks by %d artists on %d albums\n", rows, tracks, artists, albums)
	p.Printf("most played on spotify: %d rows; on youtube: %d rows\n", spotify, youtube)
	p.Printf("%d rows streamed over a billion times\n", len(billions))
	p.Printf("%d tracks streamed more on spotify than youtube\n", len(leads))
	if len(topEnergy) > 0 {
		p.Printf("highest average energy: %s, %s (%.3f)\n",
			topEnergy[0].Artist, topEnergy[0].Track, topEnergy[0].AvgEnergy)
	}
	p.Printf("%d (artist, track) pairs in the top-3-viewed ranking\n", len(ranked))
	p.Printf("%d albums with a measurable energy spread\n", len(spreads))
	p.Printf("%d rows with energy/liveness over 1.2\n", len(ratios))

	return nil
}
