package main

import (
	"context"
	"fmt"

	"github.com/okrent/trackstats/db"
	"github.com/okrent/trackstats/subcmd"
)

// explain runs the artist-equality filter with and without the artist
// index and prints the engine's plan and timing for each. The index is
// a performance-only structure: if the row counts differ something is
// deeply wrong.
func explain(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("explain", "show how the artist index changes the plan for an artist-equality filter")
	var (
		artist = subcmd.String("artist", "Gorillaz", "artist to filter by")
		keep   = subcmd.Bool("keep", false, "leave the index in place afterward")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	if err := db.DropArtistIndex(); err != nil {
		return err
	}

	before, beforeDur, err := timed(db, *artist, "without index")
	if err != nil {
		return err
	}

	if err := db.CreateArtistIndex(); err != nil {
		return err
	}
	if !*keep {
		defer db.DropArtistIndex()
	}

	after, afterDur, err := timed(db, *artist, "with index")
	if err != nil {
		return err
	}

	if before != after {
		return fmt.Errorf("index changed the result: %d rows before, %d after", before, after)
	}
	fmt.Printf("%d rows both ways; %s -> %s\n", before, beforeDur, afterDur)

	return nil
}

func timed(db *db.DB, artist, label string) (int, string, error) {
	plan, err := db.ExplainArtistTracks(artist)
	if err != nil {
		return 0, "", err
	}
	fmt.Printf("%s:\n", label)
	for _, line := range plan {
		fmt.Printf("  %s\n", line)
	}

	n, dur, err := db.TimeArtistTracks(artist)
	if err != nil {
		return 0, "", err
	}
	fmt.Printf("  %d rows in %s\n", n, dur)
	return n, dur.String(), nil
}
