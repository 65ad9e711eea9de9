package main

import (
	"context"
	"fmt"
	"log"

	"github.com/okrent/trackstats/db"
	"github.com/okrent/trackstats/ingest"
	"github.com/okrent/trackstats/subcmd"
)

func load(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("load", "bulk load a tracks dataset csv into the database\ndrops and recreates the tracks table first")
	var (
		file  = subcmd.String("file", "", "path to the dataset csv (required)")
		batch = subcmd.Int("batch", 500, "rows per insert batch")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	if *file == "" {
		return fmt.Errorf("must pass -file")
	}

	if err := db.Reset(); err != nil {
		return err
	}

	n, err := ingest.New(db, *batch).Run(ctx, *file)
	if err != nil {
		return fmt.Errorf("load error: %w", err)
	}

	log.Printf("loaded %d rows from %s", n, *file)
	return nil
}
