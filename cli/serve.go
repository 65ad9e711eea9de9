package main

import (
	"context"
	"fmt"

	"github.com/okrent/trackstats/db"
	"github.com/okrent/trackstats/server"
	"github.com/okrent/trackstats/subcmd"
)

func serve(ctx context.Context, db *db.DB, addr string, args []string) error {
	subcmd := subcmd.New("serve", "serve query results as json")
	var (
		port = subcmd.Int("port", 0, "http port (overrides TRACKSTATS_ADDR)")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	if *port != 0 {
		addr = fmt.Sprintf(":%d", *port)
	}
	return server.Run(ctx, db, addr)
}
