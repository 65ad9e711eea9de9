// trackstats loads a denormalized spotify/youtube track dataset into a
// sqlite3 database file and answers a fixed battery of analytical
// questions over it.
//
// see db/schema.sql for info about the table.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/okrent/trackstats/db"
	"github.com/okrent/trackstats/sigctx"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		panic(err)
	}
}

var usage = strings.TrimSpace(`
usage: trackstats $cmd
valid $cmd are 'load', 'query', 'report', 'explain', 'serve'
for help: trackstats $cmd -help
`)

type config struct {
	// DB is the path to the sqlite3 database file.
	DB string `default:"tracks.db"`

	// Addr is the default listen address for 'serve'.
	Addr string `default:":9999"`
}

func run() error {
	ctx := sigctx.New()

	var cfg config
	if err := envconfig.Process("trackstats", &cfg); err != nil {
		return fmt.Errorf("error reading environment config: %w", err)
	}

	db, err := db.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	if len(os.Args) < 2 {
		return errors.New(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "load":
		return load(ctx, db, args)

	case "query":
		return query(ctx, db, args)

	case "report":
		return report(ctx, db, args)

	case "explain":
		return explain(ctx, db, args)

	case "serve":
		return serve(ctx, db, cfg.Addr, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}
