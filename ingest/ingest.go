// Package ingest bulk-loads the combined spotify/youtube dataset csv
// into the tracks table. The load is one-shot: the table is append-only
// from here and read-only for the query battery.
package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/okrent/trackstats/data"
	"github.com/okrent/trackstats/db"
)

type Loader struct {
	db        *db.DB
	batchSize int
}

func New(db *db.DB, batchSize int) *Loader {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Loader{db: db, batchSize: batchSize}
}

// Run streams the csv at filename into the database in batches,
// returning the number of rows loaded. The first record must be a
// header naming the columns; column order doesn't matter and unknown
// columns are ignored.
func (l *Loader) Run(ctx context.Context, filename string) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("error opening dataset file '%s': %w", filename, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("error reading header from '%s': %w", filename, err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var batch []data.Track
	total := 0
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return total, fmt.Errorf("canceled: %w", err)
		}

		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return total, fmt.Errorf("error reading '%s' line %d: %w", filename, line, err)
		}

		track, err := parseTrack(cols, record)
		if err != nil {
			return total, fmt.Errorf("error parsing '%s' line %d: %w", filename, line, err)
		}

		batch = append(batch, track)
		if len(batch) >= l.batchSize {
			if err := l.db.InsertTracks(ctx, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
			log.Printf("loaded %d rows", total)
		}
	}

	if err := l.db.InsertTracks(ctx, batch); err != nil {
		return total, err
	}
	total += len(batch)

	return total, nil
}
