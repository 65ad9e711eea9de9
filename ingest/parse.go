package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okrent/trackstats/data"
)

// parseTrack maps one csv record onto a Track. Missing values ("" or
// "NaN") become nil rather than zero: the queries decide per case
// whether absence means skip or coalesce-to-zero.
func parseTrack(cols map[string]int, record []string) (data.Track, error) {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	track := data.Track{
		Artist:       get("artist"),
		Name:         get("track"),
		Album:        get("album"),
		AlbumType:    get("album_type"),
		Title:        get("title"),
		Channel:      get("channel"),
		MostPlayedOn: get("most_played_on"),
	}

	floats := []struct {
		name string
		dst  **float64
	}{
		{"danceability", &track.Danceability},
		{"energy", &track.Energy},
		{"loudness", &track.Loudness},
		{"speechiness", &track.Speechiness},
		{"acousticness", &track.Acousticness},
		{"instrumentalness", &track.Instrumentalness},
		{"liveness", &track.Liveness},
		{"valence", &track.Valence},
		{"tempo", &track.Tempo},
		{"duration_min", &track.DurationMin},
		{"energy_liveness", &track.EnergyLiveness},
		{"views", &track.Views},
	}
	for _, col := range floats {
		v, err := nullFloat(get(col.name))
		if err != nil {
			return track, fmt.Errorf("bad %s: %w", col.name, err)
		}
		*col.dst = v
	}

	ints := []struct {
		name string
		dst  **int64
	}{
		{"likes", &track.Likes},
		{"comments", &track.Comments},
		{"stream", &track.Stream},
	}
	for _, col := range ints {
		v, err := nullInt(get(col.name))
		if err != nil {
			return track, fmt.Errorf("bad %s: %w", col.name, err)
		}
		*col.dst = v
	}

	bools := []struct {
		name string
		dst  **bool
	}{
		{"licensed", &track.Licensed},
		{"official_video", &track.OfficialVideo},
	}
	for _, col := range bools {
		v, err := nullBool(get(col.name))
		if err != nil {
			return track, fmt.Errorf("bad %s: %w", col.name, err)
		}
		*col.dst = v
	}

	return track, nil
}

func missing(s string) bool {
	return s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "na")
}

func nullFloat(s string) (*float64, error) {
	if missing(s) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a number", s)
	}
	return &v, nil
}

// nullInt parses whole-number columns. The source file writes them in
// float notation ("72011645.0"), so parse as float and truncate.
func nullInt(s string) (*int64, error) {
	if missing(s) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a number", s)
	}
	n := int64(v)
	return &n, nil
}

// nullBool accepts true/false in any case. The source data quotes its
// booleans as strings; they become typed values here, not text.
func nullBool(s string) (*bool, error) {
	if missing(s) {
		return nil, nil
	}
	switch strings.ToLower(s) {
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	default:
		return nil, fmt.Errorf("'%s' is not a boolean", s)
	}
}
