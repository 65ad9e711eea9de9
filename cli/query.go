package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/okrent/trackstats/db"
	"github.com/okrent/trackstats/setflag"
	"github.com/okrent/trackstats/subcmd"
)

// a runner is one battery query: a difficulty tier, a one-line
// description, and a function producing a header plus tabular rows.
type runner struct {
	tier string
	doc  string
	run  func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error)
}

// names holds the battery in presentation order; runners is keyed by
// the same names.
var names = []string{
	"billion-streams",
	"album-tracks",
	"licensed-comments",
	"singles",
	"tracks-per-artist",
	"danceability-by-album",
	"top-energy",
	"official-video-rows",
	"official-video-tracks",
	"platform-split",
	"spotify-leads",
	"top-viewed-per-artist",
	"above-avg-liveness",
	"energy-spread",
	"energy-liveness-ratio",
	"cumulative-likes",
}

var runners = map[string]runner{
	"billion-streams": {
		tier: "filter",
		doc:  "rows streamed more than a billion times on spotify",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			tracks, err := db.TracksStreamedOver(1_000_000_000)
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, len(tracks))
			for i, t := range tracks {
				rows[i] = []string{t.Artist, t.Name, t.Album, intCol(t.Stream)}
			}
			return []string{"artist", "track", "album", "stream"}, rows, nil
		},
	},
	"album-tracks": {
		tier: "filter",
		doc:  "each distinct track that belongs to an album-type album",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			result, err := db.AlbumTracks()
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, len(result))
			for i, r := range result {
				rows[i] = []string{r.Artist, r.Album, r.Track}
			}
			return []string{"artist", "album", "track"}, rows, nil
		},
	},
	"licensed-comments": {
		tier: "filter",
		doc:  "total comment count over licensed videos",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			total, err := db.LicensedCommentTotal()
			if err != nil {
				return nil, nil, err
			}
			return []string{"total_comments"}, [][]string{{fmt.Sprintf("%d", total)}}, nil
		},
	},
	"singles": {
		tier: "filter",
		doc:  "rows whose album_type is 'single'",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			tracks, err := db.SingleTracks()
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, len(tracks))
			for i, t := range tracks {
				rows[i] = []string{t.Artist, t.Name, intCol(t.Stream)}
			}
			return []string{"artist", "track", "stream"}, rows, nil
		},
	},
	"tracks-per-artist": {
		tier: "filter",
		doc:  "count of distinct track names per artist",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			result, err := db.TrackCountByArtist()
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, len(result))
			for i, r := range result {
				rows[i] = []string{r.Artist, fmt.Sprintf("%d", r.Tracks)}
			}
			return []string{"artist", "tracks"}, rows, nil
		},
	},
	"danceability-by-album": {
		tier: "grouped",
		doc:  "average danceability per album, highest first",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			result, err := db.DanceabilityByAlbum()
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, len(result))
			for i, r := range result {
				rows[i] = []string{r.Album, fmt.Sprintf("%f", r.AvgDanceability)}
			}
			return []string{"album", "avg_danceability"}, rows, nil
		},
	},
	"top-energy": {
		tier: "grouped",
		doc:  "tracks with the highest average energy",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			result, err := db.TopEnergyTracks(limit)
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, len(result))
			for i, r := range result {
				rows[i] = []string{r.Artist, r.Track, fmt.Sprintf("%f", r.AvgEnergy)}
			}
			return []string{"artist", "track", "avg_energy"}, rows, nil
		},
	},
	"official-video-rows": {
		tier: "grouped",
		doc:  "view/like sums over only the rows marked official_video",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			result, err := db.OfficialVideoRowTotals()
			if err != nil {
				return nil, nil, err
			}
			header, rows := videoTotals(result)
			return header, rows, nil
		},
	},
	"official-video-tracks": {
		tier: "grouped",
		doc:  "view/like sums over every row of tracks that have an official video",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			result, err := db.OfficialVideoTrackTotals()
			if err != nil {
				return nil, nil, err
			}
			header, rows := videoTotals(result)
			return header, rows, nil
		},
	},
	"platform-split": {
		tier: "grouped",
		doc:  "per-track stream counts pivoted by platform",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			result, err := db.StreamsByPlatform()
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, len(result))
			for i, r := range result {
				rows[i] = []string{r.Track, fmt.Sprintf("%.0f", r.StreamedOnSpotify), fmt.Sprintf("%.0f", r.StreamedOnYoutube)}
			}
			return []string{"track", "streamed_on_spotify", "streamed_on_youtube"}, rows, nil
		},
	},
	"spotify-leads": {
		tier: "grouped",
		doc:  "tracks streamed more on spotify than youtube",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			result, err := db.SpotifyLeads()
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, len(result))
			for i, r := range result {
				rows[i] = []string{r.Track, fmt.Sprintf("%.0f", r.StreamedOnSpotify), fmt.Sprintf("%.0f", r.StreamedOnYoutube)}
			}
			return []string{"track", "streamed_on_spotify", "streamed_on_youtube"}, rows, nil
		},
	},
	"top-viewed-per-artist": {
		tier: "window",
		doc:  "each artist's most-viewed tracks by dense rank",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			result, err := db.TopViewedTracksPerArtist(limit)
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, len(result))
			for i, r := range result {
				rows[i] = []string{r.Artist, r.Track, fmt.Sprintf("%.0f", r.TotalViews), fmt.Sprintf("%d", r.Position)}
			}
			return []string{"artist", "track", "total_views", "position"}, rows, nil
		},
	},
	"above-avg-liveness": {
		tier: "window",
		doc:  "rows whose liveness beats the dataset-wide average",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			tracks, err := db.TracksAboveAvgLiveness()
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, len(tracks))
			for i, t := range tracks {
				rows[i] = []string{t.Artist, t.Name, floatCol(t.Liveness)}
			}
			return []string{"artist", "track", "liveness"}, rows, nil
		},
	},
	"energy-spread": {
		tier: "window",
		doc:  "max-minus-min track energy per album",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			result, err := db.EnergySpreadByAlbum()
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, len(result))
			for i, r := range result {
				rows[i] = []string{r.Album, fmt.Sprintf("%f", r.MaxEnergy), fmt.Sprintf("%f", r.MinEnergy), fmt.Sprintf("%f", r.Spread)}
			}
			return []string{"album", "max_energy", "min_energy", "spread"}, rows, nil
		},
	},
	"energy-liveness-ratio": {
		tier: "window",
		doc:  "rows whose energy-to-liveness ratio clears the threshold",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			result, err := db.HighEnergyLivenessTracks(threshold)
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, len(result))
			for i, r := range result {
				rows[i] = []string{r.Artist, r.Track, fmt.Sprintf("%f", r.Energy), fmt.Sprintf("%f", r.Liveness), fmt.Sprintf("%f", r.Ratio)}
			}
			return []string{"artist", "track", "energy", "liveness", "ratio"}, rows, nil
		},
	},
	"cumulative-likes": {
		tier: "window",
		doc:  "running sum of likes over rows ordered by views descending",
		run: func(db *db.DB, limit int, threshold float64) ([]string, [][]string, error) {
			result, err := db.CumulativeLikesByViews()
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, len(result))
			for i, r := range result {
				rows[i] = []string{r.Artist, r.Track, fmt.Sprintf("%.0f", r.Views), fmt.Sprintf("%d", r.Likes), fmt.Sprintf("%d", r.RunningLikes)}
			}
			return []string{"artist", "track", "views", "likes", "running_likes"}, rows, nil
		},
	},
}

func query(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("query", "run one analytical query from the battery")
	subcmd.SetArg("name", "string", "query name; pass 'list' (or nothing) to see them all")
	var (
		limit     = subcmd.Int("limit", 5, "row limit for top-n queries")
		threshold = subcmd.Float64("threshold", 1.2, "ratio threshold for energy-liveness-ratio")
		tiers     = setflag.New("filter", "grouped", "window")
	)
	subcmd.Var(tiers, "tier", "when listing, only show these tiers (comma separated)")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	name := strings.Join(subcmd.Args(), " ")
	if name == "" || name == "list" {
		return list(tiers.List())
	}

	r, ok := runners[name]
	if !ok {
		return fmt.Errorf("unknown query '%s'; try 'trackstats query list'", name)
	}

	header, rows, err := r.run(db, *limit, *threshold)
	if err != nil {
		return fmt.Errorf("error running query '%s': %w", name, err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, strings.Join(header, "\t")+"\n")
	for _, row := range rows {
		fmt.Fprintf(tw, strings.Join(row, "\t")+"\n")
	}
	return tw.Flush()
}

func list(tiers []string) error {
	show := func(tier string) bool {
		if len(tiers) == 0 {
			return true
		}
		for _, t := range tiers {
			if t == tier {
				return true
			}
		}
		return false
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "name\ttier\tdescription\n")
	for _, name := range names {
		r := runners[name]
		if !show(r.tier) {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, r.tier, r.doc)
	}
	return tw.Flush()
}
