package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okrent/trackstats/db"
)

var errUnknownQuery = errors.New("unknown query")

// Run serves battery query results as json until ctx is canceled.
func Run(ctx context.Context, db *db.DB, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /queries/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := req.PathValue("name")
		result, err := handle(db, name)
		if errors.Is(err, errUnknownQuery) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		} else if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	srv := http.Server{Addr: addr, Handler: mux}

	errs := make(chan error)
	go func() { errs <- srv.ListenAndServe() }()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(context.Background()); err != nil {
			return err
		}
		return <-errs
	}
}

// handle maps a query name onto its db operation, with the same names
// the cli's query subcommand uses. Tunable queries use their defaults
// here.
func handle(db *db.DB, name string) (any, error) {
	switch name {
	case "billion-streams":
		return db.TracksStreamedOver(1_000_000_000)
	case "album-tracks":
		return db.AlbumTracks()
	case "licensed-comments":
		return db.LicensedCommentTotal()
	case "singles":
		return db.SingleTracks()
	case "tracks-per-artist":
		return db.TrackCountByArtist()
	case "danceability-by-album":
		return db.DanceabilityByAlbum()
	case "top-energy":
		return db.TopEnergyTracks(5)
	case "official-video-rows":
		return db.OfficialVideoRowTotals()
	case "official-video-tracks":
		return db.OfficialVideoTrackTotals()
	case "platform-split":
		return db.StreamsByPlatform()
	case "spotify-leads":
		return db.SpotifyLeads()
	case "top-viewed-per-artist":
		return db.TopViewedTracksPerArtist(3)
	case "above-avg-liveness":
		return db.TracksAboveAvgLiveness()
	case "energy-spread":
		return db.EnergySpreadByAlbum()
	case "energy-liveness-ratio":
		return db.HighEnergyLivenessTracks(1.2)
	case "cumulative-likes":
		return db.CumulativeLikesByViews()
	default:
		return nil, errUnknownQuery
	}
}
